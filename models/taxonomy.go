package models

import "strings"

// Allowed amenity/rule/space-type/week-day values. Loaded once at init,
// queried by membership only; there is no runtime mutation.

var allowedAmenities = []string{
	// accessibility
	"estacionamento", "bicicletario", "ponto_transporte", "acesso_pcd",
	"elevador", "rampa_acesso", "banheiro_pcd",
	// security
	"cameras", "alarme", "combate_incendio", "iluminacao_emergencia",
	"guarita", "controle_acesso", "monitoramento_24h",
	// comfort / infrastructure
	"ar_condicionado", "cadeiras", "mesas", "palco", "som", "microfones",
	"banheiros", "vestiarios", "chuveiros", "armarios", "espelho",
	"ventiladores", "aquecimento", "acustica", "iluminacao_cenica",
	// food / convenience
	"cafeteira", "bebedouro", "cozinha", "loucas", "talheres", "fogao",
	"forno", "microondas", "churrasqueira", "geladeira", "freezer", "pia",
	"mesa_bar", "buffet",
	// tech
	"wifi", "projetor", "tela_projecao", "computador", "tv", "smart_tv",
	"video_conferencia", "impressora", "scanner", "tomadas_220v", "gerador",
	// outdoor
	"jardim", "area_verde", "deck", "piscina", "quadra", "playground",
	"varanda", "terraco", "estacionamento_coberto",
}

var allowedRules = []string{
	"nao_fumar", "nao_permitido_animais", "permitido_animais",
	"nao_permitido_bebidas", "permitido_bebidas", "nao_permitido_som_alto",
	"proibido_menores", "permitido_criancas", "proibido_decoracao_paredes",
	"limpeza_por_conta_locatario", "silencio_apos_22h",
}

var allowedSpaceTypes = []string{
	"salao_festas", "sala_reuniao", "auditorio", "estudio", "quadra_esportiva",
	"coworking", "cozinha_industrial", "area_aberta", "galpao", "outro",
}

var allowedWeekDays = []string{
	"segunda", "terca", "quarta", "quinta", "sexta", "sabado", "domingo",
}

func memberOf(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsAllowedAmenity(v string) bool   { return memberOf(allowedAmenities, v) }
func IsAllowedRule(v string) bool      { return memberOf(allowedRules, v) }
func IsAllowedSpaceType(v string) bool { return memberOf(allowedSpaceTypes, v) }
func IsAllowedWeekDay(v string) bool   { return memberOf(allowedWeekDays, strings.ToLower(v)) }

// InvalidAmenities returns the values not present in the allowed set.
func InvalidAmenities(vs []string) []string { return invalid(vs, IsAllowedAmenity) }
func InvalidRules(vs []string) []string     { return invalid(vs, IsAllowedRule) }
func InvalidWeekDays(vs []string) []string  { return invalid(vs, IsAllowedWeekDay) }

func invalid(vs []string, ok func(string) bool) []string {
	var bad []string
	for _, v := range vs {
		if !ok(v) {
			bad = append(bad, v)
		}
	}
	return bad
}

// HasDuplicates reports whether the slice carries the same value twice.
// Filter inputs arrive as comma separated strings and duplicates are a 400.
func HasDuplicates(vs []string) bool {
	seen := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
