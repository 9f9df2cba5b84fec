// controllers/srv.go
package controllers

import (
	"time"

	"spacerental/app"
	"spacerental/db"
	"spacerental/geo"
	"spacerental/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Srv bundles the dependencies every controller shares.
type Srv struct {
	Repo     *db.Repo
	Deny     *session.TokenDenylist
	Cache    *session.Cache
	Limiter  *session.RateLimiter
	Throttle *session.Throttle
	Geo      *geo.Client
	Cfg      app.Config
}

func GetSrv(a *app.App) *Srv {
	cache := session.NewCache(a.RDB, 5*time.Minute)
	return &Srv{
		Repo:     db.NewRepo(a.DB),
		Deny:     session.NewTokenDenylist(a.RDB),
		Cache:    cache,
		Limiter:  session.NewRateLimiter(a.RDB, 10, time.Minute),
		Throttle: session.NewThrottle(a.RDB, 5*time.Minute),
		Geo:      geo.NewClient(nil, a.Config.GeocodeAPIKey, cache),
		Cfg:      a.Config,
	}
}

// --- helpers ---

func currentUserID(c *gin.Context) string {
	v, _ := c.Get("userID")
	id, _ := v.(string)
	return id
}

func isAdmin(c *gin.Context) bool {
	v, _ := c.Get("isAdmin")
	b, _ := v.(bool)
	return b
}

// validID checks identifier syntax only; existence is the repo's call.
func validID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
