package app

import (
	"context"
	"log"
	"os"
	"time"

	"spacerental/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers stay short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config
}

// Config is read once from the environment at startup.
type Config struct {
	WebOrigin     string
	RedisAddr     string
	RedisPwd      string
	JWTSecret     string
	TokenTTL      time.Duration
	GeocodeAPIKey string
}

func MustNew() *App {
	cfg := loadConfig()

	dbConn := db.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{Router: r, DB: dbConn, RDB: rdb, Config: cfg}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			ttl = d
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return Config{
		WebOrigin:     get("WEB_ORIGIN", "http://localhost:3000"),
		RedisAddr:     get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     secret,
		TokenTTL:      ttl,
		GeocodeAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
	}
}
