package main

import (
	"log"
	"time"

	"userapi/config"
	"userapi/global"
	"userapi/repositories"
	"userapi/routes"
	"userapi/services"
	"userapi/utils/redislog"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s v%s starting in %s on :%s", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort)

	// 2) Initialize infrastructure (DB and Redis).
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg)

	// 3) Build the Redis logger (list key: logs:app).
	rlog := redislog.New(rdb, "logs:app", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":   cfg.Env,
		"port":  cfg.HTTPPort,
		"redis": cfg.RedisAddr,
	})

	// 4) Construct repository and service (dependency injection).
	userRepo := repositories.NewUserRepository(db)
	userSvc := services.NewUserService(userRepo, rdb, rlog)

	// 5) Create the Gin engine and wire routes.
	r := gin.New()
	_ = r.SetTrustedProxies(nil)                    // trust none, safe default
	jwtExp, _ := time.ParseDuration(cfg.JWTExpires) // validated in config.Load
	routes.Setup(r, userSvc, cfg.JWTSecret, jwtExp)

	// 6) Start the HTTP server; fatal if it fails to bind.
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
