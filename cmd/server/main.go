package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"habitboard/internal/config"
	"habitboard/internal/handler"
	"habitboard/internal/logger"
	"habitboard/internal/middleware"
	"habitboard/internal/model"
	"habitboard/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			return
		}
	}
}

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	loadDotenv()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if cfg.Auth.JWTSecret != "" {
		middleware.JWTSecret = []byte(cfg.Auth.JWTSecret)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.GoalCompletion{},
		&model.Challenge{},
		&model.WhitelistedEmail{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	loc := cfg.Location()

	whitelistSvc := service.NewWhitelistService(db)
	authSvc := service.NewAuthService(db, whitelistSvc)
	goalSvc := service.NewGoalService(db)
	trackerSvc := service.NewTrackerService(db)
	statsSvc := service.NewStatsService(db)
	calendarSvc := service.NewCalendarService(db)

	authH := handler.NewAuthHandler(authSvc)
	goalH := handler.NewGoalHandler(goalSvc)
	trackerH := handler.NewTrackerHandler(trackerSvc, loc)
	statsH := handler.NewStatsHandler(statsSvc, loc)
	calendarH := handler.NewCalendarHandler(calendarSvc, loc)
	whitelistH := handler.NewWhitelistHandler(whitelistSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/signup", authH.Signup)
	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.POST("/logout", authH.Logout)
	api.GET("/dashboard", statsH.Dashboard)
	api.GET("/leaderboard", statsH.Leaderboard)
	api.GET("/goals", goalH.List)
	api.POST("/goals", goalH.Create)
	api.GET("/goals/:id", goalH.Get)
	api.PUT("/goals/:id", goalH.Update)
	api.DELETE("/goals/:id", goalH.Delete)
	api.GET("/challenges", goalH.Challenges)
	api.GET("/tracker", trackerH.Show)
	api.POST("/tracker", trackerH.Update)
	api.GET("/calendar", calendarH.Month)
	api.GET("/calendar/:year/:month", calendarH.Month)

	admin := api.Group("", middleware.AdminRequired())
	admin.GET("/whitelist", whitelistH.List)
	admin.POST("/whitelist", whitelistH.Upsert)

	slog.Info("server starting", "addr", cfg.Addr(), "tz", loc.String())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
