package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"carsharex/internal/config"
	"carsharex/internal/database"
	"carsharex/internal/middleware"
	"carsharex/internal/modules/admin"
	"carsharex/internal/modules/auth"
	"carsharex/internal/modules/booking"
	"carsharex/internal/modules/feed"
	"carsharex/internal/modules/incident"
	"carsharex/internal/modules/parking"
	"carsharex/internal/modules/profile"
	"carsharex/internal/modules/tariff"
	"carsharex/internal/modules/transaction"
	"carsharex/internal/modules/vehicle"
	jwtsvc "carsharex/internal/pkg/jwt"
	"carsharex/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	// Money fields serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(db, j)
	bookingService := booking.NewService(db, hub)
	transactionService := transaction.NewService(db)
	profileService := profile.NewService(db, transactionService)
	vehicleService := vehicle.NewService(db)
	tariffService := tariff.NewService(db)
	parkingService := parking.NewService(db)
	incidentService := incident.NewService(db)
	adminService := admin.NewService(db, j, hub)

	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	transactionHandler := transaction.NewHandler(transactionService)
	profileHandler := profile.NewHandler(profileService)
	vehicleHandler := vehicle.NewHandler(vehicleService)
	tariffHandler := tariff.NewHandler(tariffService)
	parkingHandler := parking.NewHandler(parkingService)
	incidentHandler := incident.NewHandler(incidentService)
	adminHandler := admin.NewHandler(adminService)
	feedHandler := feed.NewHandler(hub, log)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public surface
		vehicleHandler.RegisterRoutes(api)
		tariffHandler.RegisterRoutes(api)
		parkingHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		transactionHandler.RegisterRoutes(api)
		incidentHandler.RegisterRoutes(api)

		// client auth surface
		userAuthed := api.Group("/", middleware.UserAuth(j))
		authHandler.RegisterRoutes(api, userAuthed)
		profileHandler.RegisterRoutes(userAuthed)

		// admin console
		adminPublic := api.Group("/admin")
		adminAuthed := api.Group("/admin", middleware.EmployeeAuth(j))
		adminHandler.RegisterRoutes(adminPublic, adminAuthed, middleware.RequireSuperAdmin())
		adminAuthed.GET("/incidents", incidentHandler.AdminList)
		adminAuthed.PATCH("/incidents/:id/status", incidentHandler.AdminUpdateStatus)
		feedHandler.RegisterRoutes(adminAuthed)
	}

	log.WithFields(logrus.Fields{
		"addr": cfg.ListenAddr,
		"env":  cfg.AppEnv,
	}).Info("starting server")

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
