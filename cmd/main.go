package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Norumai01/HonkaiBackendV2/internal/app"
	"github.com/Norumai01/HonkaiBackendV2/internal/config"
	"github.com/Norumai01/HonkaiBackendV2/internal/controllers"
	"github.com/Norumai01/HonkaiBackendV2/internal/middleware"
	"github.com/Norumai01/HonkaiBackendV2/internal/repositories"
	"github.com/Norumai01/HonkaiBackendV2/internal/services"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	userService := services.NewUserService(userRepo)
	jwtService := services.NewJWTService(cfg)
	blacklistService := services.NewBlacklistService(application.Redis, cfg.TokenExpiry)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(userService, jwtService, blacklistService, cfg)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc("/health", healthController.HealthCheckHandler).Methods("GET")

	// Logout never runs through the authenticator: it must answer 200
	// and clear the cookie even when the token is revoked, expired or
	// garbage, so it does its own best-effort token handling.
	router.HandleFunc("/auth/logout", authController.Logout).Methods("POST")

	// Every other /auth route runs through the authenticator; routes
	// that permit anonymous access simply ignore the absent principal.
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(jwtService, blacklistService, userService))

	authRouter.HandleFunc("/register", authController.Register).Methods("POST")
	authRouter.HandleFunc("/login", authController.Login).Methods("POST")

	// Protected endpoints require a valid token
	authRouter.Handle("/users", middleware.RequireAuth(http.HandlerFunc(authController.ListUsers))).Methods("GET")

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
