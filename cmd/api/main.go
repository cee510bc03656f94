package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/dealgrind/underwriting-service/internal/config"
	"github.com/dealgrind/underwriting-service/internal/handler"
	"github.com/dealgrind/underwriting-service/internal/integrations/rates"
	"github.com/dealgrind/underwriting-service/internal/middleware"
	"github.com/dealgrind/underwriting-service/internal/repository"
	"github.com/dealgrind/underwriting-service/internal/scheduler"
	"github.com/dealgrind/underwriting-service/internal/service"
	"github.com/dealgrind/underwriting-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger, cfg)
	h := handler.NewHandler(svc)
	ratesClient := rates.NewClient(cfg, logger)
	sender := email.NewSender(cfg, logger)

	// Balloon reminder job
	sched, err := scheduler.NewScheduler(repo, sender, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Stateless compute endpoint: the engine boundary exposed over JSON
	r.HandleFunc("/metrics", h.ComputeMetrics).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/analyses", h.CreateAnalysis).Methods("POST")
	authRouter.HandleFunc("/analyses", h.ListAnalyses).Methods("GET")
	authRouter.HandleFunc("/analyses/{id:[0-9]+}", h.GetAnalysis).Methods("GET")
	authRouter.HandleFunc("/analyses/{id:[0-9]+}", h.DeleteAnalysis).Methods("DELETE")
	// Mortgage rate feed endpoint
	r.HandleFunc("/market-rates", func(w http.ResponseWriter, r *http.Request) {
		rate, err := ratesClient.GetMortgageRate()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get mortgage rate: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"mortgage_rate": rate})
	}).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
