package main

import (
	"context"
	"guidance-service/internal/adapters/repositories"
	"guidance-service/internal/api"
	"guidance-service/internal/config"
	"guidance-service/internal/platform/db"
	"guidance-service/internal/services"
	"log"
	"net/http"
)

// main is the application composition root.
// It wires the Postgres path repository behind its port and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	repo := repositories.NewPostgresPathRepository(conn)
	router := api.NewRouter(services.NewGuidanceService(repo))

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	log.Fatal(srv.ListenAndServe())
}
