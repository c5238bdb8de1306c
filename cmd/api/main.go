package main

import (
	"os"

	"courseadvisor/internal/pkg/logger"
	"courseadvisor/internal/server"
)

// @title CourseAdvisor API
// @version 1.0
// @description Read-only query API recommending teachers for courses and listing degree-program catalogs

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
