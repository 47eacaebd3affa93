package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-kantor/kantor/cmd/httpserver"
	"github.com/go-kantor/kantor/internal/middleware"
	"github.com/go-kantor/kantor/pkg/configpkg"
	"github.com/go-kantor/kantor/pkg/dbpkg"
	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
