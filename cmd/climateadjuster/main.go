package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/config"
	"github.com/MKhiriev/climate-adjuster/internal/handler"
	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/server"
	"github.com/MKhiriev/climate-adjuster/internal/service"
	"github.com/MKhiriev/climate-adjuster/internal/store"
	"github.com/MKhiriev/climate-adjuster/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(os.Stderr, info)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	var log *logger.Logger
	if cfg.ServeMode() {
		log = logger.NewLogger("climate-adjuster")
	} else {
		log = logger.NewConsoleLogger("climate-adjuster", os.Stderr)
	}
	if err := log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	c := codec.New(codec.WithShape(cfg.Shape()))
	storages := store.NewStorages(cfg.OverridesPath(), c, log)
	services := service.NewServices(storages, info, log)

	bus := host.NewBus()
	handlers, err := handler.NewHandlers(services, bus, c, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	if cfg.ServeMode() {
		srv, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating server")
		}
		srv.RunServer()
		return
	}

	if err := apply(context.Background(), bus, c, cfg.Host, log); err != nil {
		log.Fatal().Err(err).Msg("error applying overrides")
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
