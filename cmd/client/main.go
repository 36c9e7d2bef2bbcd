package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/clinical-records/internal/adapter"
	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	// stdout carries command output, logs go to stderr
	log := logger.NewWriterLogger(os.Stderr, "clinical-records-client")
	if err := logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app := &cli{
		adapter:   serverAdapter,
		tokens:    newTokenFile(cfg.TokenFile),
		buildInfo: buildInfo,
	}

	if err = newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
