package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"

	"github.com/railgeo/linefix/internal/arcgis"
	"github.com/railgeo/linefix/internal/config"
	"github.com/railgeo/linefix/internal/logger"
	"github.com/railgeo/linefix/internal/pipeline"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Review     string `short:"r" long:"review" description:"Write flagged segments to a GeoJSON file instead of updating the service"`

	Args struct {
		Token string `positional-arg-name:"token" description:"Feature service access token"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := loadConfig(opts.ConfigFile, parser)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}

	svc := arcgis.NewClient(client, cfg.ServiceURL, opts.Args.Token)

	log.Info().
		Str("service", cfg.ServiceURL).
		Str("stations_layer", cfg.StationsLayer).
		Str("lines_layer", cfg.LinesLayer).
		Msg("Starting correction run")

	report, err := pipeline.Run(context.Background(), svc, cfg, pipeline.Options{
		ReviewPath: opts.Review,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Correction run failed")
	}

	log.Info().
		Int("checked", report.Checked).
		Int("flagged", report.Flagged).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("Correction run finished")
}

// loadConfig falls back to defaults when the config flag was left at its
// default value and no such file exists.
func loadConfig(path string, parser *flags.Parser) (*config.Config, error) {
	if opt := parser.FindOptionByLongName("config"); opt != nil && opt.IsSetDefault() {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}
