package main

import (
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/typhonjs-node-bundle/plugin-replace/bundle"
	"github.com/typhonjs-node-bundle/plugin-replace/libbundle"
	"github.com/typhonjs-node-bundle/plugin-replace/plugin/replace"
)

const (
	appName  = "bundler"
	appUsage = "bundle input files through pluggable input transforms"

	// envPrefix scopes every environment fallback variable the plugins
	// consult, e.g. BUNDLER_REPLACE.
	envPrefix = "BUNDLER"
)

func newApp() (*cli.App, error) {
	registry := libbundle.NewRegistry()
	if err := registry.Register(replace.New(envPrefix)); err != nil {
		return nil, err
	}

	return libbundle.NewApp(&libbundle.Entrypoint{
		Name:     appName,
		Usage:    appUsage,
		Registry: registry,
		GlobalFlags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
				Value: "text",
			},
		},
		BundleFlags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the bundle project config",
				Value:   "bundle.yaml",
			},
		},
		Setup: func(c *cli.Context) error {
			config, err := NewConfigFromContext(c)
			if err != nil {
				return err
			}
			config.SetupLogger()
			return nil
		},
		RunBundle: runBundle,
	})
}

func runBundle(c *cli.Context, transforms []libbundle.Transform) error {
	cfg, err := bundle.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	buildID := uuid.NewString()
	return bundle.NewPipeline(cfg, transforms).Run(buildID)
}

func main() {
	app, err := newApp()
	if err != nil {
		// Plugin registration failures are internal faults, not user
		// configuration problems.
		log.Fatalf("cannot initialize %s: %v", appName, err)
	}

	if err := app.Run(os.Args); err != nil {
		if libbundle.IsConfigError(err) {
			log.Error(err)
			os.Exit(1)
		}
		log.Fatalf("unexpected error: %v", err)
	}
}
