package cmd

import (
	"fmt"

	"floor-plan/core/config"
	"floor-plan/core/floorplan"
	"floor-plan/core/logger"
	"floor-plan/core/storage"
	"floor-plan/feature/plans"

	"go.uber.org/zap"
)

// newStorageClient is swapped in tests.
var newStorageClient = storage.NewClient

// env bundles what every command needs after configuration is loaded.
type env struct {
	cfg    *config.Config
	legend floorplan.Legend
	logger *zap.Logger
}

// bootstrap loads the configuration, applies the command line overrides and
// builds the logger. The legend is validated here, before any plan is read.
func bootstrap() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if flagChairChars != "" {
		cfg.Plan.ChairTypes = flagChairChars
	}
	if flagSeparators != "" {
		cfg.Plan.Separators = flagSeparators
	}
	if flagLogging != "" {
		cfg.Log.Level = flagLogging
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	legend, err := cfg.Plan.Legend()
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, legend: legend, logger: logg}, nil
}

// service builds the plans service. Storage is only connected when remote is set.
func (e *env) service(remote bool) (*plans.Service, error) {
	var client storage.Client
	if remote {
		c, err := newStorageClient(e.cfg.Storage)
		if err != nil {
			return nil, err
		}
		client = c
	}
	return plans.NewService(client, e.cfg.Storage.Bucket, e.cfg.Storage.Prefix, e.legend, e.logger), nil
}
