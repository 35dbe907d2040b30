// Command bmi is the Mao BMI Calculator.
package main

import (
	"os"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bmi-cli/internal/core/services"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the services for the resolved configuration directory.
func wire(opts cli.WiringOptions) (*cli.Services, error) {
	var store driven.ConfigStore
	if opts.NoConfig {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	}
	logger.Debug("Config store: %s", store.Path())

	return &cli.Services{
		Calculator:  services.NewCalculatorService(),
		Settings:    services.NewSettingsService(store),
		ConfigStore: store,
	}, nil
}
