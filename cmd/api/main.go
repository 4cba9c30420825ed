package main

import (
	"github.com/ethanbaker/gestuab/internal/api"
	"github.com/ethanbaker/gestuab/pkg/utils"
)

// Start the API server
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	// Start
	api.Start(cfg)
}
