package main

import (
	"os"

	"github.com/artpar/varmsg/bootstrap"
	"github.com/spf13/cobra"
)

var hotReload bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the schema API server",
	Long: `Start the varmsg schema API server.

The server will:
  - Load configuration from varmsg.yaml (or --config)
  - Or load configuration from VARMSG_* environment variables
  - Open the schema store database
  - Serve resolved descriptors over HTTP

Endpoints:
  GET /v1/schemas                          stored descriptors
  GET /v1/schemas/{package}/{type}         resolved descriptor
  GET /v1/schemas/{package}/{type}/definition  flattened definition text
  GET /healthz                             health check
  GET /metrics                             Prometheus metrics

Examples:
  varmsg serve
  varmsg serve --config /etc/varmsg/varmsg.yaml
  varmsg serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	var a *bootstrap.App
	var err error

	if _, statErr := os.Stat(cfgFile); statErr == nil && hotReload {
		a, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		cfg, cfgErr := loadConfig()
		if cfgErr != nil {
			return cfgErr
		}
		a, err = bootstrap.New(cfg)
	}
	if err != nil {
		return err
	}

	return a.Run()
}
