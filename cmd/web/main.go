package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/aq-tools/air-atlas/pkg/server"
	"github.com/aq-tools/air-atlas/pkg/services/analysis"
	"github.com/aq-tools/air-atlas/pkg/services/config"
	"github.com/aq-tools/air-atlas/pkg/services/registry"
	"github.com/aq-tools/air-atlas/pkg/services/sensor"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Air Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.airatlascfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the sensor profiles file (default is $HOME/.airatlascfg)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to the analysis settings file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load analysis settings: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(settings)
	if err != nil {
		return err
	}

	reg, err := registry.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load sensor profiles: %w", err)
	}

	logger.Info().Msgf("Sensor profiles at `%s` successfully loaded.", cfgPath)
	profiles, _ := reg.GetProfiles(cmd.Context())
	for _, profile := range profiles {
		logger.Info().Msgf("Sensor: `%s`, Spreadsheet: `%s`", profile.Name, profile.SpreadsheetID)
	}

	sensors := sensor.NewManagementService(reg, sensor.SheetsCollectorFactory, analyzer)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Sensors: sensors,
		},
	})

	return api.Start()
}
