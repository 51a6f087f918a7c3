package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/aq-tools/air-atlas/pkg/runtime/terminal/export"
	"github.com/aq-tools/air-atlas/pkg/services/analysis"
	"github.com/aq-tools/air-atlas/pkg/services/collector"
	"github.com/aq-tools/air-atlas/pkg/services/config"
	"github.com/aq-tools/air-atlas/pkg/services/registry"
	"github.com/aq-tools/air-atlas/pkg/services/sensor"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	profilePath  string
	settingsPath string
	sensorName   string
	metric       string
	hours        int
	csvFile      string
	reporter     *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze sensor readings and print a report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.profilePath, "profile", "", "Path to the sensor profiles file")
	cmd.Flags().StringVar(&ac.settingsPath, "settings", "", "Path to the analysis settings file (defaults apply when omitted)")
	cmd.Flags().StringVar(&ac.sensorName, "sensor", "", "Sensor profile to analyze")
	cmd.Flags().StringVar(&ac.metric, "metric", "pm2_5_atm", "Metric column to analyze")
	cmd.Flags().IntVar(&ac.hours, "hours", 24, "Hours of data to analyze (0 means everything)")
	cmd.Flags().StringVar(&ac.csvFile, "file", "", "Analyze a local CSV export instead of fetching the sheet")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("sensor")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	settings, err := config.LoadSettings(ac.settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load analysis settings: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(settings)
	if err != nil {
		return err
	}

	reg, err := registry.NewRegistry(ac.profilePath)
	if err != nil {
		return err
	}

	factory := sensor.SheetsCollectorFactory
	if ac.csvFile != "" {
		factory = func(_ context.Context, profile domain.SensorProfile) (collector.Collector, error) {
			return collector.NewFileCollector(ac.csvFile, profile), nil
		}
	}

	sensors := sensor.NewManagementService(reg, factory, analyzer)

	report, err := sensors.GetReport(ctx, ac.sensorName, ac.metric, ac.hours)
	if err != nil {
		return fmt.Errorf("failed to analyze sensor %q: %w", ac.sensorName, err)
	}

	return ac.reporter.Handle(report)
}
