package config

import (
	"fmt"
	"strings"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// LoadSettings reads analysis settings from a YAML file, with AIR_ATLAS_*
// environment variables overriding individual keys. An empty path loads
// the defaults. The returned settings are already validated: a malformed
// threshold table fails here, before any analysis runs.
func LoadSettings(path string) (domain.AnalysisSettings, error) {
	defaults := domain.DefaultAnalysisSettings()

	v := viper.New()
	v.SetEnvPrefix("AIR_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("event_threshold", defaults.EventThreshold)
	v.SetDefault("min_event_duration", defaults.MinEventDuration)
	v.SetDefault("merge_tolerance", defaults.MergeTolerance)
	v.SetDefault("expected_interval", defaults.ExpectedInterval)
	v.SetDefault("gap_threshold", defaults.GapThreshold)
	v.SetDefault("min_trend_samples", defaults.MinTrendSamples)
	v.SetDefault("significance_level", defaults.SignificanceLevel)
	v.SetDefault("stable_slope", defaults.StableSlope)
	v.SetDefault("alert_threshold", defaults.AlertThreshold)
	v.SetDefault("high_alert_threshold", defaults.HighAlertThreshold)
	v.SetDefault("who_guideline", defaults.WHOGuideline)
	v.SetDefault("epa_standard", defaults.EPAStandard)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.AnalysisSettings{}, fmt.Errorf("read settings file: %w", err)
		}
	}

	var settings domain.AnalysisSettings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.AnalysisSettings{}, fmt.Errorf("parse settings: %w", err)
	}

	// The threshold table has no flat default viper can merge, so fall
	// back to the AQI bands when the file does not define one.
	if len(settings.Thresholds) == 0 {
		settings.Thresholds = defaults.Thresholds
	}

	if err := settings.Validate(); err != nil {
		return domain.AnalysisSettings{}, err
	}
	return settings, nil
}
