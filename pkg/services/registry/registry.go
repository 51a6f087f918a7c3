package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry resolves sensor profiles from an ini configuration file, one
// section per sensor:
//
//	[ajlc-building]
//	display_name     = AJLC Building Purple Air Sensor
//	spreadsheet_id   = 1KLwB85EZK1...
//	sheet_range      = PurpleAir002!A:Z
//	credentials_file = credentials.json
//	latitude         = 41.2907
//	longitude        = -82.2215
//	timestamp_column = TimeStamp
//	metric.pm2_5_atm = PM2.5 :cf_1( µg/m³)
//	metric.temperature = Temperature (°F)
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.SensorProfile, error)
	GetProfile(ctx context.Context, name string) (domain.SensorProfile, error)
}

const metricKeyPrefix = "metric."

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load sensor profiles from %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.SensorProfile, error) {
	var profiles []domain.SensorProfile
	for _, section := range r.cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.SensorProfile, error) {
	if !r.cfg.HasSection(name) || name == ini.DefaultSection {
		return domain.SensorProfile{}, fmt.Errorf("sensor profile %q not found", name)
	}
	return profileFromSection(r.cfg.Section(name)), nil
}

func profileFromSection(section *ini.Section) domain.SensorProfile {
	profile := domain.SensorProfile{
		Name:            section.Name(),
		DisplayName:     section.Key("display_name").String(),
		SpreadsheetID:   section.Key("spreadsheet_id").String(),
		SheetRange:      section.Key("sheet_range").String(),
		CredentialsFile: section.Key("credentials_file").String(),
		TimestampColumn: section.Key("timestamp_column").String(),
		Latitude:        section.Key("latitude").MustFloat64(0),
		Longitude:       section.Key("longitude").MustFloat64(0),
		Columns:         map[string]string{},
	}
	if profile.DisplayName == "" {
		profile.DisplayName = profile.Name
	}
	if profile.TimestampColumn == "" {
		profile.TimestampColumn = "TimeStamp"
	}
	for _, key := range section.Keys() {
		if metric, ok := strings.CutPrefix(key.Name(), metricKeyPrefix); ok {
			profile.Columns[metric] = key.String()
		}
	}
	return profile
}
