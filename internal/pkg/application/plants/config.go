package plants

import (
	"fmt"
	"io"
	"time"
	_ "time/tzdata"

	yaml "gopkg.in/yaml.v2"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/scheduling"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/watchdog"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

// PlantDefaults are applied to every newly registered plant.
type PlantDefaults struct {
	Name                        string               `yaml:"name"`
	WaterAmount                 int                  `yaml:"waterAmount"`
	IrrigationType              types.IrrigationType `yaml:"irrigationType"`
	AutoIrrigation              bool                 `yaml:"autoIrrigation"`
	MoisturePercentageThreshold int                  `yaml:"moisturePercentageThreshold"`
	PeriodstampTimesAWeek       int                  `yaml:"periodstampTimesAWeek"`
}

type SchedulingConfig struct {
	Overflow scheduling.OverflowPolicy `yaml:"overflow"`
	Timezone string                    `yaml:"timezone"`
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	PlantDefaults PlantDefaults    `yaml:"plantDefaults"`
	Scheduling    SchedulingConfig `yaml:"scheduling"`
	Watchdog      watchdog.Config  `yaml:"watchdog"`
	Notifications []Notification   `yaml:"notifications"`
}

func DefaultConfig() *Config {
	return &Config{
		PlantDefaults: PlantDefaults{
			Name:                        "New Plant",
			WaterAmount:                 1000,
			IrrigationType:              types.IrrigationTypePeriod,
			AutoIrrigation:              true,
			MoisturePercentageThreshold: 50,
			PeriodstampTimesAWeek:       0,
		},
		Scheduling: SchedulingConfig{
			Overflow: scheduling.OverflowDrop,
			Timezone: "UTC",
		},
		Watchdog: watchdog.DefaultConfig(),
	}
}

var ErrInvalidConfiguration = fmt.Errorf("invalid configuration")

// LoadConfiguration reads yaml on top of DefaultConfig, so that any setting
// left out of data keeps its default value. The result is validated.
func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	invalid := func(setting string, err error) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConfiguration, setting, err.Error())
	}

	d := c.PlantDefaults

	if _, err := scheduling.ActiveSlotKind(d.IrrigationType); err != nil {
		return invalid("plantDefaults.irrigationType", err)
	}
	if d.WaterAmount < 0 || d.WaterAmount > MaxWaterAmount {
		return invalid("plantDefaults.waterAmount", fmt.Errorf("%w: %d", ErrInvalidWaterAmount, d.WaterAmount))
	}
	if d.MoisturePercentageThreshold < 0 || d.MoisturePercentageThreshold > 100 {
		return invalid("plantDefaults.moisturePercentageThreshold", fmt.Errorf("%w: %d", ErrInvalidThreshold, d.MoisturePercentageThreshold))
	}
	if d.PeriodstampTimesAWeek < 0 {
		return invalid("plantDefaults.periodstampTimesAWeek", fmt.Errorf("%w: %d", scheduling.ErrInvalidFrequency, d.PeriodstampTimesAWeek))
	}

	if err := c.Scheduling.Overflow.Validate(); err != nil {
		return invalid("scheduling.overflow", err)
	}
	if _, err := c.Location(); err != nil {
		return invalid("scheduling.timezone", err)
	}

	if c.Watchdog.SilentAfter < 0 || c.Watchdog.Interval < 0 {
		return invalid("watchdog", fmt.Errorf("durations must not be negative"))
	}

	return nil
}

func (c *Config) Location() (*time.Location, error) {
	if c.Scheduling.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Scheduling.Timezone)
}
