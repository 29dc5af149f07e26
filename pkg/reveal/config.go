package reveal

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultStaggerIncrement = 150 * time.Millisecond
	DefaultDuration         = 700 * time.Millisecond
	DefaultDistance         = 24
	DefaultThreshold        = 0.1
	DefaultEasing           = "cubic-bezier(0.22, 1, 0.36, 1)"
)

// Config holds per-instance animation settings. A Config is copied into the
// sequencer at construction and never changes afterwards.
type Config struct {
	BaseDelay        time.Duration `yaml:"base_delay"`
	StaggerIncrement time.Duration `yaml:"stagger"`
	Duration         time.Duration `yaml:"duration"`
	Distance         int           `yaml:"distance"`
	TriggerOnce      bool          `yaml:"trigger_once"`
	Threshold        float64       `yaml:"threshold"`
	Easing           string        `yaml:"easing"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		StaggerIncrement: DefaultStaggerIncrement,
		Duration:         DefaultDuration,
		Distance:         DefaultDistance,
		TriggerOnce:      true,
		Threshold:        DefaultThreshold,
		Easing:           DefaultEasing,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.BaseDelay < 0 {
		errs = append(errs, fmt.Errorf("base delay %v is negative", c.BaseDelay))
	}
	if c.StaggerIncrement < 0 {
		errs = append(errs, fmt.Errorf("stagger %v is negative", c.StaggerIncrement))
	}
	if c.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration %v is negative", c.Duration))
	}
	if c.Distance < 0 {
		errs = append(errs, fmt.Errorf("distance %d is negative", c.Distance))
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		errs = append(errs, fmt.Errorf("threshold %v outside [0,1]", c.Threshold))
	}
	if len(errs) > 0 {
		return fmt.Errorf("reveal: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) easing() string {
	if c.Easing == "" {
		return DefaultEasing
	}
	return c.Easing
}
