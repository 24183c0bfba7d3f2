package actuator

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

// Config defines the configurations for the controller core.
type Config struct {
	Profile        string
	MotorTick      time.Duration
	StrictOffGuard bool
}

var defaultConfig = Config{
	Profile:   ProfileMotor,
	MotorTick: DefaultMotorTick,
}

func init() {
	if val := os.Getenv("ACTUATOR_PROFILE"); val != "" {
		defaultConfig.Profile = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Profile, "profile", defaultConfig.Profile, "Controller profile: motor or servo.")
	flag.DurationVar(&defaultConfig.MotorTick, "motor-tick", defaultConfig.MotorTick, "Duration of one motor PWM tick.")
	flag.BoolVar(&defaultConfig.StrictOffGuard, "strict-off-guard", defaultConfig.StrictOffGuard, "Guard the motor off phase on offDuration instead of onDuration.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewProfile creates the configured profile.
func (c *Config) NewProfile() (Profile, error) {
	switch c.Profile {
	case ProfileMotor:
		m := NewMotor()
		if c.MotorTick > 0 {
			m.Generator.Tick = c.MotorTick
		}
		m.Generator.StrictOffGuard = c.StrictOffGuard
		return m, nil
	case ProfileServo:
		return NewServo(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
}

// MustNewProfile creates the profile and fails on error.
func (c *Config) MustNewProfile() Profile {
	p, err := c.NewProfile()
	if err != nil {
		log.Fatalln(err)
	}
	return p
}
