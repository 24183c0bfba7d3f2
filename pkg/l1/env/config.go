package env

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/actuator.go/pkg/framework"
	"github.com/robotalks/actuator.go/pkg/l0/actuator"
	"github.com/robotalks/actuator.go/pkg/l0/platform/host"
	"github.com/robotalks/actuator.go/pkg/l1"
	"github.com/robotalks/actuator.go/pkg/l1/comm/mqtt"
)

// Config provides options to run a controller on a host.
type Config struct {
	Ref         l1.ControllerRef
	Description string

	// SerialPort is the command link, e.g. /dev/ttyUSB0.
	SerialPort string
	Baud       int

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL  string
	ReportInterval time.Duration
}

var defaultConfig = Config{
	Baud:           host.DefaultBaud,
	ReportInterval: mqtt.DefaultReportInterval,
}

func init() {
	if val := os.Getenv("ACTUATOR_ID"); val != "" {
		defaultConfig.Ref.ID = val
	} else {
		defaultConfig.Ref.ID = MachineID()
	}
	if val := os.Getenv("ACTUATOR_SERIAL"); val != "" {
		defaultConfig.SerialPort = val
	}
	if val := os.Getenv("ACTUATOR_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
	if val := os.Getenv("ACTUATOR_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "type", defaultConfig.Ref.Type, "Controller type, defaults to the profile.")
	flag.StringVar(&defaultConfig.Ref.ID, "id", defaultConfig.Ref.ID, "Controller ID.")
	flag.StringVar(&defaultConfig.Description, "desc", defaultConfig.Description, "Controller description.")
	flag.StringVar(&defaultConfig.SerialPort, "serial", defaultConfig.SerialPort, "Serial port of the command link.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate of the command link.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL.")
	flag.DurationVar(&defaultConfig.ReportInterval, "report-interval", defaultConfig.ReportInterval, "Interval of state reports.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env is everything needed to run a controller on a host.
type Env struct {
	Config     *Config
	Platform   *host.Platform
	Controller *actuator.Controller
	Bridge     *mqtt.Bridge
}

// Info returns the controller info for registration.
func (c *Config) Info(profile actuator.Profile) l1.ControllerInfo {
	info := l1.ControllerInfo{
		Ref:  c.Ref,
		Meta: l1.ControllerMeta{Description: c.Description, Profile: profile.Name()},
	}
	if info.Ref.Type == "" {
		info.Ref.Type = profile.Name()
	}
	return info
}

// NewEnv creates Env running profile.
func (c *Config) NewEnv(profile actuator.Profile) (*Env, error) {
	info := c.Info(profile)
	env := &Env{Config: c}
	var bridge *mqtt.Bridge
	if c.MQTTBrokerURL != "" {
		if !info.Ref.IsValid() {
			return nil, fmt.Errorf("controller type and id must be specified")
		}
		var err error
		if bridge, err = mqtt.NewBridge(c.MQTTBrokerURL, info); err != nil {
			return nil, fmt.Errorf("create MQTT bridge error: %v", err)
		}
	}
	// opened last, nothing below returns an error.
	if c.SerialPort != "" {
		port, err := host.OpenSerial(c.SerialPort, c.Baud)
		if err != nil {
			return nil, err
		}
		env.Platform = host.New(port)
	} else {
		env.Platform = host.New(nil)
	}
	env.Controller = actuator.NewController(env.Platform, profile)
	if bridge != nil {
		bridge.Handler = env.Platform
		bridge.State = profile
		bridge.Interval = c.ReportInterval
		env.Bridge = bridge
	}
	if c.SerialPort == "" && env.Bridge == nil {
		glog.Warning("no command source configured, only power-on state will be generated")
	}
	return env, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv(profile actuator.Profile) *Env {
	env, err := c.NewEnv(profile)
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

// Runnables returns everything to be run.
func (e *Env) Runnables() []fx.Runnable {
	runners := []fx.Runnable{
		fx.NamedRun("source", e.Platform),
		e.Controller,
	}
	if e.Bridge != nil {
		runners = append(runners, e.Bridge)
	}
	return runners
}
