package sh

import (
	"flag"
	"os"
	"strconv"

	"github.com/robotalks/actuator.go/pkg/l0/platform/host"
	"github.com/robotalks/actuator.go/pkg/l1"
)

// Config provides options to reach a controller.
type Config struct {
	Ref l1.ControllerRef

	// SerialPort connects directly to the controller command link.
	SerialPort string
	Baud       int

	// MQTTBrokerURL specifies the broker the controllers register to.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
}

var defaultConfig = Config{
	Baud:          host.DefaultBaud,
	MQTTBrokerURL: "mqtt://localhost:1883/actuator",
}

func init() {
	if val := os.Getenv("ACTUATOR_TYPE"); val != "" {
		defaultConfig.Ref.Type = val
	}
	if val := os.Getenv("ACTUATOR_ID"); val != "" {
		defaultConfig.Ref.ID = val
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

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "type", defaultConfig.Ref.Type, "Controller type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "id", defaultConfig.Ref.ID, "Controller ID to connect.")
	flag.StringVar(&defaultConfig.SerialPort, "serial", defaultConfig.SerialPort, "Serial port of the controller command link.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate of the command link.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}
