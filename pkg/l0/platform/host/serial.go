package host

import (
	"fmt"
	"io"

	"github.com/tarm/serial"
)

// DefaultBaud is the default baud rate of the command link.
const DefaultBaud = 9600

// OpenSerial opens a serial port as the command source.
func OpenSerial(name string, baud int) (io.ReadWriteCloser, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %v", name, err)
	}
	return port, nil
}
