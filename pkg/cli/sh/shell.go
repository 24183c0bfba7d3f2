package sh

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/actuator.go/pkg/l0/platform/host"
	"github.com/robotalks/actuator.go/pkg/l1"
	"github.com/robotalks/actuator.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/actuator.go/pkg/l1/comm/stream"
)

// ErrNotConnected indicates no controller is connected.
var ErrNotConnected = errors.New("not connected")

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	AutoConnect bool
	Timeout     time.Duration

	Shell  *ishell.Shell
	Config *Config
	Conn   *Conn
}

// Conn is the current connection to a controller.
type Conn struct {
	Name   string
	Sender l1.CommandSender
}

// Close closes the underlying transport.
func (c *Conn) Close() error {
	if closer, ok := c.Sender.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Send sends command bytes with timeout.
func (c *Conn) Send(timeout time.Duration, cmds ...byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return c.Sender.SendCommand(ctx, cmds...)
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
	defaultTimeout    = time.Second
)

var (
	evalOnly bool

	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
		&RawCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Timeout:     defaultTimeout,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Conn == nil {
			c.Err(ErrNotConnected)
			return
		}
		fn(c)
	}
}

// SendCommands sends command bytes over the current connection.
func SendCommands(c *ishell.Context, cmds ...byte) error {
	s := ShellFrom(c)
	if s.Conn == nil {
		c.Err(ErrNotConnected)
		return ErrNotConnected
	}
	if err := s.Conn.Send(s.Timeout, cmds...); err != nil {
		c.Err(err)
		return err
	}
	c.Println("OK")
	return nil
}

// ParseByte parses a raw command byte, decimal or 0x hex.
func ParseByte(arg string) (byte, error) {
	val, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q: %v", arg, err)
	}
	return byte(val), nil
}

// ParseMagnitude parses a magnitude argument.
func ParseMagnitude(arg string) (int, error) {
	val, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid magnitude %q: %v", arg, err)
	}
	return val, nil
}

// EncodeArg parses a magnitude argument and encodes it with encode.
func EncodeArg(encode func(int) (byte, error), arg string) (byte, error) {
	m, err := ParseMagnitude(arg)
	if err != nil {
		return 0, err
	}
	return encode(m)
}

// ConnectSerial connects to a controller over a serial port.
func (s *Shell) ConnectSerial(port string) error {
	rw, err := host.OpenSerial(port, s.Config.Baud)
	if err != nil {
		return err
	}
	s.setConn(&Conn{Name: port, Sender: stream.New(rw)})
	return nil
}

// ConnectMQTT connects to a controller registered on the broker.
func (s *Shell) ConnectMQTT(ref l1.ControllerRef) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	sender, err := mqtt.Dial(ctx, s.Config.MQTTBrokerURL, ref)
	if err != nil {
		return err
	}
	s.setConn(&Conn{Name: ref.Name(), Sender: sender})
	return nil
}

func (s *Shell) setConn(conn *Conn) {
	s.Disconnect()
	s.Conn = conn
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", conn.Name))
}

// Disconnect disconnects current controller.
func (s *Shell) Disconnect() {
	if s.Conn != nil {
		s.Conn.Close()
		s.Conn = nil
		s.Shell.SetPrompt(unconnectedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect {
		var err error
		switch {
		case s.Config.SerialPort != "":
			err = s.ConnectSerial(s.Config.SerialPort)
		case s.Config.Ref.IsValid():
			err = s.ConnectMQTT(s.Config.Ref)
		}
		if err != nil {
			log.Fatalf("connect failed: %v", err)
		}
	}
	defer s.Disconnect()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// DiscoverCmd discovers controllers registered on the broker.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			infoList, err := mqtt.Discover(context.Background(), s.Config.MQTTBrokerURL, mqtt.DefaultDiscoverTimeout)
			if err != nil {
				c.Err(err)
				return
			}
			if len(infoList) == 0 {
				c.Println("No controllers found")
				return
			}
			for _, info := range infoList {
				c.Println(FormatInfo(info))
			}
		},
	}

	// ConnectCmd connects a controller.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "serial PORT | TYPE ID",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("serial PORT or TYPE ID required"))
				return
			}
			var err error
			if c.Args[0] == "serial" {
				err = s.ConnectSerial(c.Args[1])
			} else {
				err = s.ConnectMQTT(l1.ControllerRef{Type: c.Args[0], ID: c.Args[1]})
			}
			if err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd disconnects current controller.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}

	// RawCmd sends bytes without validation.
	RawCmd = ishell.Cmd{
		Name:    "raw",
		Aliases: []string{"r"},
		Help:    "BYTE...",
		Func: MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("BYTE required"))
				return
			}
			cmds := make([]byte, 0, len(c.Args))
			for _, arg := range c.Args {
				b, err := ParseByte(arg)
				if err != nil {
					c.Err(err)
					return
				}
				cmds = append(cmds, b)
			}
			SendCommands(c, cmds...)
		}),
	}
)

// FormatInfo prints ControllerInfo into friendly string for display.
func FormatInfo(info l1.ControllerInfo) string {
	str := info.Ref.Name()
	if info.Meta.Profile != "" {
		str += " [" + info.Meta.Profile + "]"
	}
	if info.Meta.Description != "" {
		str += ": " + info.Meta.Description
	}
	return str
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(Default()).WithAutoConnect(true).Run(flag.Args()...)
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}
