package motor

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/actuator.go/pkg/cli/sh"
	"github.com/robotalks/actuator.go/pkg/l0/protocol"
)

var (
	// LEDCmd toggles the LED line.
	LEDCmd = ishell.Cmd{
		Name: "led",
		Help: "toggle LED",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.SendCommands(c, protocol.EncodeLEDToggle())
		}),
	}

	// ForwardCmd drives the motor forward.
	ForwardCmd = ishell.Cmd{
		Name:    "fwd",
		Aliases: []string{"f"},
		Help:    "MAGNITUDE (0-10)",
		Func:    sh.MustBeConnected(driveFunc(protocol.EncodeForward)),
	}

	// ReverseCmd drives the motor in reverse.
	ReverseCmd = ishell.Cmd{
		Name:    "rev",
		Aliases: []string{"b"},
		Help:    "MAGNITUDE (0-10)",
		Func:    sh.MustBeConnected(driveFunc(protocol.EncodeReverse)),
	}

	// StopCmd returns the motor to neutral.
	StopCmd = ishell.Cmd{
		Name:    "stop",
		Aliases: []string{"s"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.SendCommands(c, StopCommand())
		}),
	}
)

// StopCommand returns the command byte for neutral.
func StopCommand() byte {
	b, _ := protocol.EncodeReverse(0)
	return b
}

func driveFunc(encode func(int) (byte, error)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if len(c.Args) != 1 {
			c.Err(fmt.Errorf("MAGNITUDE required"))
			return
		}
		b, err := sh.EncodeArg(encode, c.Args[0])
		if err != nil {
			c.Err(err)
			return
		}
		sh.SendCommands(c, b)
	}
}

func init() {
	sh.AddCmds(&LEDCmd, &ForwardCmd, &ReverseCmd, &StopCmd)
}
