package servo

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/actuator.go/pkg/cli/sh"
	"github.com/robotalks/actuator.go/pkg/l0/protocol"
)

var (
	// XCmd positions the X axis.
	XCmd = ishell.Cmd{
		Name: "x",
		Help: "POSITION (0-10)",
		Func: sh.MustBeConnected(axisFunc(protocol.EncodeXAxis)),
	}

	// YCmd positions the Y axis.
	YCmd = ishell.Cmd{
		Name: "y",
		Help: "POSITION (0-10)",
		Func: sh.MustBeConnected(axisFunc(protocol.EncodeYAxis)),
	}

	// CenterCmd centers both axes.
	CenterCmd = ishell.Cmd{
		Name: "center",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			mid := protocol.MaxMagnitude / 2
			x, _ := protocol.EncodeXAxis(mid)
			y, _ := protocol.EncodeYAxis(mid)
			sh.SendCommands(c, x, y)
		}),
	}
)

func axisFunc(encode func(int) (byte, error)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if len(c.Args) != 1 {
			c.Err(fmt.Errorf("POSITION required"))
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
	sh.AddCmds(&XCmd, &YCmd, &CenterCmd)
}
