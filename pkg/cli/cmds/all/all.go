// Package all registers every command set with the shell.
package all

import (
	// motor profile commands
	_ "github.com/robotalks/actuator.go/pkg/cli/cmds/motor"
	// servo profile commands
	_ "github.com/robotalks/actuator.go/pkg/cli/cmds/servo"
)
