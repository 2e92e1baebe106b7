// Package app contains the seastream CLI application.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pushfoo/seastream/cli/filecmd"
	"github.com/pushfoo/seastream/pkg/config"
	"github.com/urfave/cli/v2"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "seastream\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a seastream instance of [cli.App] with all commands
// included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "seastream"
	ctl.Version = config.Version
	ctl.Usage = "Typed binary stream tool"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, filecmd.NewCommands()...)
	return ctl
}
