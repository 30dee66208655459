package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"
)

// cmdRun holds what every subcommand shares.
type cmdRun struct {
	subcommands.CommandRunBase

	app *application
}

// argErr prints an error and the usage line, and returns the usage exit code.
func (r *cmdRun) argErr(usage, format string, args ...any) int {
	fmt.Fprintf(r.app.GetErr(), "b64: %s\n\nusage: b64 %s\n", fmt.Sprintf(format, args...), usage)
	return exitUsage
}

// done reports err, if any, and converts it to an exit code.
func (r *cmdRun) done(op string, err error) int {
	if err != nil {
		r.app.log.Errorw("transform failed", "op", op, "error", err)
		fmt.Fprintf(r.app.GetErr(), "b64 %s: %s\n", op, err)
		return exitError
	}
	return exitOK
}

// readInput reads all of the named file, or of stdin for "" and "-".
func (r *cmdRun) readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(r.app.stdin)
	}
	return os.ReadFile(name)
}

// inputArg returns the optional single FILE argument.
func inputArg(args []string) (string, bool) {
	switch len(args) {
	case 0:
		return "", true
	case 1:
		return args[0], true
	default:
		return "", false
	}
}
