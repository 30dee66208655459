// Command b64 encodes and decodes standard Base64.
//
// Usage:
//
//	b64 encode [-verify] [-n] [FILE]
//	b64 decode [-legacy] [-verify] [FILE]
//	b64 len [-decoded] VALUE
//
// Input is read from FILE, or from standard input when FILE is omitted
// or "-", and is transformed in one shot.
//
// With -verify, the result is cross-checked against an independent Base64
// implementation, and decoding additionally requires canonical input.
//
// With -legacy, decode accepts symbols outside of the alphabet and
// decodes them the way historical firmware did, instead of failing.
//
// The LOGGING_LEVEL environment variable selects the log level,
// "PRODUCTION" by default, or "DEVELOPMENT".
//
// Exit status is 0 on success, 1 when a transform fails, and 2 on usage
// errors.
package main

import (
	"io"
	"os"

	"github.com/maruel/subcommands"
	"github.com/united-manufacturing-hub/umh-utils/env"
	"github.com/united-manufacturing-hub/umh-utils/logger"
	"go.uber.org/zap"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// application is a subcommands.Application whose streams and logger can
// be replaced in tests.
type application struct {
	subcommands.DefaultApplication

	log   *zap.SugaredLogger
	stdin io.Reader
	out   io.Writer
	err   io.Writer
}

func (a *application) GetOut() io.Writer { return a.out }

func (a *application) GetErr() io.Writer { return a.err }

func newApplication(log *zap.SugaredLogger, stdin io.Reader, out, err io.Writer) *application {
	a := &application{
		log:   log,
		stdin: stdin,
		out:   out,
		err:   err,
	}

	a.DefaultApplication = subcommands.DefaultApplication{
		Name:  "b64",
		Title: "Standard Base64 encoder and decoder.",
		Commands: []*subcommands.Command{
			subcommands.CmdHelp,
			cmdEncode(a),
			cmdDecode(a),
			cmdLen(a),
		},
	}

	return a
}

func main() {
	logLevel, _ := env.GetAsString("LOGGING_LEVEL", false, "PRODUCTION") //nolint:errcheck
	log := logger.New(logLevel)

	app := newApplication(log, os.Stdin, os.Stdout, os.Stderr)
	code := subcommands.Run(app, os.Args[1:])

	_ = log.Sync()
	os.Exit(code)
}
