package main

import (
	"fmt"
	"strconv"

	"github.com/maruel/subcommands"

	"github.com/picatz/b64/pkg/base64"
)

const cmdLenUsage = "len [-decoded] VALUE"

func cmdLen(app *application) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: cmdLenUsage,
		ShortDesc: "prints encoded or decoded buffer sizes",
		LongDesc: `Prints the number of symbols needed to encode VALUE bytes.

With -decoded, VALUE is an encoded string and the number of bytes it
decodes to is printed instead. Neither count includes the terminator.`,
		CommandRun: func() subcommands.CommandRun {
			c := &lenRun{}
			c.app = app
			c.Flags.BoolVar(&c.decoded, "decoded", false, "treat VALUE as encoded input")
			return c
		},
	}
}

type lenRun struct {
	cmdRun

	decoded bool
}

func (r *lenRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.argErr(cmdLenUsage, "expected exactly one VALUE, got %d arguments", len(args))
	}

	if r.decoded {
		input := []byte(args[0])
		fmt.Fprintln(r.app.GetOut(), base64.DecodedLen(input, len(input)))
		return exitOK
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return r.argErr(cmdLenUsage, "VALUE must be a non-negative integer, got %q", args[0])
	}
	if n > base64.MaxEncodeInput {
		return r.argErr(cmdLenUsage, "VALUE must be at most %d, got %d", base64.MaxEncodeInput, n)
	}

	fmt.Fprintln(r.app.GetOut(), base64.EncodedLen(n))
	return exitOK
}
