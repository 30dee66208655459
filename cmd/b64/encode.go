package main

import (
	cristalbase64 "github.com/cristalhq/base64"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/picatz/b64/pkg/base64"
)

const cmdEncodeUsage = "encode [-verify] [-n] [FILE]"

func cmdEncode(app *application) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: cmdEncodeUsage,
		ShortDesc: "encodes FILE or stdin as Base64",
		LongDesc:  "Encodes the whole of FILE, or stdin, as padded standard Base64 and writes it to stdout.",
		CommandRun: func() subcommands.CommandRun {
			c := &encodeRun{}
			c.app = app
			c.Flags.BoolVar(&c.verify, "verify", false, "cross-check the output against a reference encoder")
			c.Flags.BoolVar(&c.noNewline, "n", false, "do not print a trailing newline")
			return c
		},
	}
}

type encodeRun struct {
	cmdRun

	verify    bool
	noNewline bool
}

func (r *encodeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	name, ok := inputArg(args)
	if !ok {
		return r.argErr(cmdEncodeUsage, "expected at most one FILE, got %d arguments", len(args))
	}

	return r.done("encode", r.encode(name))
}

func (r *encodeRun) encode(name string) error {
	input, err := r.readInput(name)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	output := make([]byte, base64.EncodedLen(len(input))+1)

	n, err := base64.Encode(output, input, len(input))
	if err != nil {
		return err
	}
	output = output[:n]

	r.app.log.Debugw("encoded", "input", len(input), "output", n)

	if r.verify {
		if want := cristalbase64.StdEncoding.EncodeToString(input); want != string(output) {
			return errors.Errorf("verification failed: reference encoder produced %d symbols, got %d", len(want), n)
		}
	}

	if !r.noNewline {
		output = append(output, '\n')
	}

	if _, err := r.app.GetOut().Write(output); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}
