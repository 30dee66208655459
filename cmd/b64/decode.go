package main

import (
	"bytes"
	"strings"

	cristalbase64 "github.com/cristalhq/base64"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/picatz/b64/pkg/alphabet"
	"github.com/picatz/b64/pkg/base64"
)

const cmdDecodeUsage = "decode [-legacy] [-verify] [FILE]"

func cmdDecode(app *application) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: cmdDecodeUsage,
		ShortDesc: "decodes Base64 from FILE or stdin",
		LongDesc: `Decodes standard Base64 from FILE, or stdin, and writes the bytes to stdout.

Trailing line breaks are ignored. Decoding stops at the first padding
symbol. Unpadded input is accepted.`,
		CommandRun: func() subcommands.CommandRun {
			c := &decodeRun{}
			c.app = app
			c.Flags.BoolVar(&c.legacy, "legacy", false, "decode invalid symbols through the legacy sentinel instead of failing")
			c.Flags.BoolVar(&c.verify, "verify", false, "require canonical input and cross-check against a reference decoder")
			return c
		},
	}
}

type decodeRun struct {
	cmdRun

	legacy bool
	verify bool
}

func (r *decodeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	name, ok := inputArg(args)
	if !ok {
		return r.argErr(cmdDecodeUsage, "expected at most one FILE, got %d arguments", len(args))
	}
	if r.legacy && r.verify {
		return r.argErr(cmdDecodeUsage, "-legacy and -verify are mutually exclusive")
	}

	return r.done("decode", r.decode(name))
}

func (r *decodeRun) decode(name string) error {
	input, err := r.readInput(name)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	input = bytes.TrimRight(input, "\r\n")

	var opts []base64.Option
	if r.legacy {
		opts = append(opts, base64.WithLegacySymbols())
	}

	// The input length bounds the decoded length from above, for any input.
	output := make([]byte, len(input)+1)

	n, err := base64.Decode(output, input, len(input), opts...)
	if err != nil {
		return err
	}
	output = output[:n]

	r.app.log.Debugw("decoded", "input", len(input), "output", n, "legacy", r.legacy)

	if r.verify {
		if err := verifyDecoded(input, output); err != nil {
			return err
		}
	}

	if _, err := r.app.GetOut().Write(output); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

// verifyDecoded checks that input is the canonical padded encoding of
// decoded, according to the reference implementation.
func verifyDecoded(input, decoded []byte) error {
	canonical := cristalbase64.StdEncoding.EncodeToString(decoded)

	// Compare only what the decoder consumed, re-padded to whole groups.
	consumed := string(input)
	if i := bytes.IndexByte(input, alphabet.Padding); i >= 0 {
		consumed = consumed[:i]
	}
	if rem := len(consumed) % 4; rem != 0 {
		consumed += strings.Repeat(string(alphabet.Padding), 4-rem)
	}

	if canonical != consumed {
		return errors.New("verification failed: input is not the canonical encoding of its decoded bytes")
	}

	reference, err := cristalbase64.StdEncoding.DecodeString(canonical)
	if err != nil {
		return errors.Wrap(err, "verification failed: reference decoder rejected input")
	}
	if !bytes.Equal(reference, decoded) {
		return errors.New("verification failed: reference decoder disagrees")
	}
	return nil
}
