// Package app is the I/O layer of the huffle command: it validates the
// options, reads the input, runs the codec and writes the result.
package app

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffle"
	"github.com/chronos-tachyon/huffle/internal/charset"
	"github.com/chronos-tachyon/huffle/internal/config"
)

// Options are the command line choices of one run.
type Options struct {
	// String is the input text, used iff HasString is set.
	String    string
	HasString bool

	// File is the input path, used iff it is non-empty.
	File string

	Decode bool

	// Output is the destination path; empty means stdout.
	Output string
}

// UsageError reports options that cannot be run.
type UsageError struct {
	Msg string
}

func (e UsageError) Error() string {
	return e.Msg
}

// IsUsageError returns true iff err is, or wraps, a UsageError.
func IsUsageError(err error) bool {
	var usage UsageError
	return errors.As(err, &usage)
}

// Validate checks that exactly one input was given.
func (o Options) Validate() error {
	switch {
	case o.HasString && o.File != "":
		return UsageError{Msg: "-s and -f are mutually exclusive"}
	case !o.HasString && o.File == "":
		return UsageError{Msg: "one of -s or -f is required"}
	}
	return nil
}

// App runs one encode or decode against the configured input charset and
// output mode, printing results to stdout unless an output file is given.
type App struct {
	conf   *config.Conf
	log    zerolog.Logger
	stdout io.Writer
}

// New constructs an App.
func New(conf *config.Conf, log zerolog.Logger, stdout io.Writer) *App {
	return &App{conf: conf, log: log, stdout: stdout}
}

// Run executes one encode or decode.
func (a *App) Run(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Decode {
		return a.decode(opts)
	}
	return a.encode(opts)
}

func (a *App) encode(opts Options) error {
	text, err := a.readText(opts)
	if err != nil {
		return err
	}

	header, bits, err := huffle.Encode(text)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	stats := huffle.ComputeStats(text, header, bits)
	a.log.Debug().Str("header", string(header)).Int("bits", len(bits)).Msg("encoded")
	a.log.Info().
		Uint64("input_bytes", stats.InputBytes).
		Uint64("header_bytes", stats.HeaderBytes).
		Uint64("payload_bits", stats.PayloadBits).
		Uint64("container_bytes", stats.ContainerBytes).
		Float64("ratio", stats.Ratio()).
		Msg("compressed")

	if opts.Output == "" && a.mode() == config.OutputModeText {
		_, err = fmt.Fprintln(a.stdout, huffle.FormatText(header, bits))
		return err
	}

	data, err := huffle.PackContainer(header, bits)
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	if opts.Output == "" {
		_, err = fmt.Fprintln(a.stdout, hex.EncodeToString(data))
		return err
	}
	return a.writeFile(opts.Output, data)
}

func (a *App) decode(opts Options) error {
	var (
		header huffle.HeaderString
		bits   huffle.Bitstring
		err    error
	)
	if opts.HasString {
		header, bits, err = a.parseString(opts.String)
	} else {
		var data []byte
		data, err = os.ReadFile(opts.File)
		if err != nil {
			return err
		}
		a.log.Debug().Str("file", opts.File).Int("bytes", len(data)).Msg("read container")
		header, bits, err = huffle.ParseContainer(data)
	}
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	text, err := huffle.Decode(header, bits)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	a.log.Debug().Int("bytes", len(text)).Msg("decoded")

	if opts.Output == "" {
		_, err = fmt.Fprintln(a.stdout, text)
		return err
	}
	return a.writeFile(opts.Output, []byte(text))
}

func (a *App) parseString(s string) (huffle.HeaderString, huffle.Bitstring, error) {
	if a.mode() == config.OutputModeContainer {
		data, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", huffle.ErrMalformedContainer, err)
		}
		return huffle.ParseContainer(data)
	}
	return huffle.ParseText(s)
}

func (a *App) readText(opts Options) (string, error) {
	if opts.HasString {
		return opts.String, nil
	}
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return "", err
	}
	name := a.conf.String(config.KeyInputCharset, "utf-8")
	a.log.Debug().Str("file", opts.File).Str("charset", name).Int("bytes", len(data)).Msg("read input")
	return charset.Decode(name, data)
}

func (a *App) writeFile(path string, data []byte) error {
	perm := os.FileMode(a.conf.Int(config.KeyOutputPerm, 0644))
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	a.log.Info().Str("file", path).Int("bytes", len(data)).Msg("written")
	return nil
}

func (a *App) mode() string {
	return a.conf.String(config.KeyOutputMode, config.OutputModeText)
}
