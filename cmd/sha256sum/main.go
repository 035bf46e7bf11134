// sha256sum prints SHA-256 digests of text.
//
// With arguments, each argument is hashed and its digest printed on its own
// line. Without arguments it reads lines from standard input, prompting when
// standard input is a terminal, and stops at the first empty or
// whitespace-only line. Lines that are not valid in the chosen encoding, or
// that are longer than 16 MiB, are reported on standard error and skipped.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/zeebo/sha256"
	"github.com/zeebo/sha256/internal/display"
)

// config holds the parsed command line.
type config struct {
	encoding sha256.Encoding
	color    string
	plain    bool
	args     []string
}

func main() {
	logger := newLogger(os.Stderr)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Error("sha256sum failed", "error", err)
		os.Exit(1)
	}
}

// newLogger uses text records on a terminal and JSON records otherwise.
func newLogger(w *os.File) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(w.Fd())) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var encoding string
	cfg := new(config)

	flagSet := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&encoding, "encoding", "utf8", "text encoding of the input: utf8 or ascii")
	flagSet.StringVar(&cfg.color, "color", "auto", "colorize output: auto, always or never")
	flagSet.BoolVar(&cfg.plain, "plain", false, "print digests as a single unstyled hex string")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	enc, err := sha256.ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}
	cfg.encoding = enc

	switch cfg.color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid --color value: %q", cfg.color)
	}

	cfg.args = flagSet.Args()
	return cfg, nil
}

// profile picks the escape sequences to emit for out.
func (c *config) profile(out io.Writer) termenv.Profile {
	switch c.color {
	case "always":
		return termenv.ANSI
	case "never":
		return termenv.Ascii
	}
	if termenv.EnvNoColor() || !isTerminal(out) {
		return termenv.Ascii
	}
	return termenv.ANSI
}

func isTerminal(v interface{}) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	printer := display.New(stdout, cfg.profile(stdout), cfg.plain)

	if len(cfg.args) > 0 {
		for _, arg := range cfg.args {
			sum, err := sha256.SumString(arg, cfg.encoding)
			if err != nil {
				return err
			}
			if err := printer.Digest(sum[:]); err != nil {
				return err
			}
		}
		return nil
	}

	return session(stdin, printer, cfg.encoding, isTerminal(stdin), logger)
}

// maxLineLen bounds a single input line, terminator included.
var maxLineLen = 16 << 20

// readLine returns the next line without its line ending. A line longer
// than max is consumed and discarded, and reported with tooLong set. A final
// line without a newline is still returned; io.EOF only comes back once the
// input is exhausted.
func readLine(r *bufio.Reader, max int) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) <= max {
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}

		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && (len(buf) > 0 || tooLong):
		case err != nil:
			return "", false, err
		}

		line = strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
		return line, tooLong, nil
	}
}

// session hashes one line at a time until a blank line or end of input.
// Lines that fail to encode or are too long are logged and skipped.
func session(in io.Reader, printer *display.Printer, enc sha256.Encoding, interactive bool, logger *slog.Logger) error {
	reader := bufio.NewReaderSize(in, 64*1024)

	for {
		if interactive {
			if err := printer.Prompt(); err != nil {
				return err
			}
		}

		line, tooLong, err := readLine(reader, maxLineLen)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if tooLong {
			logger.Warn("cannot hash line", "max_bytes", maxLineLen, "error", "line too long")
			continue
		}
		if display.Done(line) {
			return nil
		}

		sum, err := sha256.SumString(line, enc)
		if err != nil {
			logger.Warn("cannot hash line", "encoding", enc.String(), "error", err)
			continue
		}
		if err := printer.Digest(sum[:]); err != nil {
			return err
		}
	}
}
