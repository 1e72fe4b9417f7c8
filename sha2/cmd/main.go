// Binary sha2sum prints the SHA-224 or SHA-256 digest of a
// literal string or a file, maintains .digest sidecar files,
// and runs the built-in known-answer self test.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/sha2sum/digester"
	"github.com/byte4ever/sha2sum/render"
	"github.com/byte4ever/sha2sum/selftest"
	"github.com/byte4ever/sha2sum/sha2"
)

var (
	errUsage    = errors.New("usage error")
	errMismatch = errors.New("digest mismatch")
	errSelfTest = errors.New("self test failed")
)

type config struct {
	text     string
	hasText  bool
	path     string
	test     bool
	vectors  string
	variant  sha2.Variant
	encoding render.Encoding
	format   string
	json     bool
	save     bool
	check    bool
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

//nolint:funlen // CLI flag setup is inherently long
func parseFlags(
	args []string,
	stderr io.Writer,
) (config, error) {
	const errCtx = "parsing flags"

	var (
		cfg      config
		variant  string
		encoding string
	)

	fs := flag.NewFlagSet("sha2sum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(
		&cfg.text, "string", "",
		"literal text to hash",
	)
	fs.StringVar(
		&cfg.path, "path", "",
		"file to hash",
	)
	fs.BoolVar(
		&cfg.test, "test", false,
		"run the known-answer self test",
	)
	fs.StringVar(
		&cfg.vectors, "vectors", "",
		"YAML vectors file for --test (default: built-in)",
	)
	fs.StringVar(
		&variant, "variant", "256",
		"digest variant: 224 or 256",
	)
	fs.StringVar(
		&encoding, "encoding", string(render.Hex),
		"output encoding: hex, base64, multibase, multihash, cid",
	)
	fs.StringVar(
		&cfg.format, "format", "",
		"output template with {digest} {name} {variant} {encoding}",
	)
	fs.BoolVar(
		&cfg.json, "json", false,
		"emit JSON instead of text",
	)
	fs.BoolVar(
		&cfg.save, "save", false,
		"write the hex digest to <path>.digest",
	)
	fs.BoolVar(
		&cfg.check, "check", false,
		"verify <path> against <path>.digest",
	)
	fs.BoolVar(
		&cfg.verbose, "verbose", false,
		"enable debug logging",
	)

	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf(
			"%s: %w: %w", errCtx, errUsage, err,
		)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "string" {
			cfg.hasText = true
		}
	})

	if fs.NArg() > 0 {
		return config{}, fmt.Errorf(
			"%s: %w: unexpected arguments %v",
			errCtx, errUsage, fs.Args(),
		)
	}

	modes := 0
	for _, on := range []bool{cfg.hasText, cfg.path != "", cfg.test} {
		if on {
			modes++
		}
	}

	if modes != 1 {
		return config{}, fmt.Errorf(
			"%s: %w: exactly one of --string,"+
				" --path or --test is required",
			errCtx, errUsage,
		)
	}

	if (cfg.save || cfg.check) && cfg.path == "" {
		return config{}, fmt.Errorf(
			"%s: %w: --save and --check require --path",
			errCtx, errUsage,
		)
	}

	if cfg.save && cfg.check {
		return config{}, fmt.Errorf(
			"%s: %w: only one of --save or --check"+
				" may be specified",
			errCtx, errUsage,
		)
	}

	var err error

	cfg.variant, err = sha2.ParseVariant(variant)
	if err != nil {
		return config{}, fmt.Errorf(
			"%s: %w: %w", errCtx, errUsage, err,
		)
	}

	cfg.encoding, err = render.ParseEncoding(encoding)
	if err != nil {
		return config{}, fmt.Errorf(
			"%s: %w: %w", errCtx, errUsage, err,
		)
	}

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func run(args []string, stdout, stderr io.Writer) error {
	const errCtx = "sha2sum"

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	lg := newLogger(stderr, cfg.verbose)

	switch {
	case cfg.test:
		err = runSelfTest(cfg, lg, stdout)
	case cfg.check:
		err = runCheck(cfg, lg, stdout)
	default:
		err = runDigest(cfg, lg, stdout)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func runDigest(
	cfg config,
	lg *slog.Logger,
	stdout io.Writer,
) error {
	const errCtx = "computing digest"

	msg := []byte(cfg.text)
	name := cfg.text
	format := cfg.format
	if format == "" {
		format = "{digest}"
	}

	if cfg.path != "" {
		content, err := os.ReadFile(cfg.path) //nolint:gosec // path from CLI flag
		if err != nil {
			return fmt.Errorf(
				"%s: reading input: %w", errCtx, err,
			)
		}

		msg = content
		name = cfg.path
	}

	lg.Debug(
		"hashing",
		"name", name,
		"bytes", len(msg),
		"variant", cfg.variant.String(),
	)

	dg, err := sha2.Sum(msg, cfg.variant)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	text, err := render.Encode(dg, cfg.variant, cfg.encoding)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.save {
		// Store the digest already computed from msg so the
		// sidecar matches the printed output.
		if err := digester.WriteDigest(
			cfg.path, dg.Hex(),
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		lg.Info(
			"saved digest",
			"path", cfg.path+digester.Suffix,
		)
	}

	rec := render.Record{
		Name:     name,
		Variant:  cfg.variant.String(),
		Encoding: cfg.encoding,
		Digest:   text,
	}

	return writeRecord(stdout, cfg, format, rec)
}

func writeRecord(
	stdout io.Writer,
	cfg config,
	format string,
	rec render.Record,
) error {
	const errCtx = "writing output"

	var out []byte

	if cfg.json {
		buf, err := render.JSON(rec)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		out = buf
	} else {
		out = []byte(render.Line(format, rec))
	}

	if _, err := stdout.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func runCheck(
	cfg config,
	lg *slog.Logger,
	stdout io.Writer,
) error {
	const errCtx = "checking digest"

	if _, err := os.Stat(cfg.path); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ok, err := digester.VerifyDigest(cfg.path, cfg.variant)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	status := "OK"
	if !ok {
		status = "FAILED"
	}

	lg.Debug("checked", "path", cfg.path, "ok", ok)

	if _, err := fmt.Fprintf(
		stdout, "%s: %s\n", cfg.path, status,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if !ok {
		return fmt.Errorf("%s: %w: %s", errCtx, errMismatch, cfg.path)
	}

	return nil
}

func runSelfTest(
	cfg config,
	lg *slog.Logger,
	stdout io.Writer,
) error {
	const errCtx = "running self test"

	vectors := selftest.Default()

	if cfg.vectors != "" {
		var err error

		vectors, err = loadVectors(cfg.vectors)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	rp := selftest.Run(vectors, selftest.WithLogger(lg))

	if err := writeReport(stdout, cfg.json, rp); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if !rp.OK() {
		return fmt.Errorf(
			"%s: %w: %d of %d vectors",
			errCtx, errSelfTest, rp.Failed, len(rp.Results),
		)
	}

	return nil
}

// loadVectors reads a YAML vectors file.
func loadVectors(path string) (result []selftest.Vector, retErr error) {
	const errCtx = "loading vectors file"

	fi, err := os.Open(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	vectors, err := selftest.Load(fi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return vectors, nil
}

func writeReport(
	stdout io.Writer,
	asJSON bool,
	rp selftest.Report,
) error {
	const errCtx = "writing report"

	if asJSON {
		buf, err := json.MarshalIndent(rp, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		if _, err := stdout.Write(append(buf, '\n')); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	for _, res := range rp.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}

		if _, err := fmt.Fprintf(
			stdout, "%s %s %s\n", status, res.Variant, res.Name,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if _, err := fmt.Fprintf(
		stdout, "%d passed, %d failed\n", rp.Passed, rp.Failed,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
