package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cognicore/canon/pkg/canon"
	"github.com/cognicore/canon/pkg/canon/batch"
	"github.com/cognicore/canon/pkg/canon/chunk"
	"github.com/cognicore/canon/pkg/canon/config"
	"github.com/cognicore/canon/pkg/canon/extract"
	"github.com/cognicore/canon/pkg/canon/logging"
)

const (
	modeNormalize = "normalize"
	modeChunk     = "chunk"
)

type options struct {
	configPath string
	dbPath     string
	mode       string
	query      string
	html       bool
	trace      bool
	batch      bool
	logJSON    bool
	logFile    string
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.configPath, "config", os.Getenv("CANON_CONFIG"), "Config file (YAML, optional)")
	flag.StringVar(&opts.dbPath, "db", os.Getenv("CANON_DB"), "Lexical resource database (optional)")
	flag.StringVar(&opts.mode, "mode", modeNormalize, "normalize or chunk")
	flag.StringVar(&opts.query, "query", "", "One-shot input (non-interactive mode)")
	flag.BoolVar(&opts.html, "html", false, "Treat input as HTML and extract its text first")
	flag.BoolVar(&opts.trace, "trace", false, "Print every normalization stage")
	flag.BoolVar(&opts.batch, "batch", false, "Read lines or JSONL docs from stdin, write JSONL records to stdout")
	flag.BoolVar(&opts.logJSON, "log-json", envBool("CANON_LOG_JSON"), "Log in JSON format")
	flag.StringVar(&opts.logFile, "log-file", "", "Append logs to this file instead of stderr")
	flag.Parse()

	if err := validateOptions(opts); err != nil {
		log.Fatal(err)
	}

	os.Exit(run(context.Background(), opts, os.Stdin, os.Stdout))
}

// run executes the selected mode and returns the process exit code. Resources
// are released before it returns.
func run(ctx context.Context, opts options, in io.Reader, out io.Writer) int {
	engine, logger, cleanup, err := newEngine(ctx, opts)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer cleanup()

	// Batch mode
	if opts.batch {
		proc := batch.NewProcessor(engine, engine)
		proc.SetLogger(logger)
		stats, err := proc.Run(ctx, in, out)
		if err != nil {
			logger.Error("batch aborted", "error", err, "records", stats.Records)
			return 1
		}
		logger.Info("batch done", "records", stats.Records, "failed", stats.Failed)
		return 0
	}

	// One-shot mode
	if opts.query != "" {
		if err := execute(out, engine, opts, opts.query); err != nil {
			logger.Error("query failed", "error", err)
			return 1
		}
		return 0
	}

	// Interactive mode
	fmt.Fprintln(out, "===========================================")
	fmt.Fprintln(out, "  Canon CLI")
	fmt.Fprintf(out, "  mode: %s\n", opts.mode)
	fmt.Fprintln(out, "===========================================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type a sentence (Ctrl+D to exit):")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := execute(out, engine, opts, line); err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}

	fmt.Fprintln(out, "\nGoodbye!")
	return 0
}

func validateOptions(opts options) error {
	switch opts.mode {
	case modeNormalize, modeChunk:
	default:
		return fmt.Errorf("--mode must be %q or %q, got %q", modeNormalize, modeChunk, opts.mode)
	}
	if opts.trace && opts.mode != modeNormalize {
		return fmt.Errorf("--trace only applies to --mode %s", modeNormalize)
	}
	if opts.batch && opts.query != "" {
		return fmt.Errorf("--batch and --query are mutually exclusive")
	}
	return nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func execute(w io.Writer, engine *canon.Canon, opts options, input string) error {
	if opts.html {
		input = extract.String(input)
	}

	switch {
	case opts.mode == modeChunk:
		tree, err := engine.Parse(input)
		if err != nil {
			return fmt.Errorf("chunk: %w", err)
		}
		for _, c := range chunk.Flatten(tree) {
			fmt.Fprintf(w, "  • %s\n", c)
		}
		fmt.Fprintf(w, "  tree: %s\n", tree)

	case opts.trace:
		stages, err := engine.Trace(input)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		for _, s := range stages {
			fmt.Fprintf(w, "  %-12s %q\n", s.Stage, s.Output)
		}

	default:
		out, err := engine.Normalize(input)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

// newEngine is replaced in tests.
var newEngine = buildEngine

func buildEngine(ctx context.Context, opts options) (*canon.Canon, logging.Logger, func(), error) {
	loader := config.Loader{
		ConfigPath: opts.configPath,
		DBPath:     opts.dbPath,
	}

	components, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := logging.Config{
		JSON: opts.logJSON || components.Config.Log.JSON,
		File: components.Config.Log.File,
	}
	if opts.logFile != "" {
		logCfg.File = opts.logFile
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		components.Close()
		return nil, nil, nil, err
	}

	engine, err := canon.New(canon.Options{
		Pipeline: components.Pipeline,
		Chunker:  components.Chunker,
		Store:    components.Store,
		Logger:   logger,
	})
	if err != nil {
		components.Close()
		logger.Close()
		return nil, nil, nil, err
	}

	stats := components.Lexicon.Stats()
	logger.Debug("engine ready",
		"words", stats.Words,
		"exceptions", stats.Exceptions,
		"grammar_rules", len(components.Grammar.Patterns()),
		"db", components.Config.Resources.DB,
	)

	cleanup := func() {
		engine.Close()
		logger.Close()
	}
	return engine, logger, cleanup, nil
}
