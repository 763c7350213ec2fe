package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/321BadgerCode/gibberish-generator/pkg/markov"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "./gibberish.json", "path to the JSON configuration file")
	seed := flag.Uint64("seed", 0, "random seed for reproducible output, 0 uses the process source")
	from := flag.String("from", "", "text to continue generating from")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		return 1
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gibberish: %v\n", err)
		return 1
	}

	var logLevel slog.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Standard output carries only generated text, so all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logger.Debug("Starting gibberish", "version", Version, "commit", Commit, "build_date", BuildDate)

	wordCount := config.WordCount
	if flag.NArg() == 2 {
		wordCount, err = strconv.Atoi(flag.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "gibberish: invalid word count %q\n", flag.Arg(1))
			return 1
		}
	}

	tokenizerOpts := []markov.Option{markov.WithTokenLimit(config.TokenLimit)}
	if config.LineBoundaries {
		tokenizerOpts = append(tokenizerOpts, markov.WithLineBoundaries())
	}

	model := markov.New(markov.NewDefaultTokenizer(tokenizerOpts...))
	model.SetLogger(logger)

	input, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gibberish: %v\n", err)
		return 1
	}

	start := time.Now()
	trainErr := model.Train(input)
	// The input is fully consumed before any generation starts.
	if err := input.Close(); err != nil {
		logger.Warn("Failed to close input file", "error", err)
	}
	if trainErr != nil {
		fmt.Fprintf(os.Stderr, "gibberish: %v\n", trainErr)
		return 1
	}

	stats := model.Stats()
	logger.Info("Model built",
		"states", stats.States,
		"transitions", stats.Transitions,
		"vocabulary", stats.Vocabulary,
		"starters", stats.Starters,
		"duration", time.Since(start).String(),
	)

	genOpts := []markov.GenerateOption{markov.WithMaxWords(wordCount)}
	if *seed != 0 {
		genOpts = append(genOpts, markov.WithRand(rand.New(rand.NewPCG(*seed, 0))))
	}

	var text string
	if *from != "" {
		text, err = model.GenerateFrom(*from, genOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gibberish: %v\n", err)
			return 1
		}
	} else {
		text = model.Generate(genOpts...)
	}

	fmt.Println(text)
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gibberish [flags] file [nwords]")
	flag.PrintDefaults()
}
