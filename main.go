// goban-local is a Go rules engine that plays over GTP on stdin and stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"goban-local/config"
	"goban-local/engine"
	"goban-local/engine/gtp"
	"goban-local/engine/local"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize   = flag.Int("boardsize", 0, "Board size of the first game, overrides the config")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config to the user config directory and exit")
)

func main() {
	flag.Usage = config.Usage("goban-local speaks GTP on stdin/stdout.", flag.PrintDefaults)
	flag.Parse()

	if *flagVersion {
		fmt.Printf("goban-local %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagWriteConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	logger, closeLog, err := initLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("gtp session failed", slog.Any("err", err))
		closeLog()
		os.Exit(1)
	}
}

// run plays GTP sessions against a fresh local engine.
func run(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	gameCfg := engine.DefaultConfig()
	gameCfg.BoardSize = cfg.Board.DefaultSize
	if *flagBoardSize >= config.MinBoardSize && *flagBoardSize <= config.MaxBoardSize {
		gameCfg.BoardSize = *flagBoardSize
	}

	eng, err := local.NewEngine(gameCfg, logger)
	if err != nil {
		return err
	}
	defer eng.Close()

	logger.Info("starting gtp session", slog.String("version", Version), slog.Int("boardsize", gameCfg.BoardSize))
	return gtp.NewServer(eng, Version, logger).Serve(in, out)
}

// initLogger builds the logger. Stdout carries the protocol, so logs go to
// the configured file or to stderr.
func initLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, closeLog, nil
}
