package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/textfield/internal/config"
	"github.com/xonecas/textfield/internal/constants"
	"github.com/xonecas/textfield/internal/highlight"
	"github.com/xonecas/textfield/internal/store"
	"github.com/xonecas/textfield/internal/tui"
)

type options struct {
	configPath string
	logPath    string
	file       string
	print      bool
	readOnly   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: data dir: %v\n", err)
		return 1
	}
	if opts.configPath == "" {
		opts.configPath = filepath.Join(dataDir, "config.toml")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logFile, err := setupLogging(cfg, opts.logPath, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath = filepath.Join(dataDir, "drafts.db")
	}
	drafts, err := store.Open(storePath, constants.DraftTTL)
	if err != nil {
		// Run without persistence rather than refuse to start.
		log.Warn().Err(err).Str("path", storePath).Msg("draft store unavailable")
	}
	defer drafts.Close()

	language := ""
	var body string
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		body = string(data)
		language = highlight.DetectLanguage(opts.file)
	}

	model := tui.New(cfg, drafts, language)
	if opts.file != "" {
		model.SetField("body", body)
	}
	if opts.readOnly {
		model.SetDisabled("body", true)
	}

	p := tea.NewProgram(model, tea.WithFilter(tui.MouseEventFilter))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := config.Watch(ctx, opts.configPath, func(msg config.ReloadedMsg) { p.Send(msg) }); err != nil {
		log.Warn().Err(err).Msg("config live reload disabled")
	}

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running textfield: %v\n", err)
		return 1
	}

	fields := final.(tui.Model).Fields()
	if opts.file != "" && !opts.readOnly {
		if err := os.WriteFile(opts.file, []byte(fields["body"]), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if opts.print {
		fmt.Println(fields["title"])
		fmt.Print(fields["body"])
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (default ~/.config/textfield/config.toml)")
	flag.StringVar(&opts.logPath, "log", "", "Path to log file (default log.file or ~/.config/textfield/textfield.log)")
	flag.BoolVar(&opts.print, "print", false, "Print the title and body to stdout on exit")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Show the body without allowing edits; the file is not written")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textfield - terminal text input playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textfield [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nWith a file, the body field edits it and saves on quit.\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)
	return opts
}

// setupLogging points the global zerolog logger at a file; stdout belongs
// to the terminal UI.
func setupLogging(cfg *config.Config, path, dataDir string) (io.Closer, error) {
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		path = filepath.Join(dataDir, "textfield.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Str("level", level.String()).Msg("textfield starting")
	return f, nil
}
