package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/filetype"
	"github.com/iw2rmb/quill/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: quill [-config path] [file]")
		fs.PrintDefaults()
		fmt.Fprintln(stderr, "highlighted languages:", strings.Join(filetype.Languages(), ", "))
	}
	configPath := fs.String("config", "", "settings file (default: user config dir)/quill/config.toml")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stderr, quill.UserAgent())
		return 0
	}

	path := *configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, undecoded, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()
	for _, k := range undecoded {
		logger.Warn("unknown config key", "key", k, "file", path)
	}

	doc, status := loadDocument(fs.Arg(0), logger)
	session := editor.NewSession(doc, editor.SessionOptions{Logger: logger})
	model := editor.New(session, editorConfig(cfg, status, logger))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// newLogger logs to file when one is configured and discards otherwise.
func newLogger(file string) (*slog.Logger, func(), error) {
	if file == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(file, "quill")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}

// loadDocument opens name, or returns an empty document and the status
// message to show when there is no name or the file cannot be read.
func loadDocument(name string, logger *slog.Logger) (*buffer.Document, string) {
	if name == "" {
		return buffer.New(), ""
	}
	doc, err := buffer.Open(name)
	if err != nil {
		logger.Warn("open failed", "name", name, "err", err)
		return buffer.New(), "ERR: Could not open file: " + name
	}
	logger.Info("opened", "name", name, "lines", doc.Len(), "filetype", doc.FileType().Name)
	return doc, ""
}

func editorConfig(cfg config.Config, status string, logger *slog.Logger) editor.Config {
	ec := editor.DefaultConfig()
	ec.QuitTimes = cfg.QuitTimes
	ec.MessageTTL = cfg.MessageTTL()
	ec.Version = quill.Version()
	ec.Status = status

	if cfg.Theme != "" {
		p, err := editor.ChromaPalette(cfg.Theme)
		if err != nil {
			logger.Warn("theme not found, using default", "theme", cfg.Theme, "err", err)
		} else {
			ec.Theme = editor.NewTheme(nil, p)
		}
	}
	return ec
}
