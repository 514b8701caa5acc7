package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/config"
	"github.com/dmitrijs2005/userkeeper/internal/export"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
	"github.com/dmitrijs2005/userkeeper/internal/users"
)

// App wires the user store, the export writer, and the interactive menu.
// User-facing output goes to out; diagnostics go to log.
type App struct {
	config   *config.Config
	store    *users.Store
	exporter *export.Writer
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

// NewApp builds an App that reads from standard input and writes to
// standard output. The store starts empty on every run.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	return &App{
		config:   cfg,
		store:    users.NewStore(),
		exporter: export.NewWriter(cfg.ExportPath),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}
}

// Run drives the menu until the user picks the exit choice or input ends.
// A nil return means a normal exit; a non-nil return means standard input
// failed mid-session and the process should exit with a non-zero status.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started",
		"export_path", a.config.ExportPath, "capacity", users.MaxUsers)

	if err := runMenu(ctx, a, a.reader, a.out); err != nil {
		return err
	}

	a.log.Info(ctx, "session ended", "users", a.store.Count())
	return nil
}
