package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/userkeeper/internal/cli"
	"github.com/dmitrijs2005/userkeeper/internal/config"
	"github.com/dmitrijs2005/userkeeper/internal/flagx"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

// versionRequested reports whether -version was passed. Other flags are
// filtered out first so the config parsers can own them.
func versionRequested(args []string) bool {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v := fs.Bool("version", false, "print build information and exit")
	_ = fs.Parse(flagx.FilterArgs(args, []string{"-version"}))
	return *v
}

func main() {
	if versionRequested(os.Args[1:]) {
		buildinfo.PrintBuildData(os.Stdout)
		return
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel)).
		With("session_id", uuid.NewString())

	app := cli.NewApp(cfg, log)
	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "standard input failed", "error", err)
		os.Exit(1)
	}
}
