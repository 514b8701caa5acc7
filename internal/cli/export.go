package cli

import (
	"context"
	"fmt"
)

// Export writes the current usernames to the configured file, one per
// line. Success is silent; any I/O failure prints "Failed to open file."
// and the underlying cause goes to the log. The export never fails the
// session, so the returned error is always nil.
func (a *App) Export(ctx context.Context) error {
	if err := a.exporter.Export(a.store); err != nil {
		a.log.Error(ctx, "export failed", "path", a.exporter.Path(), "error", err)
		fmt.Fprintln(a.out, statusExportFailed)
		return nil
	}

	a.log.Info(ctx, "export written", "path", a.exporter.Path(), "users", a.store.Count())
	return nil
}
