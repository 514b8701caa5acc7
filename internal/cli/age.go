package cli

import (
	"context"
	"fmt"
)

// TotalAge prints the sum of ages across all live records. An empty store
// reports zero.
func (a *App) TotalAge(ctx context.Context) error {
	fmt.Fprintf(a.out, "Total age: %d\n", a.store.TotalAge())
	return nil
}
