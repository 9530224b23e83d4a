// Package truthusers persists the authoritative imported identity list used
// as the reconciliation baseline.
package truthusers

import (
	"context"

	"github.com/rmoraesb/sentinela/internal/match"
)

type Repository interface {
	// List returns the full truth set in insertion order.
	List(ctx context.Context) ([]match.Identity, error)

	// ReplaceAll deletes the entire stored set and inserts the given
	// records. The two phases must run inside one transaction; callers are
	// expected to invoke this through dbx.WithTx so a failed insert rolls
	// the delete back.
	ReplaceAll(ctx context.Context, records []match.Identity) error
}
