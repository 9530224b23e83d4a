// Package systemusers persists the username lists extracted from
// per-system user exports.
package systemusers

import "context"

type Repository interface {
	// ListUsernames returns the stored usernames for a system in insertion
	// order.
	ListUsernames(ctx context.Context, systemID string) ([]string, error)

	// ReplaceAll deletes every stored username for the system and inserts
	// the given list. Both phases must run inside one transaction; callers
	// are expected to invoke this through dbx.WithTx.
	ReplaceAll(ctx context.Context, systemID string, usernames []string) error
}
