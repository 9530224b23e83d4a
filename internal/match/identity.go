// Package match implements the identity comparison core: normalization of
// raw identity tokens, a fuzzy similarity scorer used for advisory
// discrepancy display, and the exact set-membership reconciliation that
// backs the persisted comparison feature. The scorer and the reconciler are
// intentionally independent algorithms; see Score and Reconcile.
package match

// Source tells which side of a comparison an identity record came from.
type Source int

const (
	// SourceImportedTruth marks records from the authoritative imported list.
	SourceImportedTruth Source = iota
	// SourceSystemExtract marks records extracted from a per-system export.
	SourceSystemExtract
)

// Identity is one human identity as seen in the truth set or in a system's
// user list. At least one of Username or Email must be set for the record
// to participate in matching; a record carrying only a display name can be
// listed but never matched.
type Identity struct {
	DisplayName string
	Email       string
	Username    string
	Department  string
	Source      Source
}

// Matchable reports whether the record can take part in key matching.
func (i Identity) Matchable() bool {
	return i.Username != "" || i.Email != ""
}

// PreferredIdentifier returns the identifier used when reporting the record:
// the username when present, otherwise the local part of the email address.
// Empty when the record has neither.
func (i Identity) PreferredIdentifier() string {
	if i.Username != "" {
		return i.Username
	}
	return localPart(i.Email)
}
