package match

// Pair records one system identity together with the truth key it matched.
type Pair struct {
	SystemIdentity  string
	MatchedIdentity string
}

// Entry names one unmatched identity: a system login absent from the truth
// set, or a truth record absent from the system list. Name is empty for
// system-side entries, which carry no display name.
type Entry struct {
	Name       string
	Identifier string
}

// Report aggregates one reconciliation run. Detail slices preserve input
// iteration order: system list order for Identical and Missing, truth list
// order for Extra. The report is transient; it is recomputed from the two
// input sets on every comparison.
type Report struct {
	IdenticalCount int
	MissingCount   int
	ExtraCount     int
	Identical      []Pair
	Missing        []Entry
	Extra          []Entry
}

// Reconcile partitions systemIdentities into identical and missing against
// the truth records, and the truth records into extra against the system
// list. Matching is exact set membership over normalized keys: each truth
// record contributes the local part of its email and its username (up to
// two keys); a system identity is identical when its normalized form is one
// of those keys. A truth record whose preferred identifier is absent from
// the normalized system list is extra. Records with neither username nor
// email contribute no keys and are excluded from extra reporting.
//
// This is deliberately not the fuzzy Score heuristic. The persisted
// comparison must stay reproducible under exact key semantics, so the two
// algorithms share only Normalize.
func Reconcile(systemIdentities []string, truthRecords []Identity) *Report {
	truthKeys := make(map[string]struct{}, len(truthRecords)*2)
	for _, r := range truthRecords {
		if r.Email != "" {
			if k := Normalize(localPart(r.Email)); k != "" {
				truthKeys[k] = struct{}{}
			}
		}
		if r.Username != "" {
			if k := Normalize(r.Username); k != "" {
				truthKeys[k] = struct{}{}
			}
		}
	}

	systemKeys := make(map[string]struct{}, len(systemIdentities))
	for _, s := range systemIdentities {
		systemKeys[Normalize(s)] = struct{}{}
	}

	report := &Report{}

	for _, s := range systemIdentities {
		key := Normalize(s)
		if _, ok := truthKeys[key]; ok {
			report.IdenticalCount++
			report.Identical = append(report.Identical, Pair{SystemIdentity: s, MatchedIdentity: key})
		} else {
			report.MissingCount++
			report.Missing = append(report.Missing, Entry{Identifier: s})
		}
	}

	for _, r := range truthRecords {
		id := r.PreferredIdentifier()
		if id == "" {
			continue
		}
		if _, ok := systemKeys[Normalize(id)]; !ok {
			report.ExtraCount++
			report.Extra = append(report.Extra, Entry{Name: r.DisplayName, Identifier: id})
		}
	}

	return report
}
