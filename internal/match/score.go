package match

import (
	"math"
	"strings"
)

// Type classifies how strongly two identities matched.
type Type int

const (
	// TypeNone means the identities did not match at all.
	TypeNone Type = iota
	// TypeExact means the normalized forms are equal.
	TypeExact
	// TypeDomainDerived means the system identity equals the local part of
	// the truth identity's email address.
	TypeDomainDerived
	// TypePartial means a substring or edit-distance heuristic matched
	// above its acceptance threshold.
	TypePartial
)

func (t Type) String() string {
	switch t {
	case TypeExact:
		return "exact"
	case TypeDomainDerived:
		return "domain-derived"
	case TypePartial:
		return "partial"
	default:
		return "none"
	}
}

// Result is the outcome of scoring one system identity against one truth
// identity. Similarity is an integer percentage in [0, 100]; TypeExact
// always carries 100.
type Result struct {
	Type       Type
	Similarity int
}

// Acceptance thresholds for the partial branches. These are policy
// constants: changing them changes which records the advisory discrepancy
// screen flags, so they are fixed here rather than configurable.
const (
	substringThreshold = 60
	partialThreshold   = 70
	domainDerivedScore = 95
)

// Score computes the match strength between a system-side identity and a
// truth-side identity. The heuristics run in precedence order and the first
// satisfied one wins: exact equality, email local-part equality, local-part
// substring containment, plain substring containment, and finally a
// Levenshtein edit-distance fallback. Cheap checks short-circuit before the
// O(n*m) distance computation.
//
// Score is advisory only. The persisted comparison feature goes through
// Reconcile, which does exact key membership and never calls Score.
func Score(systemIdentity, truthIdentity string) Result {
	a := Normalize(systemIdentity)
	b := Normalize(truthIdentity)

	// Empty keys never match anything, including each other.
	if a == "" || b == "" {
		return Result{Type: TypeNone}
	}

	if a == b {
		return Result{Type: TypeExact, Similarity: 100}
	}

	if strings.Contains(b, "@") {
		local := localPart(b)
		if local == a {
			return Result{Type: TypeDomainDerived, Similarity: domainDerivedScore}
		}
		if local != "" && (strings.Contains(local, a) || strings.Contains(a, local)) {
			if sim := lengthRatio(a, local); sim >= partialThreshold {
				return Result{Type: TypePartial, Similarity: sim}
			}
		}
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		if sim := lengthRatio(a, b); sim >= substringThreshold {
			return Result{Type: TypePartial, Similarity: sim}
		}
	}

	if sim := editSimilarity(a, b); sim >= partialThreshold {
		return Result{Type: TypePartial, Similarity: sim}
	}

	return Result{Type: TypeNone}
}

// lengthRatio expresses how much of the longer string the shorter one
// covers, as an integer percentage. Inputs are non-empty.
func lengthRatio(a, b string) int {
	la, lb := len(a), len(b)
	shorter, longer := la, lb
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return int(math.Round(float64(shorter) / float64(longer) * 100))
}

// editSimilarity converts the Levenshtein distance between a and b into an
// integer percentage relative to the longer string. Inputs are non-empty,
// so the division is safe.
func editSimilarity(a, b string) int {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	d := levenshtein(a, b)
	return int(math.Round(float64(longer-d) / float64(longer) * 100))
}

// levenshtein computes the classic edit distance using two rolling rows.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
