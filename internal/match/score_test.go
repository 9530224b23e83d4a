package match

import "testing"

func TestScore_ExactMatch(t *testing.T) {
	for _, s := range []string{"jdoe", "ana.silva", "MSmith"} {
		got := Score(s, s)
		if got.Type != TypeExact || got.Similarity != 100 {
			t.Errorf("Score(%q, %q) = %+v, want exact/100", s, s, got)
		}
	}

	// Exact after normalization.
	got := Score("  JDoe ", "jdoe")
	if got.Type != TypeExact || got.Similarity != 100 {
		t.Errorf("normalized equality should be exact, got %+v", got)
	}
}

func TestScore_EmptyInputsNeverMatch(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"jdoe", ""},
		{"", "jdoe"},
		{"   ", "jdoe"},
	}
	for _, c := range cases {
		got := Score(c[0], c[1])
		if got.Type != TypeNone || got.Similarity != 0 {
			t.Errorf("Score(%q, %q) = %+v, want none/0", c[0], c[1], got)
		}
	}
}

func TestScore_DomainDerived(t *testing.T) {
	got := Score("jdoe", "jdoe@corp.com")
	if got.Type != TypeDomainDerived || got.Similarity != 95 {
		t.Errorf("Score(jdoe, jdoe@corp.com) = %+v, want domain-derived/95", got)
	}
}

func TestScore_DomainDerivedPartial(t *testing.T) {
	// "ana.silv" is contained in the local part "ana.silva": 8/9 -> 89.
	got := Score("ana.silv", "ana.silva@x.com")
	if got.Type != TypePartial || got.Similarity != 89 {
		t.Errorf("got %+v, want partial/89", got)
	}

	// Below the 70 threshold: "silva" covers only 5/9 of "ana.silva", and no
	// later heuristic rescues it.
	got = Score("silva", "ana.silva@x.com")
	if got.Type != TypeNone {
		t.Errorf("got %+v, want none", got)
	}
}

func TestScore_Substring(t *testing.T) {
	// 4/5 -> 80, above the 60 threshold.
	got := Score("jdoe", "jdoe1")
	if got.Type != TypePartial || got.Similarity != 80 {
		t.Errorf("got %+v, want partial/80", got)
	}

	// Containment holds but 2/8 -> 25 is under the threshold, and the
	// edit-distance fallback scores 25 as well.
	got = Score("jd", "jdsmith1")
	if got.Type != TypeNone {
		t.Errorf("got %+v, want none", got)
	}
}

func TestScore_EditDistanceFallback(t *testing.T) {
	// Two substitutions over length 7: (7-2)/7 -> 71.
	got := Score("jhondoe", "johndoe")
	if got.Type != TypePartial || got.Similarity != 71 {
		t.Errorf("got %+v, want partial/71", got)
	}

	got = Score("jdoe", "mark")
	if got.Type != TypeNone || got.Similarity != 0 {
		t.Errorf("got %+v, want none/0", got)
	}
}

func TestScore_EditDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"jhondoe", "johndoe"},
		{"asilva", "dasilva"},
		{"brucew", "bwayne"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if ab.Similarity != ba.Similarity {
			t.Errorf("similarity not symmetric for %q/%q: %d vs %d", p[0], p[1], ab.Similarity, ba.Similarity)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"jdoe", "jdoe", 0},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
