package match

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"JDoe", "jdoe"},
		{"  Ana.Silva  ", "ana.silva"},
		{"MSMITH", "msmith"},
		{"", ""},
		{"   ", ""},
		{"\tjdoe\r", "jdoe"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLocalPart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"jdoe@corp.com", "jdoe"},
		{"jdoe", "jdoe"},
		{"a@b@c", "a"},
		{"@corp.com", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := localPart(c.in); got != c.want {
			t.Errorf("localPart(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPreferredIdentifier(t *testing.T) {
	if got := (Identity{Username: "jdoe", Email: "other@x.com"}).PreferredIdentifier(); got != "jdoe" {
		t.Errorf("username should win, got %q", got)
	}
	if got := (Identity{Email: "msmith@x.com"}).PreferredIdentifier(); got != "msmith" {
		t.Errorf("expected email local part, got %q", got)
	}
	if got := (Identity{DisplayName: "No Accounts"}).PreferredIdentifier(); got != "" {
		t.Errorf("expected empty identifier, got %q", got)
	}
}
