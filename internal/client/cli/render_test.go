package cli

import (
	"bytes"
	"strings"
	"testing"

	pb "github.com/rmoraesb/sentinela/internal/proto"
)

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, &pb.ReconciliationReport{
		IdenticalCount: 2,
		MissingCount:   1,
		ExtraCount:     1,
		Missing:        []*pb.UserRef{{Identifier: "bwayne"}},
		Extra:          []*pb.UserRef{{Identifier: "csilva", Name: "Carla Silva"}},
	})

	s := out.String()
	if !strings.Contains(s, "Identical: 2  Missing: 1  Extra: 1") {
		t.Fatalf("counts line missing: %q", s)
	}
	if !strings.Contains(s, "bwayne") {
		t.Fatalf("missing entry not printed: %q", s)
	}
	if !strings.Contains(s, "csilva (Carla Silva)") {
		t.Fatalf("extra entry not printed with name: %q", s)
	}
}

func TestPrintPreview(t *testing.T) {
	var out bytes.Buffer
	printPreview(&out, []*pb.PreviewEntry{
		{SystemIdentity: "jdoe", MatchedName: "John Doe", MatchedWith: "jdoe@corp.com", MatchType: "domain-derived", Similarity: 95},
		{SystemIdentity: "ghost", MatchType: "none"},
	})

	s := out.String()
	if !strings.Contains(s, "jdoe: John Doe via jdoe@corp.com (domain-derived, 95%)") {
		t.Fatalf("matched entry not printed: %q", s)
	}
	if !strings.Contains(s, "ghost: no candidate") {
		t.Fatalf("unmatched entry not printed: %q", s)
	}
}

func TestPrintPreview_Empty(t *testing.T) {
	var out bytes.Buffer
	printPreview(&out, nil)
	if !strings.Contains(out.String(), "Nothing to preview") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestPrintSystems(t *testing.T) {
	var out bytes.Buffer
	printSystems(&out, []*pb.System{
		{Id: "sys-1", Name: "Payroll", Owner: "Finance", MfaEnabled: true},
	})

	s := out.String()
	if !strings.Contains(s, "sys-1  Payroll (owner: Finance)") {
		t.Fatalf("system line missing: %q", s)
	}
	if !strings.Contains(s, "mfa=on sso=off") {
		t.Fatalf("posture line missing: %q", s)
	}
}

func TestPrintHistory_TruthImportsLabelled(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, []*pb.ImportRecord{
		{FileName: "roster.csv", Status: "completed", TotalRecords: 4, ProcessedRecords: 4},
	})
	if !strings.Contains(out.String(), "truth-list") {
		t.Fatalf("truth import not labelled: %q", out.String())
	}
}
