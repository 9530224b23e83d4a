package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pb "github.com/rmoraesb/sentinela/internal/proto"
)

// uploadSystemUsers sends a per-system user export to the server and prints
// the reconciliation report.
func (a *App) uploadSystemUsers(ctx context.Context, systemID, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	report, err := a.api.UploadSystemUsers(rctx, systemID, filepath.Base(path), content)
	if err != nil {
		return err
	}

	printReport(os.Stdout, report)
	return nil
}

// uploadTruthList sends a full roster upload replacing the truth set.
func (a *App) uploadTruthList(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	accepted, rejected, err := a.api.UploadTruthList(rctx, filepath.Base(path), content)
	if err != nil {
		return err
	}

	fmt.Printf("Truth list replaced: %d accepted, %d rejected\n", accepted, rejected)
	return nil
}

func (a *App) matchPreview(ctx context.Context, systemID string) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	entries, err := a.api.MatchPreview(rctx, systemID)
	if err != nil {
		return err
	}

	printPreview(os.Stdout, entries)
	return nil
}

func (a *App) importHistory(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	records, err := a.api.ImportHistory(rctx, 20)
	if err != nil {
		return err
	}

	printHistory(os.Stdout, records)
	return nil
}

func printReport(w io.Writer, r *pb.ReconciliationReport) {
	fmt.Fprintf(w, "Identical: %d  Missing: %d  Extra: %d\n",
		r.GetIdenticalCount(), r.GetMissingCount(), r.GetExtraCount())

	if len(r.GetMissing()) > 0 {
		fmt.Fprintln(w, "Missing from truth list:")
		for _, e := range r.GetMissing() {
			fmt.Fprintf(w, "  %s\n", e.GetIdentifier())
		}
	}
	if len(r.GetExtra()) > 0 {
		fmt.Fprintln(w, "In truth list but absent from system:")
		for _, e := range r.GetExtra() {
			if e.GetName() != "" {
				fmt.Fprintf(w, "  %s (%s)\n", e.GetIdentifier(), e.GetName())
			} else {
				fmt.Fprintf(w, "  %s\n", e.GetIdentifier())
			}
		}
	}
}

func printPreview(w io.Writer, entries []*pb.PreviewEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Nothing to preview")
		return
	}
	for _, e := range entries {
		if e.GetMatchType() == "none" {
			fmt.Fprintf(w, "%s: no candidate\n", e.GetSystemIdentity())
			continue
		}
		fmt.Fprintf(w, "%s: %s via %s (%s, %d%%)\n",
			e.GetSystemIdentity(), e.GetMatchedName(), e.GetMatchedWith(),
			e.GetMatchType(), e.GetSimilarity())
	}
}

func printHistory(w io.Writer, records []*pb.ImportRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No imports recorded")
		return
	}
	for _, r := range records {
		target := r.GetSystemId()
		if target == "" {
			target = "truth-list"
		}
		fmt.Fprintf(w, "%s  %s  %s  %d/%d records  %s\n",
			r.GetCreatedAt(), target, r.GetFileName(),
			r.GetProcessedRecords(), r.GetTotalRecords(), r.GetStatus())
	}
}
