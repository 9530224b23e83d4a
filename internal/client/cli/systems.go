package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/rmoraesb/sentinela/internal/proto"
)

// getYesNo prompts until the user answers y or n.
func getYesNo(a *App, prompt string) (bool, error) {
	for {
		answer, err := getSimpleText(a.reader, prompt+" (y/n)", os.Stdout)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n")
	}
}

// addSystem interactively registers a new system with its security posture.
func (a *App) addSystem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "System name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	owner, err := getSimpleText(a.reader, "Owner", os.Stdout)
	if err != nil {
		return err
	}

	mfa, err := getYesNo(a, "MFA enabled?")
	if err != nil {
		return err
	}
	sso, err := getYesNo(a, "SSO enabled?")
	if err != nil {
		return err
	}
	policy, err := getYesNo(a, "Password policy enforced?")
	if err != nil {
		return err
	}
	logging, err := getYesNo(a, "Centralized logging?")
	if err != nil {
		return err
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	created, err := a.api.CreateSystem(rctx, &pb.System{
		Name:               name,
		Description:        description,
		Owner:              owner,
		MfaEnabled:         mfa,
		SsoEnabled:         sso,
		PasswordPolicy:     policy,
		CentralizedLogging: logging,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created system %s (%s)\n", created.GetName(), created.GetId())
	return nil
}

func (a *App) showSystem(ctx context.Context, id string) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	system, err := a.api.GetSystem(rctx, id)
	if err != nil {
		return err
	}

	printSystems(os.Stdout, []*pb.System{system})
	return nil
}

// editSystem re-prompts every field of an existing system. Current values
// are shown so the operator can re-enter them.
func (a *App) editSystem(ctx context.Context, id string) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	current, err := a.api.GetSystem(rctx, id)
	if err != nil {
		return err
	}

	printSystems(os.Stdout, []*pb.System{current})

	name, err := getSimpleText(a.reader, "System name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	owner, err := getSimpleText(a.reader, "Owner", os.Stdout)
	if err != nil {
		return err
	}

	mfa, err := getYesNo(a, "MFA enabled?")
	if err != nil {
		return err
	}
	sso, err := getYesNo(a, "SSO enabled?")
	if err != nil {
		return err
	}
	policy, err := getYesNo(a, "Password policy enforced?")
	if err != nil {
		return err
	}
	logging, err := getYesNo(a, "Centralized logging?")
	if err != nil {
		return err
	}

	uctx, ucancel := a.requestCtx(ctx)
	defer ucancel()

	updated, err := a.api.UpdateSystem(uctx, &pb.System{
		Id:                 id,
		Name:               name,
		Description:        description,
		Owner:              owner,
		MfaEnabled:         mfa,
		SsoEnabled:         sso,
		PasswordPolicy:     policy,
		CentralizedLogging: logging,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated system %s (%s)\n", updated.GetName(), updated.GetId())
	return nil
}

func (a *App) removeSystem(ctx context.Context, id string) error {
	confirmed, err := getYesNo(a, fmt.Sprintf("Delete system %s?", id))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled")
		return nil
	}

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.api.DeleteSystem(rctx, id); err != nil {
		return err
	}

	fmt.Printf("Deleted system %s\n", id)
	return nil
}

func (a *App) listSystems(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	systems, err := a.api.ListSystems(rctx)
	if err != nil {
		return err
	}

	printSystems(os.Stdout, systems)
	return nil
}

func printSystems(w io.Writer, systems []*pb.System) {
	if len(systems) == 0 {
		fmt.Fprintln(w, "No systems registered")
		return
	}
	for _, s := range systems {
		fmt.Fprintf(w, "%s  %s (owner: %s)\n", s.GetId(), s.GetName(), s.GetOwner())
		fmt.Fprintf(w, "    mfa=%s sso=%s password-policy=%s centralized-logging=%s\n",
			onOff(s.GetMfaEnabled()), onOff(s.GetSsoEnabled()),
			onOff(s.GetPasswordPolicy()), onOff(s.GetCentralizedLogging()))
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) compliance(ctx context.Context) error {
	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	summary, err := a.api.ComplianceSummary(rctx)
	if err != nil {
		return err
	}

	printCompliance(os.Stdout, summary)
	return nil
}

func printCompliance(w io.Writer, s *pb.ComplianceSummaryResponse) {
	fmt.Fprintf(w, "Systems registered: %d\n", s.GetTotalSystems())
	fmt.Fprintf(w, "  MFA enabled:         %d\n", s.GetMfaEnabled())
	fmt.Fprintf(w, "  SSO enabled:         %d\n", s.GetSsoEnabled())
	fmt.Fprintf(w, "  Password policy:     %d\n", s.GetPasswordPolicy())
	fmt.Fprintf(w, "  Centralized logging: %d\n", s.GetCentralizedLogging())
}
