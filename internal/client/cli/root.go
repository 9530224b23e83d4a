package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return ""
}

func (a *App) report(err error) {
	if err != nil {
		log.Printf("error: %s", err.Error())
	}
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the inventory console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("inv %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: systems, system <id>, addsystem, editsystem <id>, delsystem <id>, upload <system-id> <file>, truth <file>, preview <system-id>, compliance, history, ping, exit")
			} else {
				fmt.Println("Available commands: register, login, ping")
			}

		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "ping":
			if err := a.api.Ping(ctx); err != nil {
				fmt.Println("Server unavailable")
			} else {
				fmt.Println("OK")
			}
		case "systems":
			a.report(a.listSystems(ctx))
		case "system":
			if len(args) != 1 {
				fmt.Println("Usage: system <id>")
				continue
			}
			a.report(a.showSystem(ctx, args[0]))
		case "addsystem":
			a.report(a.addSystem(ctx))
		case "editsystem":
			if len(args) != 1 {
				fmt.Println("Usage: editsystem <id>")
				continue
			}
			a.report(a.editSystem(ctx, args[0]))
		case "delsystem":
			if len(args) != 1 {
				fmt.Println("Usage: delsystem <id>")
				continue
			}
			a.report(a.removeSystem(ctx, args[0]))
		case "upload":
			if len(args) != 2 {
				fmt.Println("Usage: upload <system-id> <file>")
				continue
			}
			a.report(a.uploadSystemUsers(ctx, args[0], args[1]))
		case "truth":
			if len(args) != 1 {
				fmt.Println("Usage: truth <file>")
				continue
			}
			a.report(a.uploadTruthList(ctx, args[0]))
		case "preview":
			if len(args) != 1 {
				fmt.Println("Usage: preview <system-id>")
				continue
			}
			a.report(a.matchPreview(ctx, args[0]))
		case "compliance":
			a.report(a.compliance(ctx))
		case "history":
			a.report(a.importHistory(ctx))
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
