// Package cli implements the interactive admin console: a small REPL that
// talks to the server over gRPC.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/rmoraesb/sentinela/internal/client/client"
	"github.com/rmoraesb/sentinela/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *client.GRPCClient
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewInventoryClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

// requestCtx derives a per-RPC context with the configured timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
