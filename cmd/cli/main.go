package main

import (
	"context"
	"log"
	"os"

	"github.com/rmoraesb/sentinela/internal/buildinfo"
	"github.com/rmoraesb/sentinela/internal/client/cli"
	"github.com/rmoraesb/sentinela/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
