package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/cloud-ru/mcp-wealth-go/internal/cli"
	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, cfg)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
