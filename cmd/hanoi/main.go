package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/paritytowers/cmd/internal/history"
	"github.com/nelhage/paritytowers/cmd/internal/solve"
	"github.com/nelhage/paritytowers/cmd/internal/sweep"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&solve.Command{}, "")
	subcommands.Register(&sweep.Command{}, "")
	subcommands.Register(&history.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
