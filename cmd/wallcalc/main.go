package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/WallCalc/internal/cli"
	"github.com/piwi3910/WallCalc/internal/project"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	env, err := project.LoadEnv()
	if err != nil {
		return err
	}

	cli.SetVersion(version, commit, date)
	c := cli.New(os.Stdout, os.Stderr, env)
	return c.Execute(ctx, os.Args[1:])
}
