package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atlanticdynamic/hellodevops/internal/version"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "hellodevops",
		Version: version.Get().String(),
		Usage:   "Greeting web service with a CI test harness",
		Commands: []*cli.Command{
			newServeCmd(),
			newCheckCmd(),
			newValidateCmd(),
			newVersionCmd(),
		},
		DefaultCommand: "serve",
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
