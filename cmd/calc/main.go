package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zephyrtronium/calc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
