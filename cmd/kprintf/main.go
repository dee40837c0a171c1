package main

import (
	"fmt"
	"os"

	"github.com/bjaus/kprintf/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kprintf:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
