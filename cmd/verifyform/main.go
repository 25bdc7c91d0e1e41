package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/verifyinput/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "verifyform:", err)
		os.Exit(1)
	}
}
