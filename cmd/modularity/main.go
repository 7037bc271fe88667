// SPDX-License-Identifier: MIT

// Command modularity generates random networks and scores community
// partitions over them, either once ("score") or interactively ("session").
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "modularity:", err)
		os.Exit(1)
	}
}
