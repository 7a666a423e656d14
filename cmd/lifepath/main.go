// Command lifepath finds a route for an agent across a cellular automaton
// that advances one generation per step.
//
// Usage:
//
//	lifepath solve [flags] [FILE]
//	lifepath verify [flags] FILE PATHFILE
//	lifepath step [flags] [FILE]
//	lifepath config
//
// FILE defaults to standard input. Exit status is 0 on success, 1 on
// failure (including when no route is found) and 2 on an internal
// consistency error.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
