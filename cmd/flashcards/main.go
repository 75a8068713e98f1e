package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/flashcards/internal/cli"
)

var errNotTerminal = errors.New("flashcards needs an interactive terminal")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := cli.CreateRootCommand(cli.NewFlags(), nil)
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return errNotTerminal
		}
		return nil
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "flashcards: %v\n", err)
		return 1
	}
	return 0
}
