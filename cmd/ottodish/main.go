// Ottodish turns templated dish descriptions into structured records.
//
// Usage:
//
//	ottodish parse [file|-] [--format text|json|yaml|markdown] [--validate] [--strict]
//	ottodish batch <glob>... [--workers N]
//	ottodish watch <dir>
//	ottodish template [--yaml]
//	ottodish validate [file|-]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/ottodish/internal/display"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{}
	err := c.command().ExecuteContext(ctx)
	c.close()

	if err != nil {
		fmt.Fprintln(os.Stderr, display.UrgentStyle.Render("error: "+err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Exit codes.
const (
	exitFailure = 1 // unreadable input, bad config, not text
	exitInvalid = 2 // record failed validation
)

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}
