// Command datekit exposes the scheduling date conversions, the credential
// checks and the schedule export on the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain executes the command tree and maps the outcome to an exit code.
func runMain(args []string, stdout, stderr io.Writer) int {
	// Cancel on SIGINT (Ctrl+C) or SIGTERM so serve can shut down cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := newApp(stdout, stderr)
	root := a.rootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(stderr, err)
		return config.ExitCodeError
	}

	a.logger.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}
