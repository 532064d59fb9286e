package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/syncbox/syncbox/internal/client/config"
	"github.com/syncbox/syncbox/internal/cryptox"
	"github.com/syncbox/syncbox/internal/logging"
)

type App struct {
	config *config.Config
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if err := cryptox.Initialize(); err != nil {
		return nil, err
	}
	return &App{
		config: c,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}, nil
}

// Run reads commands until exit or EOF. Each command gets a context bounded
// by the configured request timeout; note the password stretch itself cannot
// be interrupted once started.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "syncbox key tool (server endpoint:", a.config.ServerEndpointAddr+")")
	a.printHelp()

	for {
		cmd, err := GetSimpleText(a.reader, "Command", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			a.log.Error(ctx, "input failed", "err", err)
			return
		}

		switch strings.ToLower(cmd) {
		case "create-account":
			a.runCommand(ctx, a.CreateAccount)
		case "recover":
			a.runCommand(ctx, a.RecoverKey)
		case "verifier":
			a.runCommand(ctx, a.Verifier)
		case "help":
			a.printHelp()
		case "exit", "quit":
			return
		case "":
			// ignore empty input
		default:
			fmt.Fprintf(a.out, "Unknown command %q; try help\n", cmd)
		}
	}
}

func (a *App) runCommand(ctx context.Context, fn func(ctx context.Context) error) {
	cmdCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := fn(cmdCtx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  create-account  create a new account key bundle
  recover         recover a data key from a protected envelope
  verifier        recompute a password verifier from a recovery key
  help            show this help
  exit            quit`)
}
