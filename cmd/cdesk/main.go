// cdesk is the Container Desk CLI: a thin client over the external
// `container` binary and the cdesk agent.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/container-desk/cdesk/cmd/cdesk/commands"
	"github.com/container-desk/cdesk/pkg/config"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	configPath := os.Getenv("CDESK_CONFIG")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	rootCmd, err := commands.NewRootCmd(cfg, log)
	if err != nil {
		return fmt.Errorf("unable to initialize CLI: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}
