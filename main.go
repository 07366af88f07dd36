// cdesk-agent is the Container Desk background agent. It polls the external
// container-apiserver daemon through the `container` CLI, keeps the latest
// status snapshot and a tail of the daemon logs, and serves both over HTTP on
// a unix socket (or TCP port).
package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/container-desk/cdesk/pkg/agent"
	"github.com/container-desk/cdesk/pkg/config"
	"github.com/container-desk/cdesk/pkg/container"
	"github.com/container-desk/cdesk/pkg/logbuffer"
	"github.com/container-desk/cdesk/pkg/metrics"
	"github.com/container-desk/cdesk/pkg/middleware"
	"github.com/container-desk/cdesk/pkg/monitor"
	"github.com/container-desk/cdesk/pkg/routing"
	"github.com/container-desk/cdesk/pkg/update"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var log = logrus.New()

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	configPath := os.Getenv("CDESK_CONFIG")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cli, err := container.New(cfg, log.WithField("component", "container-cli"))
	if err != nil {
		log.Fatalf("Failed to initialize container CLI client: %v", err)
	}

	mon, err := monitor.New(
		monitor.Config{Interval: cfg.PollInterval},
		cli,
		log.WithField("component", "monitor"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize status monitor: %v", err)
	}

	checker := update.NewChecker(
		http.DefaultClient,
		cfg.ReleasesURL,
		log.WithField("component", "update"),
	)

	logs := logbuffer.New(cfg.LogLines)
	metricsHandler := metrics.NewHandler(log.WithField("component", "metrics"), mon)

	server := agent.NewServer(
		log.WithField("component", "api"),
		mon,
		checker,
		logs,
		metricsHandler,
	)

	router := routing.NewNormalizedServeMux()
	server.Register(router)

	httpServer := &http.Server{Handler: middleware.CORS(cfg.AllowedOrigins, router)}
	serverErrors := make(chan error, 1)

	if cfg.Port != "" {
		addr := ":" + cfg.Port
		log.Infof("Listening on TCP port %s", cfg.Port)
		httpServer.Addr = addr
		go func() {
			serverErrors <- httpServer.ListenAndServe()
		}()
	} else {
		if err := os.Remove(cfg.Socket); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing socket: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Socket), 0o755); err != nil {
			log.Fatalf("Failed to create socket directory: %v", err)
		}
		ln, err := net.ListenUnix("unix", &net.UnixAddr{Name: cfg.Socket, Net: "unix"})
		if err != nil {
			log.Fatalf("Failed to listen on socket: %v", err)
		}
		log.Infof("Listening on %s", cfg.Socket)
		go func() {
			serverErrors <- httpServer.Serve(ln)
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mon.Run(gctx)
	})
	g.Go(func() error {
		captureLogs(gctx, cli, logs, cfg.PollInterval)
		return nil
	})

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Errorf("Server error: %v", err)
		}
		cancel()
	case <-ctx.Done():
		log.Infoln("Shutdown signal received")
		log.Infoln("Shutting down the server")
		if err := httpServer.Close(); err != nil {
			log.Errorf("Server shutdown error: %v", err)
		}
	}

	log.Infoln("Waiting for the monitor to stop")
	if err := g.Wait(); err != nil {
		log.Errorf("Monitor error: %v", err)
	}
	log.Infoln("Container Desk agent stopped")
}

type logStreamer interface {
	StreamLogs(ctx context.Context, out io.Writer, follow bool) error
}

// captureLogs keeps a log stream open against the daemon, reattaching after
// the stream drops (daemon restart, daemon not running yet). Each attempt is
// spaced by the poll interval.
func captureLogs(ctx context.Context, cli logStreamer, logs *logbuffer.Buffer, retryInterval time.Duration) {
	for {
		if err := cli.StreamLogs(ctx, logs, true); err != nil && ctx.Err() == nil {
			log.Debugf("Log stream ended: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryInterval):
		}
	}
}
