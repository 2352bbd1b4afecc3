package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/spectate"
)

const shutdownTimeout = 10 * time.Second

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host games over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the main menu and its own
game. Scores are stored per-server in the scores database, keyed by the
SSH user name.

With --http, the server also streams every running game to spectators at
/watch (websocket). Watch with 'tetra watch ws://host:port/watch'.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetra/host_key

Examples:
  tetra serve                           # Listen on :23234 with auto-generated key
  tetra serve --ssh :2222               # Listen on port 2222
  tetra serve --http :8080              # Also stream games to spectators
  tetra serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Spectator HTTP address (host:port); empty disables spectating")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var (
		hub       *spectate.Hub
		publisher tui.Publisher
	)
	if flagHTTPAddr != "" {
		hub = spectate.NewHub(logger, spectate.DefaultInterval)
		publisher = hub
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Rules = rules

	server, err := tui.NewSSHServer(cfg, store, publisher, logger)
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting tetra SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	if hub != nil {
		fmt.Printf("Spectators: tetra watch ws://localhost:%s/watch\n", port(flagHTTPAddr))
	}
	fmt.Println("Press Ctrl+C to stop")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.ListenAndServe)

	var httpSrv *http.Server
	if hub != nil {
		mux := http.NewServeMux()
		mux.Handle("/watch", hub)
		httpSrv = &http.Server{
			Addr:              flagHTTPAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			logger.Info("starting spectator server", "address", flagHTTPAddr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("spectator server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if hub != nil {
			hub.Close()
			errs = append(errs, httpSrv.Shutdown(shutdownCtx))
		}
		errs = append(errs, server.Shutdown(shutdownCtx))
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		exitf("server: %v", err)
	}
}

// port extracts the port from a host:port address for the hints above.
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
