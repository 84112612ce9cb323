package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/router"
)

const (
	defaultTimeout  = 3
	shutdownTimeout = 10 * time.Second
)

type webCommand struct {
	addr    string
	timeout int
	origins string
}

func NewCommand() cli.Command {
	return &webCommand{}
}

func (c *webCommand) Description() string {
	return "JSON API server"
}

func (c *webCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "address to listen on (defaults to the configured addr)")
	fs.IntVar(&c.timeout, "timeout", defaultTimeout, "read header timeout in seconds")
	fs.StringVar(&c.origins, "origins", "", "comma separated list of allowed CORS origins")
}

func (c *webCommand) Run(ctx context.Context, env cli.Env) error {
	addr := c.addr
	if addr == "" {
		addr = env.Config.Addr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return c.serve(ctx, env, listener)
}

// serve runs the API on listener until ctx is done, then shuts it down.
func (c *webCommand) serve(ctx context.Context, env cli.Env, listener net.Listener) error {
	handler := router.New(env.Ledger, env.Logger, router.Options{
		Currency:       env.Config.Currency,
		AllowedOrigins: splitOrigins(c.origins),
	})

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(c.timeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		env.Logger.Info("Starting web server", "addr", listener.Addr().String())
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		env.Logger.Info("Shutting down web server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("web server: %w", err)
	}

	env.Logger.Info("Web server stopped")
	return nil
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
