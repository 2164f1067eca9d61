// Demo site replica.
//
// Serves the pages the UI scenarios visit so they can run without network
// access to the public site:
//
//	go run ./cmd/demo-site --addr :8080
//	UITEST_ENV=local go test -tags=e2e ./e2e/... -args -D baseUrl=http://localhost:8080/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/thesyncim/webtests/cmd/demo-site/server"
)

func main() {
	cfg := server.DefaultConfig()
	cfg.Addr = ":8080"

	cmd := &cobra.Command{
		Use:   "demo-site",
		Short: "Serve a local replica of the demo site",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.Username, "username", cfg.Username, "accepted login")
	cmd.Flags().StringVar(&cfg.Password, "password", cfg.Password, "accepted password")

	fs := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, cfg server.Config) error {
	srv, err := server.NewServer(cfg)
	if err != nil {
		return err
	}

	addr, err := srv.Start()
	if err != nil {
		return err
	}
	klog.InfoS("Demo site listening", "addr", addr, "baseUrl", srv.BaseURL())

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
