package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecloudclub/zheap/heap"
	"github.com/ecloudclub/zheap/heapapi"
	"github.com/ecloudclub/zheap/zapx"
)

const shutdownTimeout = 5 * time.Second

func newCommand() *cobra.Command {
	var (
		addr     string
		capacity int
		strategy string
		debug    bool
	)
	cmd := &cobra.Command{
		Use:          "heapd",
		Short:        "Serve a fixed-capacity min-heap over HTTP.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := heap.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			logger, err := zapx.NewLogger(debug)
			if err != nil {
				return err
			}
			defer logger.Sync()
			if !debug {
				gin.SetMode(gin.ReleaseMode)
			}

			srv, err := heapapi.NewServer(
				heapapi.WithCapacity(capacity),
				heapapi.WithStrategy(s),
				heapapi.WithLogger(logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, logger, &http.Server{Addr: addr, Handler: srv.Handler()})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8082", "listen address")
	cmd.Flags().IntVar(&capacity, "capacity", heap.DefaultCapacity, "heap capacity")
	cmd.Flags().StringVar(&strategy, "strategy", heap.SiftUp.String(), `push strategy, "siftup" or "rebuild"`)
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging and gin debug mode")
	return cmd
}

// serve runs hs until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, logger *zap.Logger, hs *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", hs.Addr))
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("stopped")
	return nil
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
