package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/genomekit/genomekit/internal/api"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the "serve" command exposing the local store over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local genome store over HTTP",
		Long: `Serve the local genome store read-only over HTTP. The sequence endpoint
mirrors the UCSC API response shape, so downstream tools can point at the
local server instead of the public API.

Endpoints:
  GET /api/genomes
  GET /api/genomes/{assembly}
  GET /api/genomes/{assembly}/chromosomes
  GET /api/genomes/{assembly}/sequence?chrom=&start=&end=`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			srv := &http.Server{
				Addr:    addr,
				Handler: api.NewServer(c.store(), logger).Handler(),
			}

			errc := make(chan error, 1)
			go func() {
				logger.Infof("serving on http://%s", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")

	return cmd
}
