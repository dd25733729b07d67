package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/container"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (or the Lambda handler inside AWS Lambda)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				if addr != "" {
					c.Config.HTTP.Addr = addr
				}
				if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
					return serveLambda(c)
				}
				return serveHTTP(ctx, c)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides http.addr)")
	return cmd
}

func serveLambda(c *container.Container) error {
	adapter := chiadapter.New(c.Router())
	config.Log.Info("Starting Lambda handler")

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
	return nil
}

func serveHTTP(ctx context.Context, c *container.Container) error {
	srv := &http.Server{
		Addr:              c.Config.HTTP.Addr,
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		config.Log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		config.Log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
