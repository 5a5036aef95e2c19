package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/go-sod/sax/internal/buildinfo"
	"github.com/go-sod/sax/internal/config"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/server"
	"github.com/go-sod/sax/internal/setup"
	"github.com/go-sod/sax/internal/shutdown"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintln(os.Stdout, buildinfo.Info.String())

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		done()
		logger.Fatal(err)
	}

	defer done()
}

func run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	cfg := config.Config{}
	env, err := setup.Setup(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if err := env.Close(context.Background()); err != nil {
			logger.Errorf("env.Close: %v", err)
		}
	}()

	mux, err := server.Routes(ctx, &cfg, env)
	if err != nil {
		return fmt.Errorf("server.Routes: %w", err)
	}

	srv, err := server.New(cfg.SrvAddr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	grpcSrv, err := server.New(cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	grpcServer, checker := server.NewGRPCServer()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("HTTP listening on %s", srv.Addr())
		return srv.ServeHTTPHandler(ctx, mux)
	})
	g.Go(func() error {
		logger.Infof("gRPC health listening on %s", grpcSrv.Addr())
		return grpcSrv.ServeGRPC(ctx, grpcServer)
	})
	g.Go(func() error {
		<-ctx.Done()
		checker.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
