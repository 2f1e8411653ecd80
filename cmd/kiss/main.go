// kiss serves mounted directories over HTTP with conditional-request
// and cache-control semantics.
//
//	kiss --mount /=./public --mount /assets/=./build --cache-control 1d
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/heavyk/kiss/core/config"
	"github.com/heavyk/kiss/core/handler"
	"github.com/heavyk/kiss/core/server"
	"github.com/heavyk/kiss/core/static"
	"github.com/heavyk/kiss/middleware"
	"github.com/heavyk/kiss/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "kiss:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	flags := pflag.NewFlagSet("kiss", pflag.ContinueOnError)
	addr := flags.String("addr", cfg.Addr, "listen address")
	cacheControl := flags.String("cache-control", cfg.CacheControl, `cache lifetime: "1d", "1y" or milliseconds`)
	hidden := flags.Bool("hidden", cfg.Hidden, "allow dotfile path segments")
	mounts := flags.StringArray("mount", cfg.Mounts, "mount spec prefix=dir (repeatable)")
	strongETags := flags.Bool("strong-etags", false, "content-hash ETags instead of size/mtime")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logOpts := []logger.Option{logger.WithLevelString(cfg.LogLevel)}
	if cfg.LogJSON {
		logOpts = append(logOpts, logger.WithJSON())
	}
	log := logger.New(logOpts...)

	opts := []static.Option{
		static.WithCacheControl(*cacheControl),
		static.WithLogger(log),
	}
	if *hidden {
		opts = append(opts, static.WithHidden())
	}
	if *strongETags {
		opts = append(opts, static.WithETagFunc(static.StrongETag))
	}

	srv := static.New(opts...)
	specs := *mounts
	if len(specs) == 0 {
		specs = []string{"/=./public"}
	}
	for _, spec := range specs {
		prefix, dir := parseMountSpec(spec)
		if err := srv.Mount(prefix, dir); err != nil {
			return err
		}
		log.Info("mounted", "prefix", prefix, "dir", dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := server.New(*addr, server.WithLogger(log))
	err := httpSrv.Start(ctx, buildHandler(srv, log))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildHandler wires the engine behind request-id and logging
// middleware and adapts the chain onto net/http.
func buildHandler(srv *static.Server, log *slog.Logger) http.Handler {
	chain := handler.Chain(
		middleware.RequestID[*handler.BaseContext](),
		middleware.LoggingWithConfig[*handler.BaseContext](middleware.LoggingConfig{Logger: log}),
	)

	errorHandler := func(ctx *handler.BaseContext, err error) {
		if errors.Is(err, static.ErrStream) {
			// Headers are committed; abort the connection.
			log.Error("response stream aborted", logger.Error(err))
			panic(http.ErrAbortHandler)
		}
		log.Error("request failed", logger.Error(err))
		http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}

	return handler.Adapt(handler.NewContext, chain(static.HandlerFunc[*handler.BaseContext](srv)), errorHandler)
}
