// Command server runs the portfolio site and its admin dashboard.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/msantanna/atelier.page/internal/platform/config"
	"github.com/msantanna/atelier.page/internal/platform/otel"
	"github.com/msantanna/atelier.page/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "atelier-web")
	if err != nil {
		config.Exitf("setup tracing: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("main: shutdown tracing: %v", err)
		}
	}()

	cfg, err := web.LoadConfig()
	if err != nil {
		config.Exitf("load config: %v", err)
	}

	server, err := web.NewServer(cfg)
	if err != nil {
		config.Exitf("start server: %v", err)
	}

	if err := server.Run(ctx); err != nil {
		config.Exitf("run server: %v", err)
	}
}
