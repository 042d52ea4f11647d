// Command server runs the chat gRPC API and its health endpoints.
//
// Usage:
//
//	server [--env]
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; DATABASE_DSN and CACHE_URL are required. --env lists every
// supported variable and exits.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/tcpchat/internal/app"
	"github.com/heartmarshall/tcpchat/internal/config"
)

func main() {
	listEnv := flag.Bool("env", false, "print supported environment variables and exit")
	flag.Parse()

	if *listEnv {
		config.WriteUsage(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
