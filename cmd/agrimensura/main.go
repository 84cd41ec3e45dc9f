package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Wagner-UFRRJ/agrimensura/app"
	"github.com/Wagner-UFRRJ/agrimensura/logging"
	"go.uber.org/zap"
)

var (
	dataDir string
	port    uint
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&dataDir, "d", "agrimensura", "Path to the survey data directory")
	flag.UintVar(&port, "p", 8080, "HTTP port to listen on")
	flag.Parse()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		interrupted := make(chan os.Signal, 1)
		signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
		<-interrupted
		cancel()
	}()

	logger := logging.From(ctx)

	a, err := app.NewApp(ctx, app.Options{DataDir: dataDir, Port: port})
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	a.Run(ctx)
}
