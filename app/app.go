// Package app wires the stores, handlers and discovery into a running
// service instance.
package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Wagner-UFRRJ/agrimensura/consts"
	"github.com/Wagner-UFRRJ/agrimensura/discovery"
	"github.com/Wagner-UFRRJ/agrimensura/export"
	"github.com/Wagner-UFRRJ/agrimensura/logging"
	"github.com/Wagner-UFRRJ/agrimensura/rest"
	"github.com/Wagner-UFRRJ/agrimensura/survey"
	"github.com/Wagner-UFRRJ/agrimensura/survey/boltstore"
	"github.com/gorilla/mux"
	"github.com/kleinnic74/fflags"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const dbName = "survey.db"

type Options struct {
	DataDir string `json:"datadir"`
	Port    uint   `json:"port"`
}

type App struct {
	store  survey.ClosableStore
	peers  *discovery.Controller
	router *mux.Router

	addr string

	shutdownHandlers shutdownHandlers
}

type shutdownHandler func(context.Context, *App)

type shutdownHandlers struct {
	h []shutdownHandler
}

func (hdls *shutdownHandlers) Add(h shutdownHandler) {
	hdls.h = append(hdls.h, h)
}

func (hdls shutdownHandlers) Execute(ctx context.Context, a *App) {
	for i := len(hdls.h) - 1; i >= 0; i-- {
		hdls.h[i](ctx, a)
	}
}

func NewApp(ctx context.Context, o Options) (a *App, err error) {
	logger, ctx := logging.SubFrom(ctx, "app")

	logger.Info("Data directory", zap.String("dir", o.DataDir))
	if err = os.MkdirAll(o.DataDir, os.ModePerm); err != nil {
		return nil, err
	}

	a = &App{
		addr:   fmt.Sprintf(":%d", o.Port),
		router: mux.NewRouter(),
	}
	defer func() {
		if err != nil {
			a.shutdownHandlers.Execute(ctx, a)
		}
	}()

	var db *bolt.DB
	db, err = bolt.Open(filepath.Join(o.DataDir, dbName), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to initialize data store: %w", err)
	}
	if a.store, err = boltstore.NewBoltStore(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize project store: %w", err)
	}
	a.shutdownHandlers.Add(func(ctx context.Context, a *App) {
		a.store.Close()
		logging.From(ctx).Info("Closed data store")
	})

	formats := map[string]export.Exporter{
		"csv":     export.CSV{},
		"json":    export.JSON{},
		"geojson": export.GeoJSON{},
	}
	if err = fflags.IfEnabled(fflags.Define("export.svg"), func() error {
		formats["svg"] = export.SVG{}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("Failed to initialize export formats: %w", err)
	}

	meta := survey.DefaultMetadata()

	a.peers, err = discovery.NewController(fmt.Sprintf("agrimensura-%d", os.Getpid()), o.Port,
		map[string]string{"version": meta.Version})
	if err != nil {
		return nil, fmt.Errorf("Failed to initialize discovery: %w", err)
	}

	// REST Handlers

	projects := rest.NewProjectHandler(a.store, formats)
	projects.InitRoutes(a.router)

	info := rest.NewInfoHandler(meta)
	info.InitRoutes(a.router)

	metrics := rest.NewMetricsHandler()
	metrics.InitRoutes(a.router)

	peersRest := rest.NewPeersAPI(a.peers)
	peersRest.InitRoutes(a.router)

	if consts.IsDevMode() {
		logs := rest.NewLogsHandler()
		logs.InitRoutes(a.router)
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	logger, ctx := logging.SubFrom(ctx, "app")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		logger, ctx := logging.SubFrom(ctx, "discovery")
		a.peers.ListenAndServe(ctx)
		logger.Info("DONE")
		wg.Done()
	}()

	server := http.Server{
		Addr:        a.addr,
		Handler:     rest.WithMiddleWares(a.router, "rest"),
		BaseContext: func(l net.Listener) context.Context { return ctx },
	}
	wg.Add(1)
	go func() {
		logger, _ := logging.SubFrom(ctx, "http")
		logger.Info("Starting HTTP server...", zap.String("bindAddr", a.addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
		logger.Info("DONE")
		wg.Done()
	}()

	<-ctx.Done()

	logger.Info("Stopping...")

	ctxShutdown, cancelServerShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelServerShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	wg.Wait()

	a.shutdownHandlers.Execute(ctx, a)

	logger.Info("Terminated gracefully")
}
