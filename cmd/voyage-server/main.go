package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natevvv/voyage-planner/graphs"
	"github.com/natevvv/voyage-planner/pkg/config"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/routing"
	server "github.com/natevvv/voyage-planner/pkg/server/openapi_server"
	"github.com/natevvv/voyage-planner/pkg/weather"
)

func main() {
	configFile := flag.String("config", "", "YAML config file (default $VOYAGE_CONFIG or the embedded config)")
	addr := flag.String("addr", "", "Listen address, overrides the config")
	graphFile := flag.String("graph", "", "Graph file (.json, .fmi, .osm, .pbf), overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *graphFile != "" {
		cfg.Graph.File = *graphFile
	}

	start := time.Now()
	g, err := graphs.FromFile(cfg.Graph.File).Freeze()()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Graph.Validate {
		if err := graph.Validate(g); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("[TIME-Import] = %s, %v nodes, %v arcs\n", time.Since(start), g.NodeCount(), g.ArcCount())

	ports, err := cfg.PortRegistry()
	if err != nil {
		log.Fatal(err)
	}
	ships, err := cfg.ShipCatalog()
	if err != nil {
		log.Fatal(err)
	}
	router, err := routing.NewRouter(g, ports, cfg.Routing.Navigator)
	if err != nil {
		log.Fatal(err)
	}
	router.SetDebugLevel(cfg.Routing.DebugLevel)

	source := weather.NewOpenMeteo(cfg.Weather.BaseURL, cfg.Weather.ForecastDays, cfg.Weather.Timeout)
	service := server.NewDefaultApiService(router, ships, source, server.ServiceSettings{
		MaxSegmentKm: cfg.Routing.MaxSegmentKm,
		MaxStops:     cfg.Weather.MaxStops,
		Economics:    cfg.Economics,
	})
	controller := server.NewDefaultApiController(service)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.NewRouter(controller),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %v with %v ports and %v ships\n", cfg.Server.Addr, ports.Len(), ships.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down\n")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
