package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/config"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/mcp"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional, built-in defaults used when empty)")
	serveMode := flag.Bool("serve", false, "serve the HTTP API instead of printing a report")
	mcpMode := flag.Bool("mcp", false, "serve MCP tools on stdio instead of printing a report")

	students := flag.Int("students", 0, "number of students per week")
	weeks := flag.Int("weeks", 0, "number of weeks in the program")
	session := flag.Float64("session", 0, "session duration in minutes")
	recovery := flag.Float64("recovery", 0, "recovery duration in minutes")
	altitude := flag.Float64("altitude", 0, "simulated altitude in meters")
	atAltitude := flag.Float64("at-altitude", 0, "time at altitude per session in minutes")
	priceAir := flag.Float64("price-air", 0, "price of compressed air per m3")
	priceNitrogen := flag.Float64("price-nitrogen", 0, "price of nitrogen per m3")
	priceOxygen := flag.Float64("price-oxygen", 0, "price of oxygen per m3")
	contingency := flag.Float64("contingency", 0, "contingency percentage, e.g. 10 for 10%")
	flag.Parse()

	// In MCP mode stdout carries the protocol, so logs go to stderr.
	logOut := os.Stdout
	if *mcpMode {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	// Explicit flags win over config and built-in defaults.
	params := cfg.Params()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "students":
			params.StudentsPerWeek = *students
		case "weeks":
			params.Weeks = *weeks
		case "session":
			params.SessionDurationMin = *session
		case "recovery":
			params.RecoveryDurationMin = *recovery
		case "altitude":
			params.AltitudeMeters = *altitude
		case "at-altitude":
			params.DurationAtAltitudeMin = *atAltitude
		case "price-air":
			params.Prices.Air = *priceAir
		case "price-nitrogen":
			params.Prices.Nitrogen = *priceNitrogen
		case "price-oxygen":
			params.Prices.Oxygen = *priceOxygen
		case "contingency":
			params.ContingencyPercent = *contingency
		}
	})

	switch {
	case *mcpMode:
		log.Info("HypoxBudget MCP server starting", "version", Version)
		if err := mcpserver.ServeStdio(mcp.New(params, cfg.Mixing, Version, log)); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
	case *serveMode:
		runServer(cfg, params, log)
	default:
		report, err := budget.Estimate(params, cfg.Mixing)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		renderReport(os.Stdout, report)
	}
}

func runServer(cfg *config.Config, defaults budget.TrainingParameters, log *slog.Logger) {
	log.Info("HypoxBudget starting", "version", Version)

	srv := server.New(defaults, cfg.Mixing, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", "addr", addr, "error", err)
		os.Exit(1)
	}
	log.Info("server starting", "addr", addr)

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
