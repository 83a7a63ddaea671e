// Command riverside runs the Riverside Town autonomous character
// simulation.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"riverside/internal/agent"
	"riverside/internal/api"
	"riverside/internal/config"
	"riverside/internal/convo"
	"riverside/internal/entropy"
	"riverside/internal/persistence"
	"riverside/internal/population"
	"riverside/internal/sim"
	"riverside/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	cfgPath := "riverside.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed()
	}
	rng := rand.New(rand.NewSource(seed))
	slog.Info("Riverside Town: Autonomous Character Simulation", "seed", seed)

	// ── World ─────────────────────────────────────────────────────────
	start := time.Now().Truncate(time.Hour)
	w := world.New("Riverside Town", start, seed, nil)
	w.SetSampleSize(cfg.SampleSize)

	// ── Database ──────────────────────────────────────────────────────
	db, err := persistence.Open(cfg.DBPath, w.RunID)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	w.SetSink(db)
	if err := db.SaveMeta("seed", fmt.Sprintf("%d", seed)); err != nil {
		slog.Warn("could not record run seed", "error", err)
	}
	slog.Info("database opened", "path", cfg.DBPath, "run_id", w.RunID)

	// ── Principals ────────────────────────────────────────────────────
	marina := agent.NewResearcher()
	alex := agent.NewSurgeon()
	w.AddAgent(marina)
	w.AddAgent(alex)

	// ── Background population ─────────────────────────────────────────
	gen := population.NewGenerator(seed + 1)
	gen.SetTarget(cfg.Population)
	townsfolk, err := gen.Create(cfg.Population)
	if err != nil {
		slog.Error("population generation failed", "created", len(townsfolk), "error", err)
		os.Exit(1)
	}
	for _, a := range townsfolk {
		w.AddAgent(a)
	}
	gen.Distribute(w)
	slog.Info("population ready", "principals", 2, "background", len(townsfolk))

	// ── Chat backend ──────────────────────────────────────────────────
	ollama := convo.NewClient(cfg.Ollama.URL, cfg.Ollama.Model)
	if ollama.Enabled() {
		slog.Info("chat backend enabled", "url", cfg.Ollama.URL, "model", cfg.Ollama.Model)
	} else {
		slog.Warn("no Ollama URL configured, character chat disabled")
	}
	var backend convo.Backend
	if ollama != nil {
		backend = ollama
	}
	manager := convo.NewManager(backend)

	// ── Engine ────────────────────────────────────────────────────────
	eng := sim.NewEngine()
	eng.Speed = cfg.Speed
	eng.OnStep = func(step uint64) {
		w.Step(rng)
	}
	eng.OnDay = func(step uint64) {
		all := append(w.Principals(), w.Background()...)
		if err := db.SaveCharacterStates(all, w.Now()); err != nil {
			slog.Error("daily snapshot failed", "error", err)
		}
		s := w.Summary()
		slog.Info("day complete",
			"step", step,
			"time", s.Time,
			"weather", s.Weather.Condition,
			"population", s.TotalPopulation,
			"events", s.Events,
		)
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	apiServer := &api.Server{
		World: w,
		Eng:   eng,
		Pop:   gen,
		Convo: manager,
		Port:  cfg.APIPort,
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\nRiverside Town is alive: %d residents across %d locations.\n",
		w.Summary().TotalPopulation, len(w.LocationKeys()))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	// Final snapshot on shutdown.
	slog.Info("final snapshot...")
	all := append(w.Principals(), w.Background()...)
	if err := db.SaveCharacterStates(all, w.Now()); err != nil {
		slog.Error("final snapshot failed", "error", err)
	}
	db.LogStats()

	fmt.Println("Simulation stopped. Run recorded.")
}
