package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-ledring/internal/config"
	"github.com/coreman2200/funtimes-ledring/internal/led"
	"github.com/coreman2200/funtimes-ledring/internal/probe"
	"github.com/coreman2200/funtimes-ledring/internal/segment"
	"github.com/coreman2200/funtimes-ledring/internal/server"
)

func main() {
	// ---- Flags (config.yaml fills whatever is left unset) ----
	var (
		mode       = flag.String("mode", "dump", "dump | validate | serve | probe")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		addr       = flag.String("addr", "", "HTTP listen address (serve)")
		driver     = flag.String("driver", "", "driver: spi | sim (probe)")
		set        = flag.String("set", "", "segment set to dump or probe; empty for all")
		kind       = flag.String("kind", "", "probe kind: segment_sweep | order_walk")
		star       = flag.Bool("star", false, "expose the disabled star set")
		step       = flag.Duration("step", 0, "probe step interval")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// ---- Config ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
		}
		cfg = config.Default()
	}
	applyFlags(cfg, *addr, *driver, *set, *kind, *star, *step)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var opts []segment.Option
	if cfg.Segments.EnableStar {
		opts = append(opts, segment.WithStar())
	}
	top := segment.New(opts...)
	if err := segment.Validate(top, segment.StripLen); err != nil {
		log.Fatal().Err(err).Msg("segment table invalid")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "dump":
		err = dump(top, *set)
	case "validate":
		log.Info().Strs("sets", top.Names()).Int("pixels", segment.StripLen).Msg("segment table ok")
	case "serve":
		err = serve(ctx, top, cfg.Addr)
	case "probe":
		err = runProbe(ctx, top, cfg)
	default:
		err = fmt.Errorf("unknown mode: %s", *mode)
	}
	if err != nil {
		log.Error().Err(err).Str("mode", *mode).Msg("failed")
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, addr, driver, set, kind string, star bool, step time.Duration) {
	if addr != "" {
		cfg.Addr = addr
	}
	if driver != "" {
		cfg.Driver = driver
	}
	if set != "" {
		cfg.Probe.Set = set
	}
	if kind != "" {
		cfg.Probe.Kind = kind
	}
	if star {
		cfg.Segments.EnableStar = true
	}
	if step > 0 {
		cfg.Probe.StepMs = int(step / time.Millisecond)
	}
}

func dump(top *segment.Topology, name string) error {
	views := top.View(false)
	if name != "" {
		ss, err := top.Set(name)
		if err != nil {
			return err
		}
		views = []segment.SetView{ss.View(false)}
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(map[string]any{
		"pixels": segment.StripLen,
		"sets":   views,
	})
}

func serve(ctx context.Context, top *segment.Topology, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(top).Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Strs("sets", top.Names()).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}

func openDriver(cfg *config.Config) led.Driver {
	switch cfg.Driver {
	case "sim":
		return led.NewSim(segment.StripLen)
	case "spi":
		freq := physic.Frequency(cfg.SPI.FreqKHz) * physic.KiloHertz
		drv, err := led.NewNRZ(cfg.SPI.Port, segment.StripLen, freq, cfg.ColorOrder)
		if err != nil {
			log.Warn().Err(err).
				Str("driver", "spi").
				Str("port", cfg.SPI.Port).
				Msg("SPI init failed; falling back to SIM")
			return led.NewSim(segment.StripLen)
		}
		return drv
	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using SIM")
		return led.NewSim(segment.StripLen)
	}
}

func runProbe(ctx context.Context, top *segment.Topology, cfg *config.Config) error {
	k, err := probe.ParseKind(cfg.Probe.Kind)
	if err != nil {
		return err
	}
	ss, err := top.Set(cfg.Probe.Set)
	if err != nil {
		return err
	}
	drv := openDriver(cfg)
	defer drv.Close()

	frame := led.NewFrame(segment.StripLen)
	r := probe.NewRunner(k, ss)
	interval := time.Duration(max(1, cfg.Probe.StepMs)) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Str("set", ss.Name()).Str("kind", string(k)).Int("steps", r.Steps()).Msg("probe starting")
	for {
		pos, ok := r.Step(frame)
		if err := drv.Write(frame.Bytes(cfg.Brightness)); err != nil {
			return err
		}
		if !ok {
			log.Info().Str("set", ss.Name()).Msg("probe done")
			return nil
		}
		log.Info().Str("segment", pos.Segment).Int("logical", pos.Logical).Int("pixel", pos.Pixel).Msg("probe step")

		select {
		case <-ctx.Done():
			frame.Clear()
			return drv.Write(frame.Bytes(0))
		case <-ticker.C:
		}
	}
}
