package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"boltgen/internal/config"
	"boltgen/internal/export"
	"boltgen/internal/lightning"
	"boltgen/internal/tui"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "JSON config file")
		mode    = flag.String("mode", "", "generator: midpoint or dualfront")
		seed    = flag.Uint64("seed", 0, "random seed (0 keeps the config seed)")
		set     = flag.String("set", "", "key=value overrides, comma separated")
		svgOut  = flag.String("svg", "", "write the bolt as SVG and exit")
		pngOut  = flag.String("png", "", "write the bolt as PNG and exit")
		geoOut  = flag.String("geojson", "", "write the bolt as GeoJSON and exit")
		verbose = flag.Bool("v", false, "debug logging; goes to stderr only when exporting, use -log with the viewer")
		logPath = flag.String("log", "", "append logs to this file")
	)
	flag.Parse()

	headless := *svgOut != "" || *pngOut != "" || *geoOut != ""
	if err := setupLogging(*verbose, *logPath, headless); err != nil {
		log.Fatal(err)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if *mode != "" {
		m, err := lightning.ParseMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Mode = m
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *set != "" {
		var err error
		if cfg, err = cfg.ApplyOverrides(*set); err != nil {
			log.Fatal(err)
		}
	}

	if headless {
		bolt, err := cfg.Generate(cfg.Seed)
		if err != nil {
			log.Fatal(err)
		}
		outputs := []struct {
			path  string
			write func(io.Writer) error
		}{
			{*svgOut, func(w io.Writer) error { return export.WriteSVG(w, bolt, export.DefaultSVGOptions()) }},
			{*pngOut, func(w io.Writer) error { return export.WritePNG(w, bolt, export.DefaultPNGOptions()) }},
			{*geoOut, func(w io.Writer) error { return export.WriteGeoJSON(w, bolt) }},
		}
		for _, o := range outputs {
			if o.path == "" {
				continue
			}
			if err := writeFile(o.path, o.write); err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", o.path)
		}
		return
	}

	if _, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// setupLogging routes generator logs. The viewer owns the terminal, so
// stderr is only used for headless runs; with the viewer, logs need -log.
func setupLogging(verbose bool, path string, headless bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var w io.Writer
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w = f
	case verbose && headless:
		w = os.Stderr
	default:
		return nil
	}
	lightning.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
