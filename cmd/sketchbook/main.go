// Command sketchbook runs generative sketches and exports them for pen
// plotters.
//
// Usage:
//
//	sketchbook [flags] list
//	sketchbook [flags] export [-format svg|png|dxf|pdf|all] [-svg doc.svg] sketch...
//	sketchbook [flags] gallery [-o gallery.svg]
//	sketchbook [flags] serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/export"
	"github.com/penplot/sketchbook/internal/config"
	"github.com/penplot/sketchbook/internal/gallery"
	"github.com/penplot/sketchbook/internal/server"
	"github.com/penplot/sketchbook/sketches"
	"github.com/penplot/sketchbook/svgdoc"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("sketchbook: %v", err)
	}
}

var errUsage = errors.New("usage: sketchbook [flags] list|export|gallery|serve")

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketchbook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  = fs.String("config", "", "TOML or YAML config file")
		outDir   = fs.String("out", "", "output directory")
		frames   = fs.Int("frames", 0, "frames to run before exporting")
		density  = fs.Float64("density", 0, "canvas pixel density")
		logLevel = fs.String("log-level", "", "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}
	if *density > 0 {
		cfg.Density = *density
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	sketchbook.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	switch cmd, sub := rest[0], rest[1:]; cmd {
	case "list":
		return listSketches(stdout)
	case "export":
		return exportSketches(cfg, sub, stderr)
	case "gallery":
		return writeGallery(cfg, sub, stderr)
	case "serve":
		return serve(cfg)
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

func listSketches(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range sketches.Names() {
		s := sketches.Must(name)
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\n", name, s.DisplayTitle(), s.Width, s.Height)
	}
	return tw.Flush()
}

func exportSketches(cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format  = fs.String("format", cfg.Format, `export format, or "all"`)
		svgPath = fs.String("svg", "", "author SVG document exported in place of a replay")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("export: no sketch named")
	}

	formats := []string{*format}
	if *format == "all" {
		formats = export.Formats()
	}

	var doc *svgdoc.Document
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return err
		}
		doc, err = svgdoc.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *svgPath, err)
		}
	}

	var errs []error
	for _, name := range fs.Args() {
		for _, f := range formats {
			if err := exportOne(cfg, name, f, doc); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", name, f, err))
			}
		}
	}
	return errors.Join(errs...)
}

// exportOne runs a fresh instance of the sketch for every format, since an
// SVG export replaces the page canvas.
func exportOne(cfg config.Config, name, format string, doc *svgdoc.Document) error {
	s, err := sketches.New(name)
	if err != nil {
		return err
	}
	canvas, err := sketchbook.Run(s, cfg.Frames, sketchbook.WithPixelDensity(cfg.Density))
	if err != nil {
		return err
	}

	page := export.NewPage(s, canvas)
	if doc != nil {
		page.Document = doc.Clone()
	}
	page.SaveFallback = func(file string) error {
		return canvas.Pixmap().SavePNG(filepath.Join(cfg.OutDir, filepath.Base(file)))
	}

	opts := []export.Option{
		export.WithFileName(format, name+"."+format),
		export.WithPDFCompression(cfg.CompressPDF),
	}
	for f, n := range cfg.Names {
		opts = append(opts, export.WithFileName(f, n))
	}
	return export.New(page, export.DirDeliverer{Dir: cfg.OutDir}, opts...).Save(format, "")
}

func writeGallery(cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		out     = fs.String("o", "gallery.svg", "output file, relative to -out")
		columns = fs.Int("columns", 3, "thumbnails per row")
		thumb   = fs.Int("thumb", 240, "thumbnail width")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	names := fs.Args()
	if len(names) == 0 {
		names = sketches.Names()
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.OutDir, *out)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = gallery.Render(f, names,
		gallery.WithColumns(*columns),
		gallery.WithThumbSize(*thumb),
		gallery.WithFrames(cfg.Frames))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		sketchbook.Logger().Info("gallery written", "path", path, "sketches", len(names))
	}
	return err
}

func serve(cfg config.Config) error {
	opts := []export.Option{export.WithPDFCompression(cfg.CompressPDF)}
	for f, n := range cfg.Names {
		opts = append(opts, export.WithFileName(f, n))
	}
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.New(server.WithFrames(cfg.Frames), server.WithExportOptions(opts...)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		sketchbook.Logger().Info("serving", "addr", cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
