// Command equi2cube converts an equirectangular panorama into cubemap faces.
//
// Usage:
//
//	equi2cube -in pano.jpg -out output -sizes 1024,2048,4096 -quality 95
//
// Faces are written to <out>/cubemap_<size>/<face>.<ext>. With -cross N a
// horizontal-cross preview with N-pixel cells is also written to
// <out>/cubemap_<size>/cross.png.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/cubemap"
)

func main() {
	var (
		input   = flag.String("in", "", "input equirectangular image")
		output  = flag.String("out", "output", "output directory")
		sizes   = flag.String("sizes", "1024,2048,4096", "comma-separated face sizes")
		quality = flag.Int("quality", 95, "JPEG quality (1-100)")
		format  = flag.String("format", "jpg", "face format: jpg or png")
		workers = flag.Int("workers", 0, "render workers (0 = GOMAXPROCS)")
		chunk   = flag.Int("chunk", 0, "pixels per render chunk (0 = 16 rows)")
		cross   = flag.Int("cross", 0, "cross preview cell size (0 = off)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, config{
		input:   *input,
		output:  *output,
		sizes:   *sizes,
		quality: *quality,
		format:  *format,
		workers: *workers,
		chunk:   *chunk,
		cross:   *cross,
	}); err != nil {
		logger.Error("equi2cube failed", slog.Any("error", err))
		os.Exit(1)
	}
}

type config struct {
	input   string
	output  string
	sizes   string
	quality int
	format  string
	workers int
	chunk   int
	cross   int
}

func run(logger *slog.Logger, cfg config) error {
	if cfg.input == "" {
		return errors.New("missing -in")
	}
	sizes, err := parseSizes(cfg.sizes)
	if err != nil {
		return err
	}
	format, err := cubemap.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	start := time.Now()
	src, err := cubemap.LoadImage(cfg.input)
	if err != nil {
		return err
	}
	logger.Info("loaded source",
		slog.String("path", cfg.input),
		slog.Int("width", src.Width()),
		slog.Int("height", src.Height()),
		slog.Duration("elapsed", time.Since(start)))

	e := cubemap.NewExecutor(
		cubemap.WithWorkers(cfg.workers),
		cubemap.WithChunkSize(cfg.chunk),
		cubemap.WithLogger(logger),
	)
	defer e.Close()

	var sink cubemap.Sink = cubemap.DirSink{Root: cfg.output, Format: format}
	var preview *cubemap.CrossSink
	if cfg.cross > 0 {
		if preview, err = cubemap.NewCrossSink(cfg.cross); err != nil {
			return err
		}
		sink = cubemap.MultiSink(sink, preview)
	}

	if err := e.Batch(src, sizes, cfg.quality, sink); err != nil {
		return err
	}

	if preview != nil {
		for _, s := range sizes {
			path := filepath.Join(cfg.output, "cubemap_"+strconv.Itoa(s), "cross.png")
			if err := writeCross(preview, s, path); err != nil {
				return err
			}
		}
	}

	logger.Info("done", slog.Duration("total", time.Since(start)))
	return nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return sizes, nil
}

func writeCross(c *cubemap.CrossSink, size int, path string) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	w := bufio.NewWriter(f)
	if err := c.WritePNG(size, w); err != nil {
		return err
	}
	return w.Flush()
}
