package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/gogpu/cubemap"
	"github.com/gogpu/cubemap/internal/logger"
)

func (a *app) cmdToPano(ctx context.Context, args []string, stderr io.Writer) error {
	pc := a.cfg.Panorama

	fs := flag.NewFlagSet("topano", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "Face folder or pattern with % for the face label")
	out := fs.String("out", "", "Output panorama file")
	fs.IntVar(&pc.Width, "width", pc.Width, "Panorama width (0 = 4 × face width)")
	fs.IntVar(&pc.Height, "height", pc.Height, "Panorama height (0 = width / 2)")
	fs.IntVar(&pc.Quality, "quality", pc.Quality, "JPEG quality")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("topano: -in and -out are required")
	}

	sum := summary{command: "topano", start: time.Now()}

	cs, err := loadCube(ctx, *in)
	if err != nil {
		return fmt.Errorf("topano: %w", err)
	}
	sum.faces = len(cs)

	width, height := pc.Width, pc.Height
	if width <= 0 {
		width = 4 * cs[cubemap.FacePX].Width()
	}
	if height <= 0 {
		height = max(width/2, 1)
	}

	start := time.Now()
	pano, err := a.conv.ToPanorama(ctx, cs, width, height)
	if err != nil {
		return err
	}
	defer a.conv.Release(pano)
	a.log.Info("panorama built",
		zap.Int("width", width),
		zap.Int("height", height),
		logger.Elapsed(start))

	if err := pano.EncodeFile(*out, pc.Quality); err != nil {
		return fmt.Errorf("topano: %w", err)
	}
	sum.files = 1
	sum.addPixels(pano)

	sum.print(a.stdout)
	return nil
}
