package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/cubemap"
	"github.com/gogpu/cubemap/internal/logger"
)

func (a *app) cmdPatch(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("patch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	panoPath := fs.String("pano", "", "Panorama to patch")
	faceName := fs.String("face", "", "Face label: px, nx, py, ny, pz or nz")
	in := fs.String("in", "", "Edited face image")
	out := fs.String("out", "", "Output panorama file")
	quality := fs.Int("quality", a.cfg.Panorama.Quality, "JPEG quality")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *panoPath == "" || *faceName == "" || *in == "" || *out == "" {
		return fmt.Errorf("patch: -pano, -face, -in and -out are required")
	}

	face, err := cubemap.ParseFace(*faceName)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	sum := summary{command: "patch", start: time.Now()}

	var pano, src *cubemap.Raster
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pano, err = cubemap.DecodeFile(*panoPath)
		return err
	})
	g.Go(func() (err error) {
		src, err = cubemap.DecodeFile(*in)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	start := time.Now()
	patched, err := a.conv.PatchFace(ctx, pano, face, src)
	if err != nil {
		return err
	}
	defer a.conv.Release(patched)
	a.log.Info("face patched", zap.Stringer("face", face), logger.Elapsed(start))

	if err := patched.EncodeFile(*out, *quality); err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	sum.files = 1
	sum.faces = 1
	sum.addPixels(patched)

	sum.print(a.stdout)
	return nil
}
