package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gogpu/cubemap"
	"github.com/gogpu/cubemap/internal/config"
	"github.com/gogpu/cubemap/internal/logger"
)

// Preview bounds for the resized panorama copy.
const (
	previewWidth   = 2048
	previewHeight  = 1024
	previewQuality = 90
	previewName    = "preview.jpg"
)

func (a *app) cmdToCube(ctx context.Context, args []string, stderr io.Writer) error {
	cube := a.cfg.Cube

	fs := flag.NewFlagSet("tocube", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "Panorama image or directory of panoramas")
	out := fs.String("out", "", "Output directory")
	fs.StringVar(&cube.Filter, "filter", cube.Filter, "Panorama sampling filter")
	fs.IntVar(&cube.Size, "size", cube.Size, "Face size in pixels (0 = panorama width / 4)")
	fs.IntVar(&cube.MaxWidth, "max-width", cube.MaxWidth, "Maximum face size (0 = no cap)")
	fs.Float64Var(&cube.Rotation, "rotation", cube.Rotation, "Rotation about the vertical axis in radians")
	fs.StringVar(&cube.Format, "format", cube.Format, "Face file format")
	fs.IntVar(&cube.Quality, "quality", cube.Quality, "JPEG quality")
	sizes := fs.String("sizes", strings.Join(cube.Sizes, ","), "Comma-separated size presets (e.g. 1024,2048_90)")
	fs.BoolVar(&cube.Preview, "preview", cube.Preview, "Also write a resized panorama preview")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("tocube: -in and -out are required")
	}

	cube.Sizes = nil
	if *sizes != "" {
		cube.Sizes = strings.Split(*sizes, ",")
	}
	presets, err := cube.OutputPresets()
	if err != nil {
		return err
	}

	filter, err := cubemap.ParseFilter(cube.Filter)
	if err != nil {
		return fmt.Errorf("cube.filter: %w", err)
	}
	format, err := cubemap.ParseFormat(cube.Format)
	if err != nil {
		return fmt.Errorf("cube.format: %w", err)
	}
	if !format.CanEncode() {
		return fmt.Errorf("cube.format: %w: cannot encode %s", cubemap.ErrUnsupportedFormat, format)
	}

	inputs, err := listPanoramas(*in)
	if err != nil {
		return fmt.Errorf("tocube: %w", err)
	}
	batch := len(inputs) > 1 || *in != inputs[0]

	sum := summary{command: "tocube", start: time.Now()}
	for _, path := range inputs {
		dir := *out
		if batch {
			dir = filepath.Join(*out, stem(path))
		}

		job := cubeJob{
			cube:    cube,
			presets: presets,
			filter:  filter,
			ext:     format.Extension(),
		}
		if err := a.toCube(ctx, path, dir, job, &sum); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	sum.print(a.stdout)
	return nil
}

// cubeJob is the resolved per-run extraction setup.
type cubeJob struct {
	cube    config.CubeConfig
	presets []config.Preset
	filter  cubemap.Filter
	ext     string
}

// toCube extracts every preset of one panorama into dir.
func (a *app) toCube(ctx context.Context, path, dir string, job cubeJob, sum *summary) error {
	start := time.Now()

	pano, err := cubemap.DecodeFile(path)
	if err != nil {
		return err
	}
	a.log.Info("panorama loaded",
		zap.String("path", path),
		zap.Int("width", pano.Width()),
		zap.Int("height", pano.Height()))
	sum.files++

	for _, p := range job.presets {
		target := dir
		if p.Name != "" {
			target = filepath.Join(dir, p.Name)
		}

		quality := p.Quality
		if quality == 0 {
			quality = job.cube.Quality
		}

		cs, err := a.conv.ExtractCube(ctx, pano, cubemap.ExtractOptions{
			Size:     p.Width,
			MaxWidth: job.cube.MaxWidth,
			Rotation: job.cube.Rotation,
			Filter:   job.filter,
		})
		if err != nil {
			return err
		}

		paths, err := saveCube(ctx, cs, target, job.ext, quality)
		for _, f := range cubemap.Faces {
			sum.addPixels(cs[f])
		}
		cs.Release(a.conv)
		if err != nil {
			return err
		}
		sum.faces += len(paths)
	}

	if job.cube.Preview {
		preview, err := cubemap.Resize(pano, previewWidth, previewHeight)
		if err != nil {
			return err
		}
		if err := preview.EncodeFile(filepath.Join(dir, previewName), previewQuality); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}

	a.log.Info("cube written", zap.String("dir", dir), logger.Elapsed(start))
	return nil
}

// stem returns the file name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
