package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/cubemap"
)

// facePlaceholder in a face path is replaced by the face label.
const facePlaceholder = "%"

// faceExtensions are tried, in order, when locating face files in a folder.
var faceExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp", ".gif"}

// panoramaExtensions select batch inputs in a directory.
var panoramaExtensions = []string{".jpg", ".jpeg", ".png"}

// facePath returns the file for face. A target containing "%" is a pattern;
// otherwise it is a folder holding "<face><ext>".
func facePath(target string, face cubemap.Face, ext string) string {
	if strings.Contains(target, facePlaceholder) {
		return strings.ReplaceAll(target, facePlaceholder, face.String())
	}
	return filepath.Join(target, face.String()+ext)
}

// findFace locates an existing face file in a folder.
func findFace(dir string, face cubemap.Face) (string, error) {
	for _, ext := range faceExtensions {
		path := facePath(dir, face, ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &cubemap.MissingFaceError{Face: face}
}

// loadCube decodes the six faces concurrently.
func loadCube(ctx context.Context, target string) (cubemap.CubeSet, error) {
	var faces [len(cubemap.Faces)]*cubemap.Raster

	g, _ := errgroup.WithContext(ctx)
	for i, face := range cubemap.Faces {
		g.Go(func() error {
			path := facePath(target, face, "")
			if !strings.Contains(target, facePlaceholder) {
				var err error
				if path, err = findFace(target, face); err != nil {
					return err
				}
			}

			r, err := cubemap.DecodeFile(path)
			if err != nil {
				return fmt.Errorf("face %s: %w", face, err)
			}
			faces[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cs := make(cubemap.CubeSet, len(faces))
	for i, face := range cubemap.Faces {
		cs[face] = faces[i]
	}
	return cs, nil
}

// saveCube encodes the faces concurrently and returns the written paths in
// face order.
func saveCube(ctx context.Context, cs cubemap.CubeSet, target, ext string, quality int) ([]string, error) {
	if !strings.Contains(target, facePlaceholder) {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return nil, err
		}
	}

	paths := make([]string, len(cubemap.Faces))
	g, gctx := errgroup.WithContext(ctx)
	for i, face := range cubemap.Faces {
		r, ok := cs[face]
		if !ok {
			continue
		}
		paths[i] = facePath(target, face, ext)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := r.EncodeFile(paths[i], quality); err != nil {
				return fmt.Errorf("face %s: %w", face, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.DeleteFunc(paths, func(p string) bool { return p == "" }), nil
}

// listPanoramas returns the batch inputs for path: the file itself, or the
// panorama images directly inside a directory, sorted by name.
func listPanoramas(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(panoramaExtensions, ext) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, errors.New("no panorama images in " + path)
	}
	return files, nil
}
