package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPreset is returned for output size names not in Presets.
var ErrUnknownPreset = errors.New("config: unknown size preset")

// Preset is a face output size with its JPEG quality.
type Preset struct {
	Name    string
	Width   int
	Quality int
}

// Presets lists the named face output sizes.
var Presets = []Preset{
	{Name: "512", Width: 512, Quality: 50},
	{Name: "1024", Width: 1024, Quality: 50},
	{Name: "1024_75", Width: 1024, Quality: 75},
	{Name: "2048", Width: 2048, Quality: 75},
	{Name: "2048_90", Width: 2048, Quality: 90},
	{Name: "4096", Width: 4096, Quality: 90},
	{Name: "4096_100", Width: 4096, Quality: 100},
}

// LookupPreset returns the preset called name.
func LookupPreset(name string) (Preset, error) {
	i := slices.IndexFunc(Presets, func(p Preset) bool { return p.Name == name })
	if i < 0 {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return Presets[i], nil
}

// OutputPresets resolves c.Sizes. With no sizes configured it returns a
// single unnamed preset using c.Size and c.Quality.
func (c CubeConfig) OutputPresets() ([]Preset, error) {
	if len(c.Sizes) == 0 {
		return []Preset{{Width: c.Size, Quality: c.Quality}}, nil
	}

	out := make([]Preset, 0, len(c.Sizes))
	for _, name := range c.Sizes {
		p, err := LookupPreset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
