// Package config handles cubepano job configuration.
package config

// Config holds all job settings.
type Config struct {
	Convert  ConvertConfig  `yaml:"convert"`
	Cube     CubeConfig     `yaml:"cube"`
	Panorama PanoramaConfig `yaml:"panorama"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ConvertConfig holds engine settings shared by every subcommand.
type ConvertConfig struct {
	Filter              string  `yaml:"filter"`
	Workers             int     `yaml:"workers"` // 0 = GOMAXPROCS
	LanczosSize         int     `yaml:"lanczos_size"`
	BicubicB            float64 `yaml:"bicubic_b"`
	FeatherWidth        float64 `yaml:"feather_width"`
	PoleSmoothing       bool    `yaml:"pole_smoothing"`
	PoleRadius          float64 `yaml:"pole_radius"`
	PoleNearestLatitude float64 `yaml:"pole_nearest_latitude"`
	ProgressRows        int     `yaml:"progress_rows"`
}

// CubeConfig holds panorama-to-faces settings.
type CubeConfig struct {
	Filter   string   `yaml:"filter"`
	Size     int      `yaml:"size"`      // 0 = panorama width / 4
	MaxWidth int      `yaml:"max_width"` // 0 = no cap
	Rotation float64  `yaml:"rotation"`  // radians
	Format   string   `yaml:"format"`    // face file format
	Quality  int      `yaml:"quality"`
	Sizes    []string `yaml:"sizes"` // output presets, see Presets
	Preview  bool     `yaml:"preview"`
}

// PanoramaConfig holds faces-to-panorama settings.
type PanoramaConfig struct {
	Width   int `yaml:"width"`  // 0 = 4 × face width
	Height  int `yaml:"height"` // 0 = width / 2
	Quality int `yaml:"quality"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Filter:              "lanczos",
			Workers:             0,
			LanczosSize:         5,
			BicubicB:            -0.5,
			FeatherWidth:        1.5,
			PoleSmoothing:       true,
			PoleRadius:          0.05,
			PoleNearestLatitude: 0.495,
			ProgressRows:        100,
		},
		Cube: CubeConfig{
			Filter:  "lanczos",
			Format:  "jpg",
			Quality: 90,
			Preview: false,
		},
		Panorama: PanoramaConfig{
			Quality: 90,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
