package config

import "flag"

// Flags holds the global command-line overrides.
type Flags struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Workers    int
	Filter     string
}

// RegisterFlags defines the global flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file (rotated)")
	fs.IntVar(&f.Workers, "workers", 0, "Worker goroutines (0 = config or GOMAXPROCS)")
	fs.StringVar(&f.Filter, "filter", "", "Resampling filter: nearest, bilinear, bicubic, lanczos")
	return f
}

// apply applies flag overrides to the config. A nil receiver is a no-op.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Workers > 0 {
		cfg.Convert.Workers = f.Workers
	}
	if f.Filter != "" {
		cfg.Convert.Filter = f.Filter
		cfg.Cube.Filter = f.Filter
	}
}
