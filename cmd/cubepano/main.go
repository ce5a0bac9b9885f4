// cubepano converts between cube map faces and equirectangular panoramas.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/gogpu/cubemap"
	"github.com/gogpu/cubemap/internal/config"
	"github.com/gogpu/cubemap/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `cubepano - cube map and panorama converter

Usage:
  cubepano [global options] <command> [options]

Commands:
  tocube       Extract six cube faces from a panorama (or a directory of them)
  topano       Assemble a panorama from six cube faces
  patch        Paint an edited cube face back into a panorama
  init-config  Write the effective configuration to a YAML file

Global options:
  -config path   Job configuration file
  -debug         Enable debug logging
  -log-file path Write logs to a rotated file
  -workers N     Worker goroutines
  -filter name   nearest, bilinear, bicubic or lanczos

Examples:
  cubepano tocube -in pano.jpg -out faces
  cubepano -workers 4 topano -in faces -out pano.jpg -width 4096
  cubepano topano -in "faces/cube_%.png" -out pano.png
  cubepano patch -pano pano.jpg -face pz -in pz.png -out patched.jpg`)
}

// app holds the state shared by all commands.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	conv     *cubemap.Converter
	stdout   io.Writer
}

// run parses the global flags, sets up logging and dispatches the command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("cubepano", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { printUsage(stderr) }
	flags := config.RegisterFlags(global)
	if err := global.Parse(args); err != nil {
		return err
	}

	if global.NArg() < 1 {
		printUsage(stderr)
		return errors.New("missing command")
	}
	command, cmdArgs := global.Arg(0), global.Args()[1:]

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	switch command {
	case "init-config":
		return cmdInitConfig(cfg, cmdArgs, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	}

	a, err := newApp(cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.close()

	switch command {
	case "tocube":
		return a.cmdToCube(ctx, cmdArgs, stderr)
	case "topano":
		return a.cmdToPano(ctx, cmdArgs, stderr)
	case "patch":
		return a.cmdPatch(ctx, cmdArgs, stderr)
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func newApp(cfg *config.Config, stdout, stderr io.Writer) (*app, error) {
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	zl, closeLog := logger.New(cfg.Logging.Level, fileCfg, stderr)
	cubemap.SetLogger(slog.New(logger.NewSlogHandler(zl)))

	opts, err := converterOptions(cfg.Convert, zl)
	if err != nil {
		_ = zl.Sync()
		_ = closeLog()
		cubemap.SetLogger(nil)
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      zl,
		closeLog: closeLog,
		conv:     cubemap.NewConverter(opts...),
		stdout:   stdout,
	}, nil
}

func (a *app) close() {
	a.conv.Close()
	cubemap.SetLogger(nil)
	_ = a.log.Sync()
	_ = a.closeLog()
}

// converterOptions maps the convert section onto engine options.
func converterOptions(cc config.ConvertConfig, zl *zap.Logger) ([]cubemap.Option, error) {
	filter, err := cubemap.ParseFilter(cc.Filter)
	if err != nil {
		return nil, fmt.Errorf("convert.filter: %w", err)
	}

	return []cubemap.Option{
		cubemap.WithWorkers(cc.Workers),
		cubemap.WithFilter(filter),
		cubemap.WithKernelParams(cubemap.KernelParams{LanczosSize: cc.LanczosSize}),
		cubemap.WithBicubicB(cc.BicubicB),
		cubemap.WithFeatherWidth(cc.FeatherWidth),
		cubemap.WithPoleSmoothing(cc.PoleSmoothing),
		cubemap.WithPoleRadius(cc.PoleRadius),
		cubemap.WithPoleNearestLatitude(cc.PoleNearestLatitude),
		cubemap.WithProgressRows(cc.ProgressRows),
		cubemap.WithProgress(func(ev cubemap.ProgressEvent) {
			zl.Info("progress", zap.String("status", ev.Status), zap.Int("percent", ev.Progress))
		}),
	}, nil
}

func cmdInitConfig(cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("init-config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "cubepano.yaml", "Output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cfg.SaveTo(*out); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(stdout, "Config written to %s\n", *out)
	return nil
}
