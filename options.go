package cubemap

// Conversion defaults.
const (
	// DefaultFeatherWidth is the patch feather band in face pixels.
	DefaultFeatherWidth = 1.5

	// DefaultPoleRadius is the pole smoothing band as a fraction of the
	// panorama height.
	DefaultPoleRadius = 0.05

	// DefaultPoleNearestLatitude is the |latitude|, as a fraction of π,
	// beyond which the forward and patch paths sample with nearest.
	DefaultPoleNearestLatitude = 0.495

	// DefaultProgressRows is the number of completed rows between progress
	// events.
	DefaultProgressRows = 100
)

// Option configures a Converter.
//
// Example:
//
//	conv := cubemap.NewConverter(
//	    cubemap.WithFilter(cubemap.FilterBicubic),
//	    cubemap.WithWorkers(4),
//	)
type Option func(*options)

type options struct {
	workers             int
	filter              Filter
	kernel              KernelParams
	featherWidth        float64
	poleSmoothing       bool
	poleRadius          float64
	poleNearestLatitude float64
	progress            ProgressFunc
	progressRows        int
	poolSize            int
}

func defaultOptions() options {
	return options{
		workers:             0, // GOMAXPROCS
		filter:              FilterLanczos,
		kernel:              KernelParams{LanczosSize: DefaultLanczosSize, BicubicB: DefaultBicubicB},
		featherWidth:        DefaultFeatherWidth,
		poleSmoothing:       true,
		poleRadius:          DefaultPoleRadius,
		poleNearestLatitude: DefaultPoleNearestLatitude,
		progressRows:        DefaultProgressRows,
		poolSize:            12,
	}
}

// WithWorkers sets the number of worker goroutines. Zero or negative uses
// GOMAXPROCS; 1 runs every conversion on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithFilter sets the interior filter of the forward and patch paths.
// The default is FilterLanczos. Unknown filters fall back to nearest.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithKernelParams sets the Lanczos window size and the bicubic parameter.
// Zero fields keep their defaults; use WithBicubicB to select b = 0.
func WithKernelParams(p KernelParams) Option {
	return func(o *options) {
		if p.LanczosSize > 0 {
			o.kernel.LanczosSize = p.LanczosSize
		}
		if p.BicubicB != 0 {
			o.kernel.BicubicB = p.BicubicB
		}
	}
}

// WithBicubicB sets the bicubic convolution parameter exactly, including 0.
func WithBicubicB(b float64) Option {
	return func(o *options) {
		o.kernel.BicubicB = b
	}
}

// WithFeatherWidth sets the patch feather band in face pixels. Zero
// disables feathering so covered pixels are replaced outright.
func WithFeatherWidth(px float64) Option {
	return func(o *options) {
		o.featherWidth = max(px, 0)
	}
}

// WithPoleSmoothing enables or disables pole smoothing after a forward
// conversion. Enabled by default.
func WithPoleSmoothing(enabled bool) Option {
	return func(o *options) {
		o.poleSmoothing = enabled
	}
}

// WithPoleRadius sets the pole smoothing band as a fraction of the
// panorama height.
func WithPoleRadius(fraction float64) Option {
	return func(o *options) {
		o.poleRadius = max(fraction, 0)
	}
}

// WithPoleNearestLatitude sets the |latitude| threshold, as a fraction of
// π, beyond which nearest sampling is used. Values of 0.5 or more disable
// the override.
func WithPoleNearestLatitude(fraction float64) Option {
	return func(o *options) {
		o.poleNearestLatitude = fraction
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithProgressRows sets how many completed rows separate progress events.
func WithProgressRows(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.progressRows = n
		}
	}
}

// WithRasterPool sets how many released rasters of each size the converter
// keeps for reuse. Zero keeps an unlimited number.
func WithRasterPool(perSize int) Option {
	return func(o *options) {
		o.poolSize = max(perSize, 0)
	}
}
