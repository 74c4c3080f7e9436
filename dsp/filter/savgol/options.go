package savgol

// DefaultWindow is the window size used by the sentiment figures for the
// medium smoothing curve.
const DefaultWindow = 7

// DefaultOrder is the polynomial order of the fit.
const DefaultOrder = 2

// Option configures a smoother.
type Option func(*config)

type config struct {
	order int
	pad   PadMode
}

func defaultConfig() config {
	return config{
		order: DefaultOrder,
		pad:   PadReflect,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithOrder sets the polynomial order of the local fit. New rejects a
// negative order; Smooth returns the input unchanged.
func WithOrder(order int) Option {
	return func(cfg *config) {
		cfg.order = order
	}
}

// WithPadMode selects how the series is extended past its ends.
func WithPadMode(mode PadMode) Option {
	return func(cfg *config) {
		cfg.pad = mode
	}
}

// oddWindow forces an even window size to the next odd value.
func oddWindow(window int) int {
	if window%2 == 0 {
		return window + 1
	}
	return window
}
