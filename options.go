package rain

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default global random source
//	r := rain.New(rain.DefaultConfig())
//
//	// Deterministic source (dependency injection)
//	r := rain.New(cfg, rain.WithRand(rand.New(rand.NewPCG(1, 2))))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	rand    Rand
	palette Palette
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		rand:    globalRand{},
		palette: DefaultPalette,
	}
}

// WithRand sets the random source for glyph choice and column restarts.
// A nil source keeps the default.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithPalette replaces the glyph palette. An empty palette keeps the
// default.
func WithPalette(p Palette) Option {
	return func(o *options) {
		if p.Len() > 0 {
			o.palette = p
		}
	}
}
