package wave

// config holds New's tunable parameters. Unexported: callers only ever
// touch it through Option functions, a small functional-options
// convention kept deliberately tiny since Wave has only one tunable.
type config struct {
	seed int64
}

// Option configures a Wave at construction time.
type Option func(*config)

// WithSeed fixes the Wave's RNG seed, making Step fully reproducible for a
// given sequence of calls. Randomness is consumed at exactly two sites
// per Step, in a fixed order. Seed 0 is a valid, deterministic choice —
// it is not treated as "unset" — but callers that omit WithSeed entirely
// get the package's fixed default seed rather than a time-based one,
// since the core never uses a time-based source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// defaultConfig returns the zero-value config: seed 0 unless overridden
// by WithSeed. Seed 0 is simply the default seed value itself; Wave has
// no notion of an invalid or unset seed.
func defaultConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
