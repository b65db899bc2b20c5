package betting

// Option tunes the simple list operations (listEventTypes, listCompetitions, ...).
type Option func(*Options)

type Options struct {
	Locale     string
	MaxResults int
}

// WithLocale sets the language of the returned names. Betfair defaults to the
// account's locale.
func WithLocale(locale string) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithMaxResults caps the number of results. Zero leaves the cap to Betfair.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		o.MaxResults = n
	}
}

func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
