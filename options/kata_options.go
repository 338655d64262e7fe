package options

type KataOptions struct {
	Debug bool

	// Metrics enables Prometheus counters on batch calculations.
	Metrics bool
}

func NewKataOptions(options *KataOptions) *KataOptions {

	opt := &KataOptions{}
	if options != nil {
		opt.Debug = options.Debug
		opt.Metrics = options.Metrics
	}
	return opt
}
