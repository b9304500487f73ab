package layout

// Defaults used when an [Options] field is zero.
const (
	DefaultWidth            = 800
	DefaultHeight           = 600
	DefaultMargin           = 50
	DefaultForceIterations  = 40
	DefaultAnnealIterations = 120
	DefaultStartTemp        = 50
	DefaultCooling          = 0.95
	DefaultSeed             = 42
)

// Options tunes both layout passes. Zero fields take the package defaults,
// except Seed, where zero is a valid seed.
type Options struct {
	Width  float64
	Height float64
	// Margin keeps nodes this far from every canvas edge.
	Margin float64

	ForceIterations  int
	AnnealIterations int
	// StartTemp is the initial annealing temperature; it also scales jitter.
	StartTemp float64
	// Cooling multiplies the temperature after every annealing step.
	Cooling float64

	Seed uint64
}

// DefaultOptions returns the options used by the CLI and HTTP API when
// nothing is configured.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.ForceIterations <= 0 {
		o.ForceIterations = DefaultForceIterations
	}
	if o.AnnealIterations <= 0 {
		o.AnnealIterations = DefaultAnnealIterations
	}
	if o.StartTemp <= 0 {
		o.StartTemp = DefaultStartTemp
	}
	if o.Cooling <= 0 || o.Cooling >= 1 {
		o.Cooling = DefaultCooling
	}
	return o
}

func (o Options) clampX(x float64) float64 { return max(o.Margin, min(o.Width-o.Margin, x)) }
func (o Options) clampY(y float64) float64 { return max(o.Margin, min(o.Height-o.Margin, y)) }
