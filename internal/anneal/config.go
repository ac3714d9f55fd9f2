package anneal

import (
	"time"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// Config tunes the simulated-annealing driver. Zero value is not usable
// directly, call DefaultConfig and override what you need.
type Config struct {
	// K scales the inner round's stopping point: a round ends once
	// uphill_cnt exceeds K*|blocks| or gen_cnt exceeds 2*K*|blocks|.
	K int
	// CoolingFactor multiplies the temperature at the end of every
	// outer iteration.
	CoolingFactor float64
	// TemperatureMin stops the whole run once the temperature drops
	// below it.
	TemperatureMin float64
	// ContinuousRejectMax stops the run once this many consecutive
	// rounds produced only rejections.
	ContinuousRejectMax int
	// Alpha and Beta weight the cost function: alpha*norm_area +
	// beta*norm_hpwl. Beta == 0 short-circuits to raw packed area.
	Alpha, Beta float64
	// Seed seeds the run's random stream. Zero selects rng.New's fixed
	// default seed, so a zero seed is as reproducible as any other.
	Seed uint64
	// TimeBudget stops the run once exceeded, regardless of temperature
	// or rejection state. Zero means unlimited.
	TimeBudget time.Duration
	// DefaultAxis is the symmetry axis a problem-file group takes when
	// its input line carries no explicit Axis token.
	DefaultAxis model.Axis
	// OnOuterStep, if set, is called at the end of every outer
	// (temperature) iteration with the iteration count, the
	// post-cooling temperature, and the best area found so far. It is
	// never called concurrently with itself.
	OnOuterStep func(iteration int, temperature float64, bestArea int64)
}

// DefaultConfig returns the driver's defaults.
func DefaultConfig() Config {
	return Config{
		K:                   20,
		CoolingFactor:       0.95,
		TemperatureMin:      1.0,
		ContinuousRejectMax: 10,
		Alpha:               1,
		Beta:                0,
		TimeBudget:          290 * time.Second,
		DefaultAxis:         model.Vertical,
	}
}
