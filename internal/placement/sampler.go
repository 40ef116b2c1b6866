// Package placement scatters tree instances over a rectangular ground area
// by rejection sampling: candidates inside the cabin clearing or too close to
// an accepted tree are thrown away.
package placement

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/simpleforest/pkg/math"
)

// DefaultMaxAttempts bounds the number of candidate draws per Generate call.
const DefaultMaxAttempts = 100000

var (
	// ErrPlacementInfeasible is returned when the attempt budget runs out
	// before Count instances were accepted.
	ErrPlacementInfeasible = errors.New("placement infeasible")

	// ErrInvalidParams is returned for malformed sampling parameters.
	ErrInvalidParams = errors.New("invalid placement params")
)

// Params describes one sampling run.
type Params struct {
	Count int

	// Sampling rectangle on the XZ plane.
	XMin, XMax float32
	ZMin, ZMax float32

	// Exclusion zone around the origin: a candidate is rejected when
	// |x| < HouseXRange and |z| < HouseZRange.
	HouseXRange float32
	HouseZRange float32

	// Minimum center-to-center distance between accepted instances.
	MinDistance float32

	ScaleMin float32
	ScaleMax float32

	MaxAttempts int
}

// DefaultParams returns the forest around the cabin as the scene ships it.
func DefaultParams() Params {
	return Params{
		Count:       50,
		XMin:        -14,
		XMax:        14,
		ZMin:        -17,
		ZMax:        20,
		HouseXRange: 4,
		HouseZRange: 4,
		MinDistance: 2,
		ScaleMin:    0.7,
		ScaleMax:    1.5,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate reports malformed parameters. It does not decide feasibility.
func (p Params) Validate() error {
	if err := p.checkFinite(); err != nil {
		return err
	}
	switch {
	case p.Count < 0:
		return fmt.Errorf("count %d is negative: %w", p.Count, ErrInvalidParams)
	case !(p.XMin < p.XMax):
		return fmt.Errorf("x range [%v, %v] is empty: %w", p.XMin, p.XMax, ErrInvalidParams)
	case !(p.ZMin < p.ZMax):
		return fmt.Errorf("z range [%v, %v] is empty: %w", p.ZMin, p.ZMax, ErrInvalidParams)
	case p.HouseXRange < 0 || p.HouseZRange < 0:
		return fmt.Errorf("exclusion %vx%v is negative: %w", p.HouseXRange, p.HouseZRange, ErrInvalidParams)
	case !(p.MinDistance >= 0):
		return fmt.Errorf("min distance %v is negative: %w", p.MinDistance, ErrInvalidParams)
	case !(p.ScaleMin > 0):
		return fmt.Errorf("scale min %v must be positive: %w", p.ScaleMin, ErrInvalidParams)
	case !(p.ScaleMin <= p.ScaleMax):
		return fmt.Errorf("scale range [%v, %v] is inverted: %w", p.ScaleMin, p.ScaleMax, ErrInvalidParams)
	case p.MaxAttempts <= 0:
		return fmt.Errorf("max attempts %d must be positive: %w", p.MaxAttempts, ErrInvalidParams)
	}
	return nil
}

// checkFinite rejects NaN and infinite fields, and ranges whose width
// overflows float32.
func (p Params) checkFinite() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"x min", p.XMin},
		{"x max", p.XMax},
		{"z min", p.ZMin},
		{"z max", p.ZMax},
		{"x exclusion", p.HouseXRange},
		{"z exclusion", p.HouseZRange},
		{"min distance", p.MinDistance},
		{"scale min", p.ScaleMin},
		{"scale max", p.ScaleMax},
		{"x span", p.XMax - p.XMin},
		{"z span", p.ZMax - p.ZMin},
		{"scale span", p.ScaleMax - p.ScaleMin},
	}
	for _, f := range fields {
		if math32.IsNaN(f.v) || math32.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v is not finite: %w", f.name, f.v, ErrInvalidParams)
		}
	}
	return nil
}

// CapacityHint is a rough upper bound on how many instances fit: the free
// area divided by the area of one spacing disk, assuming hexagonal packing.
// Callers use it to warn before sampling; it never changes the result.
func (p Params) CapacityHint() int {
	if p.MinDistance <= 0 {
		return int(^uint(0) >> 1)
	}

	area := (p.XMax - p.XMin) * (p.ZMax - p.ZMin)
	ex := overlap(-p.HouseXRange, p.HouseXRange, p.XMin, p.XMax)
	ez := overlap(-p.HouseZRange, p.HouseZRange, p.ZMin, p.ZMax)
	area -= ex * ez

	// Each center owns a disk of radius MinDistance/2; pad the rectangle by
	// that radius so disks on the border count.
	r := p.MinDistance / 2
	area += r * 2 * ((p.XMax - p.XMin) + (p.ZMax - p.ZMin))
	disk := math32.Pi * r * r / 0.9069
	return int(area/disk) + 1
}

func overlap(a0, a1, b0, b1 float32) float32 {
	lo, hi := max(a0, b0), min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// Instance is one accepted tree: a ground position (Y is always 0) and a
// uniform scale.
type Instance struct {
	Position math.Vec3
	Scale    float32
}

// Stats counts what happened during a Generate call.
type Stats struct {
	Draws             int
	Accepted          int
	RejectedExclusion int
	RejectedSpacing   int
}

// Sampler draws instances from an injected random source. A Sampler is not
// safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler drawing from src. Pass a fixed-seed source
// (rand.NewPCG) for reproducible forests.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// NewTimeSeeded creates a sampler seeded once from the wall clock, so every
// run produces a different forest.
func NewTimeSeeded() *Sampler {
	seed := uint64(time.Now().UnixNano())
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate samples p.Count instances.
//
// Every accepted pair is at least p.MinDistance apart, no instance lies
// inside the exclusion zone, and all scales fall in [ScaleMin, ScaleMax].
// If p.MaxAttempts draws are not enough, the instances accepted so far are
// returned together with an error wrapping ErrPlacementInfeasible.
func (s *Sampler) Generate(p Params) ([]Instance, Stats, error) {
	var stats Stats
	if err := p.Validate(); err != nil {
		return nil, stats, err
	}

	out := make([]Instance, 0, p.Count)
	minSq := p.MinDistance * p.MinDistance

	for len(out) < p.Count {
		if stats.Draws >= p.MaxAttempts {
			stats.Accepted = len(out)
			return out, stats, fmt.Errorf("accepted %d of %d after %d draws: %w",
				len(out), p.Count, stats.Draws, ErrPlacementInfeasible)
		}
		stats.Draws++

		x := s.uniform(p.XMin, p.XMax)
		z := s.uniform(p.ZMin, p.ZMax)

		if math32.Abs(x) < p.HouseXRange && math32.Abs(z) < p.HouseZRange {
			stats.RejectedExclusion++
			continue
		}

		candidate := math.Vec2{X: x, Y: z}
		tooClose := false
		for _, inst := range out {
			if inst.Position.XZ().DistanceSq(candidate) < minSq {
				tooClose = true
				break
			}
		}
		if tooClose {
			stats.RejectedSpacing++
			continue
		}

		out = append(out, Instance{
			Position: math.Vec3{X: x, Y: 0, Z: z},
			Scale:    s.uniform(p.ScaleMin, p.ScaleMax),
		})
	}

	stats.Accepted = len(out)
	return out, stats, nil
}

// uniform returns a value in [lo, hi].
func (s *Sampler) uniform(lo, hi float32) float32 {
	v := lo + s.rng.Float32()*(hi-lo)
	// Float rounding can land exactly past hi for wide ranges.
	return min(max(v, lo), hi)
}
