package placement

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
)

func seeded(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed+1))
}

func checkInstances(t *testing.T, p Params, got []Instance) {
	t.Helper()
	for i, a := range got {
		x, z := a.Position.X, a.Position.Z
		if a.Position.Y != 0 {
			t.Errorf("instance %d: y = %v, want 0", i, a.Position.Y)
		}
		if x < p.XMin || x > p.XMax || z < p.ZMin || z > p.ZMax {
			t.Errorf("instance %d at (%v, %v) outside the sampling rectangle", i, x, z)
		}
		if abs(x) < p.HouseXRange && abs(z) < p.HouseZRange {
			t.Errorf("instance %d at (%v, %v) inside the exclusion zone", i, x, z)
		}
		if a.Scale < p.ScaleMin || a.Scale > p.ScaleMax {
			t.Errorf("instance %d: scale %v outside [%v, %v]", i, a.Scale, p.ScaleMin, p.ScaleMax)
		}
		for j := i + 1; j < len(got); j++ {
			d := a.Position.XZ().Distance(got[j].Position.XZ())
			if d < p.MinDistance {
				t.Errorf("instances %d and %d are %v apart, want >= %v", i, j, d, p.MinDistance)
			}
		}
	}
}

func TestGenerateDefaultForest(t *testing.T) {
	p := DefaultParams()
	got, stats, err := seeded(1).Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != p.Count {
		t.Fatalf("got %d instances, want %d", len(got), p.Count)
	}
	checkInstances(t, p, got)

	if stats.Accepted != p.Count {
		t.Errorf("stats.Accepted = %d, want %d", stats.Accepted, p.Count)
	}
	if stats.Draws != stats.Accepted+stats.RejectedExclusion+stats.RejectedSpacing {
		t.Errorf("stats do not add up: %+v", stats)
	}
}

func TestGenerateSmallArea(t *testing.T) {
	p := Params{
		Count:       10,
		XMin:        -10,
		XMax:        10,
		ZMin:        -10,
		ZMax:        10,
		HouseXRange: 2,
		HouseZRange: 2,
		MinDistance: 1,
		ScaleMin:    1,
		ScaleMax:    2,
		MaxAttempts: DefaultMaxAttempts,
	}

	for seed := uint64(0); seed < 20; seed++ {
		got, stats, err := seeded(seed).Generate(p)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(got) != 10 {
			t.Fatalf("seed %d: got %d instances, want 10", seed, len(got))
		}
		if stats.Draws > p.MaxAttempts {
			t.Fatalf("seed %d: %d draws exceed budget", seed, stats.Draws)
		}
		checkInstances(t, p, got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	a, _, err := seeded(42).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := seeded(42).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("instance %d differs between runs with the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	p := DefaultParams()
	p.Count = 0
	got, stats, err := seeded(3).Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 0 || stats.Draws != 0 {
		t.Errorf("got %d instances after %d draws, want none", len(got), stats.Draws)
	}
}

func TestGenerateInfeasible(t *testing.T) {
	// At most one tree fits in a 1x1 square with spacing 5.
	p := Params{
		Count:       5,
		XMin:        0,
		XMax:        1,
		ZMin:        0,
		ZMax:        1,
		MinDistance: 5,
		ScaleMin:    1,
		ScaleMax:    1,
		MaxAttempts: 1000,
	}

	got, stats, err := seeded(7).Generate(p)
	if !errors.Is(err, ErrPlacementInfeasible) {
		t.Fatalf("err = %v, want ErrPlacementInfeasible", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d instances, want the single one that fits", len(got))
	}
	if stats.Draws != p.MaxAttempts {
		t.Errorf("draws = %d, want %d", stats.Draws, p.MaxAttempts)
	}
	checkInstances(t, p, got)
}

func TestGenerateAllExcluded(t *testing.T) {
	p := DefaultParams()
	p.XMin, p.XMax = -1, 1
	p.ZMin, p.ZMax = -1, 1
	p.MaxAttempts = 500

	got, stats, err := seeded(9).Generate(p)
	if !errors.Is(err, ErrPlacementInfeasible) {
		t.Fatalf("err = %v, want ErrPlacementInfeasible", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d instances inside the clearing", len(got))
	}
	if stats.RejectedExclusion != p.MaxAttempts {
		t.Errorf("exclusion rejections = %d, want %d", stats.RejectedExclusion, p.MaxAttempts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
	}{
		{"negative count", func(p *Params) { p.Count = -1 }},
		{"empty x", func(p *Params) { p.XMax = p.XMin }},
		{"inverted z", func(p *Params) { p.ZMin, p.ZMax = 5, -5 }},
		{"negative exclusion", func(p *Params) { p.HouseXRange = -1 }},
		{"negative distance", func(p *Params) { p.MinDistance = -0.5 }},
		{"inverted scale", func(p *Params) { p.ScaleMin, p.ScaleMax = 2, 1 }},
		{"no attempts", func(p *Params) { p.MaxAttempts = 0 }},
		{"zero scale", func(p *Params) { p.ScaleMin = 0 }},
		{"mirrored scale", func(p *Params) { p.ScaleMin, p.ScaleMax = -1, 1 }},
		{"nan exclusion", func(p *Params) { p.HouseXRange = math32.NaN() }},
		{"nan z exclusion", func(p *Params) { p.HouseZRange = math32.NaN() }},
		{"infinite x min", func(p *Params) { p.XMin = math32.Inf(-1) }},
		{"infinite z max", func(p *Params) { p.ZMax = math32.Inf(1) }},
		{"nan x max", func(p *Params) { p.XMax = math32.NaN() }},
		{"infinite distance", func(p *Params) { p.MinDistance = math32.Inf(1) }},
		{"nan distance", func(p *Params) { p.MinDistance = math32.NaN() }},
		{"infinite scale", func(p *Params) { p.ScaleMax = math32.Inf(1) }},
		{"overflowing span", func(p *Params) { p.XMin, p.XMax = -3e38, 3e38 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
			if _, _, err := seeded(1).Generate(p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Generate() = %v, want ErrInvalidParams", err)
			}
		})
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params rejected: %v", err)
	}
}

func TestCapacityHint(t *testing.T) {
	p := DefaultParams()
	if hint := p.CapacityHint(); hint < p.Count {
		t.Errorf("capacity hint %d below the default count %d", hint, p.Count)
	}

	tight := Params{XMin: 0, XMax: 1, ZMin: 0, ZMax: 1, MinDistance: 5}
	if hint := tight.CapacityHint(); hint > 5 {
		t.Errorf("capacity hint %d for a 1x1 square with spacing 5", hint)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
