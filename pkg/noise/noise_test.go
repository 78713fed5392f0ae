package noise

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// constSource returns the same raw value everywhere.
type constSource float64

func (c constSource) Noise3D(x, y, z float64) float64 { return float64(c) }

// recordingSource remembers the coordinates it was sampled at.
type recordingSource struct {
	calls [][3]float64
}

func (r *recordingSource) Noise3D(x, y, z float64) float64 {
	r.calls = append(r.calls, [3]float64{x, y, z})
	return 0
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"defaults", DefaultOptions(), nil},
		{"zero octaves", Options{Octaves: 0, Smoothness: 1}, ErrNoOctaves},
		{"negative octaves", Options{Octaves: -2, Smoothness: 1}, ErrNoOctaves},
		{"zero smoothness", Options{Octaves: 1, Smoothness: 0}, ErrInvalidSmoothness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			_, err = NewSampler(constSource(0), tt.opts, 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewSampler() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAtRemapsToUnitRange(t *testing.T) {
	tests := []struct {
		raw  float64
		want float32
	}{
		{-1, 0},
		{0, 0.5},
		{1, 1},
		{3, 1},  // clamped
		{-7, 0}, // clamped
		{0.5, 0.75},
	}

	for _, tt := range tests {
		s, err := NewSampler(constSource(tt.raw), DefaultOptions(), 7)
		if err != nil {
			t.Fatalf("NewSampler failed: %v", err)
		}
		got := s.At(mgl32.Vec2{}, mgl32.Vec2{3, 4})
		if !mgl32.FloatEqualThreshold(got, tt.want, 1e-6) {
			t.Errorf("raw %v: At() = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestAtSampleCoordinates(t *testing.T) {
	src := &recordingSource{}
	opts := Options{Octaves: 3, Smoothness: 100, Roughness: 0.5}
	s, err := NewSampler(src, opts, 10)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}

	// vx = 1 + 2*256 = 513, vz = 0 + 1*256 = 256
	s.At(mgl32.Vec2{1, 0}, mgl32.Vec2{2, 1})

	if len(src.calls) != 3 {
		t.Fatalf("got %d samples, want 3", len(src.calls))
	}
	for i, c := range src.calls {
		freq := float64(int(1) << i)
		wantX := 10 + 513*freq/100
		wantY := 10 + 256*freq/100
		if c[0] != wantX || c[1] != wantY || c[2] != 10 {
			t.Errorf("octave %d sampled at %v, want [%v %v 10]", i, c, wantX, wantY)
		}
	}
}

func TestAtOffsetAndPatchSize(t *testing.T) {
	src := &recordingSource{}
	opts := Options{Octaves: 1, Smoothness: 1, Roughness: 1, Offset: mgl32.Vec2{5, -5}}
	s, err := NewSampler(src, opts, 0)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}

	s.WithPatchSize(10).At(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 2})

	want := [3]float64{15, 15, 0}
	if src.calls[0] != want {
		t.Errorf("sampled at %v, want %v", src.calls[0], want)
	}
	if s.patchSize != DefaultPatchSize {
		t.Errorf("WithPatchSize modified the receiver")
	}
}

func TestPerlinSamplerDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a, err := NewSampler(NewPerlinSource(42), opts, 42)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}
	b, err := NewSampler(NewPerlinSource(42), opts, 42)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}

	for x := 0; x < 64; x += 7 {
		for y := 0; y < 64; y += 5 {
			pos := mgl32.Vec2{float32(x), float32(y)}
			first := a.At(mgl32.Vec2{}, pos)
			if again := a.At(mgl32.Vec2{}, pos); again != first {
				t.Fatalf("At(%v) not repeatable: %v then %v", pos, first, again)
			}
			if other := b.At(mgl32.Vec2{}, pos); other != first {
				t.Fatalf("At(%v) differs between identical samplers: %v vs %v", pos, first, other)
			}
		}
	}
}

func TestPerlinSamplerRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	s, err := NewSampler(NewPerlinSource(99), DefaultOptions(), 99)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}

	for range 1000 {
		pos := mgl32.Vec2{rng.Float32() * 512, rng.Float32() * 512}
		v := s.At(mgl32.Vec2{}, pos)
		if v < 0 || v > 1 {
			t.Errorf("At(%v) = %v, want in [0,1]", pos, v)
		}
	}
}

func TestPerlinSamplerVaries(t *testing.T) {
	s, err := NewSampler(NewPerlinSource(3), DefaultOptions(), 3)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}

	first := s.At(mgl32.Vec2{}, mgl32.Vec2{0, 0})
	for x := 1; x < 32; x++ {
		if s.At(mgl32.Vec2{}, mgl32.Vec2{float32(x), float32(x)}) != first {
			return
		}
	}
	t.Error("noise field is constant across 32 samples")
}
