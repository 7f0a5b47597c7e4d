package signal

import "math"

// DefaultSeed is the generator state after a reset.
const DefaultSeed uint32 = 1

// SampleProcessor filters one sample at a time.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// Noise is a linear congruential noise source followed by a shaping
// filter. The shaper is owned by the caller and may be retuned between
// calls.
type Noise struct {
	seed   uint32
	shaper SampleProcessor
}

// NewNoise returns a noise source starting from seed. A nil shaper leaves
// the noise white.
func NewNoise(seed uint32, shaper SampleProcessor) *Noise {
	return &Noise{seed: seed, shaper: shaper}
}

// Next returns the next shaped sample scaled by amplitude. A zero amplitude
// returns 0 and leaves the generator and shaper untouched.
func (n *Noise) Next(amplitude float64) float64 {
	if amplitude == 0 {
		return 0
	}
	n.seed = n.seed*1103515245 + 12345
	x := float64(n.seed)/math.MaxUint32*2 - 1
	if n.shaper != nil {
		x = n.shaper.ProcessSample(x)
	}
	return x * amplitude
}

// Reset restores the generator state to seed.
func (n *Noise) Reset(seed uint32) {
	n.seed = seed
}

// Seed returns the current generator state.
func (n *Noise) Seed() uint32 { return n.seed }
