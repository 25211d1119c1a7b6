// Package effects implements the engine's shared effect chain: a
// topology-preserving state-variable filter, a feedback delay and a
// Schroeder/Moorer reverb. All effects process a mono signal one sample at
// a time and keep their state bounded for any allowed parameter values.
package effects

// Processor transforms one mono sample.
type Processor interface {
	Process(x float64) float64
	Reset()
}

// Chain applies a sequence of effects in order.
type Chain struct {
	effects []Processor
}

func NewChain(effects ...Processor) *Chain {
	return &Chain{effects: effects}
}

func (c *Chain) Process(x float64) float64 {
	for _, e := range c.effects {
		x = e.Process(x)
	}
	return x
}

func (c *Chain) Reset() {
	for _, e := range c.effects {
		e.Reset()
	}
}

func (c *Chain) Add(e Processor) {
	c.effects = append(c.effects, e)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
