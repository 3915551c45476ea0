// Package orderhint compares frame order hints, which wrap modulo 2^Bits.
package orderhint

// Config is the sequence-level order hint setup.
type Config struct {
	Enabled bool
	Bits    int
}

// RelativeDist returns the signed distance a-b reduced into
// [-2^(Bits-1), 2^(Bits-1)-1]. It is 0 when order hints are disabled.
// Positive means a is later than b.
func (c Config) RelativeDist(a, b int) int {
	if !c.Enabled || c.Bits <= 0 {
		return 0
	}
	diff := a - b
	m := 1 << (c.Bits - 1)
	return (diff & (m - 1)) - (diff & m)
}

// Half is 2^(Bits-1), the centre of the shifted hint space used when
// ranking slots around the current frame.
func (c Config) Half() int {
	if c.Bits <= 0 {
		return 0
	}
	return 1 << (c.Bits - 1)
}
