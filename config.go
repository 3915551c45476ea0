package av1ref

import (
	"log"

	"github.com/m4tthewde/av1ref/internal/orderhint"
)

// Config carries the sequence-level parameters and the collaborators the
// decoder core hands work to.
type Config struct {
	EnableOrderHint bool // enable_order_hint
	OrderHintBits   int  // order_hint_bits_minus_1 + 1

	FrameIDNumbersPresent bool
	FrameIDLength         int // additional_frame_id_length_minus_1 + delta_frame_id_length_minus_2 + 3
	DeltaFrameIDLength    int // delta_frame_id_length_minus_2 + 2

	FilmGrainParamsPresent bool

	// DefaultCDFs returns freshly initialised probability models for frames
	// that do not inherit from a primary reference.
	DefaultCDFs func() ProbabilityModels

	Filters PostFilter // nil runs no filtering
	Output  Sink       // nil discards shown frames
	Logger  *log.Logger
}

// DefaultConfig enables 7-bit order hints and nothing else.
func DefaultConfig() Config {
	return Config{
		EnableOrderHint: true,
		OrderHintBits:   7,
	}
}

func (c Config) orderHints() orderhint.Config {
	return orderhint.Config{
		Enabled: c.EnableOrderHint,
		Bits:    c.OrderHintBits,
	}
}
