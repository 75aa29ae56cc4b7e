// internal/pipeline/sim.go
package pipeline

import (
	"swscan/internal/pwm"
	"swscan/internal/seqtable"
)

// Scorer is the minimal capability the pipeline needs.
// Any kernel (including fakes in tests) can satisfy this.
type Scorer interface {
	ScoreAll(plus, minus seqtable.Matrix, p pwm.PWM) ([]float64, error)
}
