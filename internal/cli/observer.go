package cli

import (
	"context"

	"github.com/katalvlaran/tspanneal/tsp"
)

// logObserver reports annealing progress through the context logger: every
// sweep at debug level, every `every` sweeps and on convergence at info.
type logObserver struct {
	every   int
	restart int
}

func (o logObserver) OnStep(ctx context.Context, s tsp.Snapshot) {
	logger := loggerFromContext(ctx)
	st := s.Status

	logger.Debug("sweep",
		"restart", o.restart,
		"sweep", st.Sweep,
		"temperature", st.Temperature,
		"energy", st.Energy,
		"best", st.BestEnergy,
		"accepted", st.Accepted,
		"plateau", st.Plateau,
	)

	switch {
	case st.State == tsp.Converged:
		logger.Info("Converged", "restart", o.restart, "sweeps", st.Sweep, "best", st.BestEnergy)
	case o.every > 0 && st.Sweep%o.every == 0:
		logger.Info("Annealing",
			"restart", o.restart,
			"sweep", st.Sweep,
			"temperature", st.Temperature,
			"best", st.BestEnergy,
		)
	}
}

// sample is one point of an energy trace.
type sample struct {
	Sweep       int
	Temperature float64
	Energy      float64
	Best        float64
}

// traceObserver records the energy trace of a run for plotting.
type traceObserver struct {
	samples []sample
}

func (t *traceObserver) OnStep(_ context.Context, s tsp.Snapshot) {
	t.samples = append(t.samples, sample{
		Sweep:       s.Status.Sweep,
		Temperature: s.Status.Temperature,
		Energy:      s.Status.Energy,
		Best:        s.Status.BestEnergy,
	})
}
