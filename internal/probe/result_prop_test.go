package probe

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPacketLossBoundsProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("loss is always within [0, 100]", prop.ForAll(
		func(attempted, succeeded int) bool {
			r := Result{Attempted: attempted, Succeeded: succeeded}
			loss := r.PacketLossPct()
			return loss >= 0 && loss <= 100
		},
		gen.IntRange(-5, 50),
		gen.IntRange(-5, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAvgWithinMinMaxProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("avg lies between min and max", prop.ForAll(
		func(samples []float64) bool {
			r := Result{Samples: samples, Attempted: len(samples), Succeeded: len(samples)}
			if len(samples) == 0 {
				return r.Avg() == 0 && r.Min() == 0 && r.Max() == 0
			}
			return r.Min() <= r.Avg() && r.Avg() <= r.Max()
		},
		gen.SliceOf(gen.Float64Range(0, 1000)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
