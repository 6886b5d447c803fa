package renderer

import (
	"strings"

	"github.com/contrafactum/whatif"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws the portfolio value as a unicode bar strip of at most width
// cells. It is a shape hint, not a chart: values are scaled between the
// observed min and max.
func Sparkline(values []whatif.PortfolioPoint, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		sampled := make([]whatif.PortfolioPoint, 0, width)
		step := float64(len(values)-1) / float64(width-1)
		for i := 0; i < width; i++ {
			sampled = append(sampled, values[int(float64(i)*step+0.5)])
		}
		values = sampled
	}

	lo, hi := values[0].Value.AsFloat(), values[0].Value.AsFloat()
	for _, p := range values {
		v := p.Value.AsFloat()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, p := range values {
		level := 0
		if hi > lo {
			level = int((p.Value.AsFloat() - lo) / (hi - lo) * float64(len(sparkLevels)-1))
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}
