// Package matcher resolves input colors to the nearest token of a palette.
package matcher

import (
	"context"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Matcher performs nearest token lookups with a fixed distance metric.
// It holds no per-lookup state and is safe for concurrent use.
type Matcher struct {
	metric  domain.Metric
	dist    domain.DistanceFunc
	workers int
}

// New creates a Matcher for the given metric.
func New(metric domain.Metric) (*Matcher, error) {
	dist, err := DistanceFor(metric)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		metric:  metric,
		dist:    dist,
		workers: runtime.GOMAXPROCS(0),
	}, nil
}

// WithMetric returns a copy of m using metric.
func (m *Matcher) WithMetric(metric domain.Metric) (*Matcher, error) {
	next, err := New(metric)
	if err != nil {
		return nil, err
	}
	next.workers = m.workers
	return next, nil
}

// WithWorkers returns a copy of m that resolves batches with at most n goroutines.
func (m *Matcher) WithWorkers(n int) *Matcher {
	if n < 1 {
		n = 1
	}
	next := *m
	next.workers = n
	return &next
}

// Metric returns the metric used by the matcher.
func (m *Matcher) Metric() domain.Metric {
	return m.metric
}

// Distance returns the distance function of the matcher's metric.
func (m *Matcher) Distance() domain.DistanceFunc {
	return m.dist
}

// Match finds the token of palette nearest to input.
// Malformed input yields a Match with Found set to false.
func (m *Matcher) Match(input string, palette *domain.Palette) domain.Match {
	return palette.Nearest(input, m.dist)
}

// MatchAll resolves every input against palette and returns the matches in input order.
// The palette is only read, so lookups run concurrently.
func (m *Matcher) MatchAll(ctx context.Context, inputs []string, palette *domain.Palette) ([]domain.Match, error) {
	results := make([]domain.Match, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = m.Match(input, palette)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// DistanceFor returns the distance function implementing metric.
func DistanceFor(metric domain.Metric) (domain.DistanceFunc, error) {
	switch metric {
	case domain.MetricRGB, "":
		return domain.Distance, nil
	case domain.MetricCIELab:
		return LabDistance, nil
	default:
		return nil, zerr.With(domain.ErrUnknownMetric, "metric", string(metric))
	}
}

// LabDistance is the CIE76 color difference, the Euclidean distance in L*a*b* space.
func LabDistance(a, b domain.RGB) float64 {
	return toColorful(a).DistanceLab(toColorful(b))
}

func toColorful(c domain.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
