package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Metric names a color distance function.
type Metric string

const (
	// MetricRGB is the Euclidean distance in RGB space.
	MetricRGB Metric = "rgb"
	// MetricCIELab is the CIE76 delta E, Euclidean distance in L*a*b* space.
	MetricCIELab Metric = "cielab"
)

// DefaultMetric is used when no metric is requested.
const DefaultMetric = MetricRGB

// ParseMetric converts a user supplied name into a Metric.
// An empty name selects DefaultMetric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMetric, nil
	case string(MetricRGB):
		return MetricRGB, nil
	case string(MetricCIELab), "lab":
		return MetricCIELab, nil
	default:
		return "", zerr.With(ErrUnknownMetric, "metric", s)
	}
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	return string(m)
}
