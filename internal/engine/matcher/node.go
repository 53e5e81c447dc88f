package matcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swatch/internal/core/domain"
)

// NodeID is the unique identifier for the matcher Graft node.
const NodeID graft.ID = "engine.matcher"

func init() {
	graft.Register(graft.Node[*Matcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Matcher, error) {
			return New(domain.DefaultMetric)
		},
	})
}
