package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

// Committer applies a commit plan atomically. Usecases depend on this
// interface rather than the concrete Spanner committer so they can be
// exercised against a recording fake.
type Committer interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}
