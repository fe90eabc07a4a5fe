package utils

import (
	"context"
	"time"
)

// DBTimeout bounds a single repository call.
const DBTimeout = 5 * time.Second

// WithDBTimeout derives the context for one query. A caller deadline that is
// already tighter is kept as is.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < DBTimeout {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, DBTimeout)
}
