package binding

import (
	"context"
	"fmt"
)

// RunAll invokes op once per input, strictly in order. A failed item does not
// stop the run; once ctx is done the remaining items are reported as cancelled
// without being bound or sent.
func RunAll[P, Req, Resp any](ctx context.Context, op *Operation[P, Req, Resp], inputs []Inputs, tracer Tracer, opts ...BindOption) []*Outcome[Resp] {
	outcomes := make([]*Outcome[Resp], 0, len(inputs))
	for _, raw := range inputs {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, &Outcome[Resp]{
				Kind: OutcomeCancelled,
				Err:  fmt.Errorf("%s: %w: %w", op.Name, ErrCancelled, err),
			})
			continue
		}
		outcomes = append(outcomes, op.Execute(ctx, raw, tracer, opts...))
	}
	return outcomes
}
