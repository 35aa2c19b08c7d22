package binding

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/nandemo-ya/awscmdlet/internal/logging"
)

// OutcomeKind discriminates the result of an invocation.
type OutcomeKind int

const (
	OutcomeSucceeded OutcomeKind = iota
	OutcomeBindError
	OutcomeTransportResolutionFailure
	OutcomeServiceError
	OutcomeCancelled
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "Succeeded"
	case OutcomeBindError:
		return "BindError"
	case OutcomeTransportResolutionFailure:
		return "TransportResolutionFailure"
	case OutcomeServiceError:
		return "ServiceError"
	case OutcomeCancelled:
		return "Cancelled"
	case OutcomeFailed:
		return "Failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Invocation identifies one call of an operation. Custom projectors receive it.
type Invocation struct {
	ID        string
	Service   string
	Operation string
	Endpoint  string
	Inputs    Inputs
}

// Outcome is the result of one invocation. Errors are returned here rather than
// raised so that callers driving many invocations can move on to the next one.
type Outcome[Resp any] struct {
	Kind OutcomeKind
	// Value is the projected output; set only on success.
	Value any
	// Responses holds every raw response page received, in order.
	Responses  []*Resp
	Invocation *Invocation
	Err        error
}

// OK reports whether the invocation succeeded.
func (o *Outcome[Resp]) OK() bool {
	return o.Kind == OutcomeSucceeded
}

// Invoke issues the request built from bc and projects the response.
// A nil tracer falls back to a LogTracer on the invocation's logger.
func (op *Operation[P, Req, Resp]) Invoke(ctx context.Context, bc *Context[P, Resp], tracer Tracer) *Outcome[Resp] {
	inv := &Invocation{
		ID:        uuid.NewString(),
		Service:   op.Service,
		Operation: op.Name,
		Endpoint:  op.Endpoint,
		Inputs:    bc.Inputs,
	}
	out := &Outcome[Resp]{Invocation: inv}

	ctx = logging.WithInvocationID(ctx, inv.ID)
	logger := logging.FromContext(ctx).With("operation", op.Name)

	if err := ctx.Err(); err != nil {
		out.Kind, out.Err = OutcomeCancelled, fmt.Errorf("%s: %w: %w", op.Name, ErrCancelled, err)
		return out
	}

	if tracer == nil {
		tracer = LogTracer{Logger: logger}
	}

	req := op.Build(bc.Params)
	autoIterate := op.Paging.autoIterate(req, bc.NoAutoIteration)

	tracer.Trace(op.Service, op.Name, op.Endpoint)

	var merged *Resp
	seen := make(map[string]struct{})
	for {
		resp, err := op.Call(ctx, req)
		if err != nil {
			out.Kind, out.Err = classify(ctx, err, op.Endpoint)
			logger.Debug("service call failed", "outcome", out.Kind.String(), "error", out.Err)
			return out
		}
		out.Responses = append(out.Responses, resp)
		if merged == nil {
			merged = resp
		} else {
			merged = op.Paging.Merge(merged, resp)
		}

		if !autoIterate {
			break
		}
		token, more := nextToken(op.Paging.OutputToken(resp))
		if !more {
			break
		}
		if _, dup := seen[token]; dup {
			out.Kind = OutcomeFailed
			out.Err = fmt.Errorf("%s: service returned continuation token %q twice", op.Name, token)
			return out
		}
		seen[token] = struct{}{}

		if err := ctx.Err(); err != nil {
			out.Kind, out.Err = OutcomeCancelled, fmt.Errorf("%s: %w: %w", op.Name, ErrCancelled, err)
			return out
		}

		logger.Debug("fetching next page", "page", len(out.Responses)+1)
		req = op.Build(bc.Params)
		op.Paging.SetToken(req, &token)
	}

	value, err := bc.Projection.Apply(merged, inv)
	if err != nil {
		out.Kind, out.Err = OutcomeFailed, fmt.Errorf("%s: output projection: %w", op.Name, err)
		return out
	}
	out.Kind, out.Value = OutcomeSucceeded, value
	return out
}

// classify maps a call error onto the outcome taxonomy.
func classify(ctx context.Context, err error, endpoint string) (OutcomeKind, error) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return OutcomeCancelled, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return OutcomeTransportResolutionFailure, &TransportResolutionFailureError{
			Endpoint: endpoint,
			DNS:      dnsErr,
			Err:      err,
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		// passed through untouched; callers match on the SDK error types
		return OutcomeServiceError, err
	}

	return OutcomeFailed, err
}
