package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Names of the parameters every operation understands.
const (
	SelectParam          = "Select"
	PassThruParam        = "PassThru"
	NoAutoIterationParam = "NoAutoIteration"
)

// ParamType is the value type of an operation parameter.
type ParamType int

const (
	TypeString ParamType = iota
	TypeInt32
	TypeBool
	TypeStrings
	TypeStringMap
	// TypeEnum is a string restricted to service defined values; it is never empty.
	TypeEnum
)

// Param describes one input parameter of an operation.
type Param struct {
	Name     string
	Type     ParamType
	Required bool
	Usage    string
}

// Operation is one wrapped service call: how to bind its parameters, build its
// request, call the service and project the response.
type Operation[P, Req, Resp any] struct {
	// Service is the logical service label used in diagnostics.
	Service string
	// Name is the service operation name, e.g. ListServers.
	Name string
	// Endpoint is the configured endpoint the client sends requests to.
	Endpoint string

	Params  []Param
	Aliases AliasTable

	// Select is the default selector expression.
	Select string
	// PassThru names the parameter echoed by the legacy PassThru switch, if supported.
	PassThru string
	Fields   FieldTable[Resp]
	Paging   *Paging[Req, Resp]

	BindParams func(b *Binder) P
	Build      func(p P) *Req
	Call       func(ctx context.Context, req *Req) (*Resp, error)
}

// Context is the bound, validated input of one invocation.
type Context[P, Resp any] struct {
	Params          P
	Inputs          Inputs
	Projection      Projection[Resp]
	NoAutoIteration bool
}

type bindSettings struct {
	lenient bool
	logger  *slog.Logger
	custom  any
}

// BindOption adjusts how parameters are bound.
type BindOption func(*bindSettings)

// Lenient makes a missing required parameter a logged warning instead of a
// binding failure. Interactive callers use it to let the service report the problem.
func Lenient(logger *slog.Logger) BindOption {
	return func(s *bindSettings) {
		s.lenient = true
		s.logger = logger
	}
}

// WithProjector supplies a custom output projection. Its response type must
// match the operation the option is used with.
func WithProjector[Resp any](fn Projector[Resp]) BindOption {
	return func(s *bindSettings) {
		s.custom = fn
	}
}

// Bind validates raw against the operation and returns the invocation context.
// It never touches the network.
func (op *Operation[P, Req, Resp]) Bind(raw Inputs, opts ...BindOption) (*Context[P, Resp], error) {
	var settings bindSettings
	for _, opt := range opts {
		opt(&settings)
	}

	b := NewBinder(raw, op.Aliases)
	b.lenient = settings.lenient
	b.logger = settings.logger

	selectExpr := Optional[string](b, SelectParam)
	passThru := Switch(b, PassThruParam)
	noAutoIteration := Switch(b, NoAutoIterationParam)

	projection, err := op.resolveProjection(selectExpr, passThru, settings.custom)
	if err != nil {
		b.fail(err)
	}

	op.checkNames(b)

	for _, p := range op.Params {
		if p.Required && !b.Has(p.Name) {
			b.missing(p.Name)
		}
		if p.Type == TypeEnum {
			if v, ok := b.inputs[p.Name].(string); ok && v == "" {
				b.fail(&InvalidParameterError{Field: p.Name, Err: errors.New("enum value cannot be empty")})
			}
		}
	}

	params := op.BindParams(b)
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}

	inputs := b.Inputs()
	delete(inputs, SelectParam)
	delete(inputs, PassThruParam)
	delete(inputs, NoAutoIterationParam)

	return &Context[P, Resp]{
		Params:          params,
		Inputs:          inputs,
		Projection:      projection,
		NoAutoIteration: noAutoIteration,
	}, nil
}

// checkNames rejects inputs that are neither a parameter, an alias nor a
// framework switch. Aliases are already resolved at this point.
func (op *Operation[P, Req, Resp]) checkNames(b *Binder) {
	for _, name := range slices.Sorted(maps.Keys(b.Inputs())) {
		switch name {
		case SelectParam, PassThruParam, NoAutoIterationParam:
			continue
		}
		if slices.ContainsFunc(op.Params, func(p Param) bool { return p.Name == name }) {
			continue
		}

		err := fmt.Errorf("%w of %s", ErrUnknownParameter, op.Name)
		if idx := slices.IndexFunc(op.Params, func(p Param) bool { return strings.EqualFold(p.Name, name) }); idx >= 0 {
			err = fmt.Errorf("%w; did you mean %q?", err, op.Params[idx].Name)
		}
		b.fail(&InvalidParameterError{Field: name, Err: err})
	}
}

func (op *Operation[P, Req, Resp]) resolveProjection(selectExpr *string, passThru bool, custom any) (Projection[Resp], error) {
	explicit := selectExpr != nil || custom != nil
	if passThru && explicit {
		return Projection[Resp]{}, &ConfigurationError{Reason: "PassThru cannot be combined with an output selector"}
	}
	if selectExpr != nil && custom != nil {
		return Projection[Resp]{}, &ConfigurationError{Reason: "a selector expression and a custom projector were both supplied"}
	}

	switch {
	case custom != nil:
		fn, ok := custom.(Projector[Resp])
		if !ok || fn == nil {
			return Projection[Resp]{}, &InvalidProjectionError{
				Selector: "custom",
				Reason:   fmt.Sprintf("projector of type %T does not accept %s responses", custom, op.Name),
			}
		}
		return Projection[Resp]{Kind: SelectCustom, custom: fn}, nil
	case passThru:
		if op.PassThru == "" {
			return Projection[Resp]{}, &ConfigurationError{Reason: op.Name + " does not support PassThru"}
		}
		return resolveSelector("^"+op.PassThru, op.Fields, op.Params)
	case selectExpr != nil:
		return resolveSelector(*selectExpr, op.Fields, op.Params)
	case op.Select != "":
		return resolveSelector(op.Select, op.Fields, op.Params)
	default:
		return Projection[Resp]{Kind: SelectWhole}, nil
	}
}

// Execute binds raw and invokes the operation once. Bind failures are reported
// as an outcome of kind OutcomeBindError.
func (op *Operation[P, Req, Resp]) Execute(ctx context.Context, raw Inputs, tracer Tracer, opts ...BindOption) *Outcome[Resp] {
	bc, err := op.Bind(raw, opts...)
	if err != nil {
		return &Outcome[Resp]{Kind: OutcomeBindError, Err: err}
	}
	return op.Invoke(ctx, bc, tracer)
}
