package binding

import (
	"fmt"
	"slices"
	"strings"
)

// SelectorKind discriminates the output projection modes.
type SelectorKind int

const (
	// SelectWhole surfaces the entire response.
	SelectWhole SelectorKind = iota
	// SelectField surfaces one named response field.
	SelectField
	// SelectInputEcho surfaces the value of one input parameter.
	SelectInputEcho
	// SelectCustom surfaces the result of a caller supplied function.
	SelectCustom
)

func (k SelectorKind) String() string {
	switch k {
	case SelectWhole:
		return "whole"
	case SelectField:
		return "field"
	case SelectInputEcho:
		return "input-echo"
	case SelectCustom:
		return "custom"
	default:
		return fmt.Sprintf("SelectorKind(%d)", int(k))
	}
}

// Projector is a caller supplied output projection.
type Projector[Resp any] func(resp *Resp, inv *Invocation) (any, error)

// FieldTable lists the response fields an operation exposes to selectors.
type FieldTable[Resp any] map[string]func(*Resp) any

// Projection is a resolved output selector. It is created per invocation at bind time.
type Projection[Resp any] struct {
	Kind SelectorKind
	// Name is the response field or the input parameter, depending on Kind.
	Name string

	field  func(*Resp) any
	custom Projector[Resp]
}

// ParseSelector splits a selector expression into its kind and name:
// "*" selects the whole response, "^Param" echoes an input parameter and
// anything else names a response field.
func ParseSelector(expr string) (SelectorKind, string, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return 0, "", &InvalidProjectionError{Selector: expr, Reason: "selector is empty"}
	case expr == "*":
		return SelectWhole, "", nil
	case strings.HasPrefix(expr, "^"):
		name := strings.TrimSpace(expr[1:])
		if name == "" {
			return 0, "", &InvalidProjectionError{Selector: expr, Reason: "missing parameter name after ^"}
		}
		return SelectInputEcho, name, nil
	default:
		if strings.ContainsAny(expr, " \t^*") {
			return 0, "", &InvalidProjectionError{Selector: expr, Reason: "not a field name"}
		}
		return SelectField, expr, nil
	}
}

// resolveSelector validates expr against the operation's fields and parameters.
func resolveSelector[Resp any](expr string, fields FieldTable[Resp], params []Param) (Projection[Resp], error) {
	kind, name, err := ParseSelector(expr)
	if err != nil {
		return Projection[Resp]{}, err
	}
	switch kind {
	case SelectField:
		canonical, ok := lookupFold(fields, name)
		if !ok {
			return Projection[Resp]{}, &InvalidProjectionError{
				Selector: expr,
				Reason:   fmt.Sprintf("response has no field %q (known: %s)", name, strings.Join(sortedNames(fields), ", ")),
			}
		}
		return Projection[Resp]{Kind: SelectField, Name: canonical, field: fields[canonical]}, nil
	case SelectInputEcho:
		idx := slices.IndexFunc(params, func(p Param) bool { return strings.EqualFold(p.Name, name) })
		if idx < 0 {
			return Projection[Resp]{}, &InvalidProjectionError{
				Selector: expr,
				Reason:   fmt.Sprintf("operation has no parameter %q", name),
			}
		}
		return Projection[Resp]{Kind: SelectInputEcho, Name: params[idx].Name}, nil
	default:
		return Projection[Resp]{Kind: SelectWhole}, nil
	}
}

// Apply projects resp for the given invocation.
func (p Projection[Resp]) Apply(resp *Resp, inv *Invocation) (any, error) {
	switch p.Kind {
	case SelectField:
		if resp == nil {
			return nil, nil
		}
		return p.field(resp), nil
	case SelectInputEcho:
		if inv == nil {
			return nil, nil
		}
		return inv.Inputs[p.Name], nil
	case SelectCustom:
		return p.custom(resp, inv)
	default:
		return resp, nil
	}
}

func lookupFold[V any](m map[string]V, name string) (string, bool) {
	if _, ok := m[name]; ok {
		return name, true
	}
	for k := range m {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
