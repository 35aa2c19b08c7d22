package binding

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
)

// Inputs holds raw parameter values keyed by canonical parameter name.
// A nil value is treated the same as an absent key.
type Inputs map[string]any

// Clone returns a copy of the inputs with nil values dropped.
func (in Inputs) Clone() Inputs {
	out := make(Inputs, len(in))
	for k, v := range in {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// AliasTable maps obsolete parameter names to the canonical name they stand for.
type AliasTable map[string]string

// Binder reads typed parameter values out of raw inputs and collects binding errors.
// A Binder belongs to exactly one invocation.
type Binder struct {
	inputs  Inputs
	errs    []error
	lenient bool
	logger  *slog.Logger
}

// NewBinder resolves aliases in raw and returns a binder over the result.
// Supplying an alias together with its canonical name is a ConfigurationError.
func NewBinder(raw Inputs, aliases AliasTable) *Binder {
	b := &Binder{inputs: raw.Clone()}
	for _, alias := range slices.Sorted(maps.Keys(aliases)) {
		v, ok := b.inputs[alias]
		if !ok {
			continue
		}
		canonical := aliases[alias]
		delete(b.inputs, alias)
		if _, dup := b.inputs[canonical]; dup {
			b.fail(&ConfigurationError{
				Reason: fmt.Sprintf("parameter %q is an alias of %q; specify only one", alias, canonical),
			})
			continue
		}
		b.inputs[canonical] = v
	}
	return b
}

// Inputs returns the alias-resolved inputs.
func (b *Binder) Inputs() Inputs {
	return b.inputs
}

// Has reports whether name was supplied.
func (b *Binder) Has(name string) bool {
	_, ok := b.inputs[name]
	return ok
}

// Fail records a binding error raised by operation specific validation.
func (b *Binder) Fail(err error) {
	b.fail(err)
}

// Err returns every error recorded so far, joined, or nil.
func (b *Binder) Err() error {
	return errors.Join(b.errs...)
}

func (b *Binder) fail(err error) {
	b.errs = append(b.errs, err)
}

func (b *Binder) missing(name string) {
	err := &MissingRequiredFieldError{Field: name}
	if b.lenient {
		logger := b.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("continuing without required parameter", "parameter", name)
		return
	}
	b.fail(err)
}

// Optional returns a copy of the named value converted to T, or nil when it was not supplied.
func Optional[T any](b *Binder, name string) *T {
	raw, ok := b.inputs[name]
	if !ok {
		return nil
	}
	v, err := convert[T](raw)
	if err != nil {
		b.fail(&InvalidParameterError{Field: name, Err: err})
		return nil
	}
	return &v
}

// Switch returns the value of a boolean switch parameter, false when absent.
func Switch(b *Binder, name string) bool {
	v := Optional[bool](b, name)
	return v != nil && *v
}

// Slice returns a newly allocated slice holding the named collection, or nil when absent.
func Slice[T any](b *Binder, name string) []T {
	raw, ok := b.inputs[name]
	if !ok {
		return nil
	}
	var out []T
	switch items := raw.(type) {
	case []T:
		out = slices.Clone(items)
	case []any:
		out = make([]T, 0, len(items))
		for i, item := range items {
			v, err := convert[T](item)
			if err != nil {
				b.fail(&InvalidParameterError{Field: fmt.Sprintf("%s[%d]", name, i), Err: err})
				return nil
			}
			out = append(out, v)
		}
	default:
		// a single value binds as a one element collection
		v, err := convert[T](raw)
		if err != nil {
			b.fail(&InvalidParameterError{Field: name, Err: err})
			return nil
		}
		out = []T{v}
	}
	return out
}

// Map returns a newly allocated map holding the named dictionary, or nil when absent.
func Map[V any](b *Binder, name string) map[string]V {
	raw, ok := b.inputs[name]
	if !ok {
		return nil
	}
	switch m := raw.(type) {
	case map[string]V:
		return maps.Clone(m)
	case map[string]any:
		out := make(map[string]V, len(m))
		for k, item := range m {
			v, err := convert[V](item)
			if err != nil {
				b.fail(&InvalidParameterError{Field: fmt.Sprintf("%s[%s]", name, k), Err: err})
				return nil
			}
			out[k] = v
		}
		return out
	default:
		b.fail(&InvalidParameterError{Field: name, Err: fmt.Errorf("expected a map, got %T", raw)})
		return nil
	}
}

func convert[T any](raw any) (T, error) {
	var out T
	switch v := raw.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, errors.New("nil value")
		}
		return *v, nil
	}

	n, isNumber := toInt64(raw)
	switch p := any(&out).(type) {
	case *int32:
		if !isNumber {
			break
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return out, fmt.Errorf("%d overflows int32", n)
		}
		*p = int32(n)
		return out, nil
	case *int64:
		if !isNumber {
			break
		}
		*p = n
		return out, nil
	case *int:
		if !isNumber {
			break
		}
		*p = int(n)
		return out, nil
	}
	return out, fmt.Errorf("expected %T, got %T", out, raw)
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float64:
		// JSON numbers decode as float64
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}
