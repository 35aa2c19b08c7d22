package binding

import "slices"

// Nested builds an optional sub-structure of a request. The structure is
// populated field by field and discarded when none of the fields were present,
// so the parent never carries an empty object.
type Nested[T any] struct {
	value T
	empty bool
}

// NewNested returns an empty sub-structure builder.
func NewNested[T any]() *Nested[T] {
	return &Nested[T]{empty: true}
}

// Fields returns the structure under construction.
func (n *Nested[T]) Fields() *T {
	return &n.value
}

// Track marks the structure as non-empty when present is true.
func (n *Nested[T]) Track(present bool) {
	if present {
		n.empty = false
	}
}

// Empty reports whether no field has been set.
func (n *Nested[T]) Empty() bool {
	return n.empty
}

// Result returns the built structure, or nil when no field was set.
func (n *Nested[T]) Result() *T {
	if n.empty {
		return nil
	}
	v := n.value
	return &v
}

// Opt copies src into a fresh pointer at dst when src is present.
// Explicit zero values are copied; only nil counts as absent.
func Opt[V any](dst **V, src *V) bool {
	if src == nil {
		return false
	}
	v := *src
	*dst = &v
	return true
}

// Enum assigns a string-backed enum from an optional string.
func Enum[E ~string](dst *E, src *string) bool {
	if src == nil {
		return false
	}
	*dst = E(*src)
	return true
}

// List copies a collection when it was supplied. An explicitly empty, non-nil
// collection is still sent.
func List[V any](dst *[]V, src []V) bool {
	if src == nil {
		return false
	}
	*dst = slices.Clone(src)
	if *dst == nil {
		*dst = []V{}
	}
	return true
}

// Child attaches an already built sub-structure when it is non-nil.
func Child[C any](dst **C, child *C) bool {
	if child == nil {
		return false
	}
	*dst = child
	return true
}
