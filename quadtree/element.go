package quadtree

// Element is the constraint on payloads stored in tree nodes. Collectors skip nodes whose
// element reports false, and the zero value of an Element type must report false since every
// node starts out holding it.
type Element interface {
	IsPresent() bool
}

// Optional wraps any value so it can be stored as an Element. The zero value is absent.
type Optional[V any] struct {
	value   V
	present bool
}

// Some returns a present Optional holding v.
func Some[V any](v V) Optional[V] {
	return Optional[V]{value: v, present: true}
}

// None returns an absent Optional.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

// IsPresent reports whether a value is held.
func (o Optional[V]) IsPresent() bool {
	return o.present
}

// Value returns the held value, or the zero value of V when absent.
func (o Optional[V]) Value() V {
	return o.value
}

// Get returns the held value and whether it is present.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}
