package adt

// Equaler is implemented by values that define their own equality.
// Equals must accept any value, including nil and foreign types.
type Equaler interface {
	Equals(other any) bool
}

// Tagged exposes the variant and payload of a container without its type
// parameters, so nested containers can be inspected at run time.
type Tagged interface {
	// Variant returns the active arm
	Variant() Variant
	// Payload returns the contained value of the active arm, nil for Nothing
	Payload() any
}
