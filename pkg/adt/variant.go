package adt

// Variant tags the active arm of a sum type.
type Variant uint8

const (
	LeftVariant Variant = iota
	RightVariant
	// NothingVariant is a Left that carries no value.
	NothingVariant
)

// IsLeft reports true for Left and Nothing.
func (v Variant) IsLeft() bool {
	return v != RightVariant
}

func (v Variant) IsRight() bool {
	return v == RightVariant
}

func (v Variant) IsNothing() bool {
	return v == NothingVariant
}

func (v Variant) String() string {
	switch v {
	case LeftVariant:
		return "Left"
	case RightVariant:
		return "Right"
	case NothingVariant:
		return "Nothing"
	default:
		return "Unknown"
	}
}
