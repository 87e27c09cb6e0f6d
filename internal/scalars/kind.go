package scalars

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a target leaf representation.
type Kind int

const (
	KindUnknown Kind = iota

	KindString
	KindInt
	KindFloat
	KindBool
	KindCustom // user-mapped representation, opaque to the generator

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// IsNumeric reports whether the kind is an integer or floating-point
// representation.
func (k Kind) IsNumeric() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat:
		return true
	}
}
