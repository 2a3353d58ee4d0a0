package snap

// Kind is the structural classification deciding which live node kind a
// value must correspond to. Old/new values whose kinds differ are
// reconciled by replacement, never in place.
type Kind int

const (
	Primitive Kind = iota
	Text
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Primitive:
		return "Primitive"
	case Text:
		return "Text"
	case Sequence:
		return "Sequence"
	case Mapping:
		return "Mapping"
	}
	return "<unknown kind>"
}

// Kind classifies a value. nil and Null are Primitive.
func (v *Value) Kind() Kind {
	if v == nil {
		return Primitive
	}
	switch v.Type {
	case StringType:
		return Text
	case ArrayType:
		return Sequence
	case ObjectType:
		return Mapping
	default:
		return Primitive
	}
}
