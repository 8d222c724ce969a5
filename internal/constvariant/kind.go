// Package constvariant implements the constant-expression evaluation engine:
// a tagged union over every scalar and string alternative the IDL constant
// grammar can produce, together with the promotion/demotion and operator
// rules the expression evaluator applies to it. Grounded on original_source's
// constvariant.cpp (CConstVariant, a std::variant of 17 alternatives) and on
// the teacher's internal/jsonvalue package for the Go idiom of a single
// tagged struct instead of interface{} (jsonvalue.Value).
package constvariant

// Kind identifies the active alternative of a Variant. Its numeric value IS
// the rank used for promotion/demotion (Ranking()/Convert()): it mirrors the
// declaration order of CConstVariant's std::variant<...> exactly, which is
// not monotonic in "width" — e.g. Int8 outranks Uint32. This is preserved
// faithfully rather than "fixed", since constant-expression tests pin the
// exact promotion winner for mixed-rank expressions.
type Kind int

const (
	Bool Kind = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Fixed
	Float32
	Float64
	LongDouble
	String
	U16String
	U32String
	WString
)

// numKinds is the count of alternatives in the union (spec.md §4.4: "~17
// variants").
const numKinds = int(WString) + 1

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Fixed:
		return "fixed"
	case Float32:
		return "float"
	case Float64:
		return "double"
	case LongDouble:
		return "long double"
	case String:
		return "string"
	case U16String:
		return "u16string"
	case U32String:
		return "u32string"
	case WString:
		return "wstring"
	default:
		return "unknown"
	}
}

func (k Kind) isStringLike() bool {
	return k == String || k == U16String || k == U32String || k == WString
}
