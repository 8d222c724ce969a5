// Package anyvalue implements the Any Value envelope (spec.md §3.5/4.5): a
// dynamically typed value carrying one of ~23 runtime payloads, with implicit
// construction from every carried type, a typed-construction API that parses
// or casts into an explicit target tag, and cross-type equality/ordering.
// Grounded on the teacher's internal/jsonvalue.Value for the Go idiom of a
// single tagged struct rather than interface{}, generalized from
// constvariant.Variant's rank-based tagged union for the arithmetic side.
package anyvalue

// Kind identifies the active alternative of a Value. Unlike constvariant.Kind
// its numeric order carries no promotion meaning; it is just an enumeration.
type Kind int

const (
	Empty Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Char
	Char16
	Char32
	WChar
	Float
	Double
	LongDouble
	Fixed
	U8String
	U16String
	U32String
	WString
	InterfaceHandle
	InterfaceID
	ExceptionID
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Char:
		return "char"
	case Char16:
		return "char16"
	case Char32:
		return "char32"
	case WChar:
		return "wchar"
	case Float:
		return "float"
	case Double:
		return "double"
	case LongDouble:
		return "long double"
	case Fixed:
		return "fixed"
	case U8String:
		return "u8string"
	case U16String:
		return "u16string"
	case U32String:
		return "u32string"
	case WString:
		return "wstring"
	case InterfaceHandle:
		return "interface_handle"
	case InterfaceID:
		return "interface_id"
	case ExceptionID:
		return "exception_id"
	default:
		return "unknown"
	}
}

func (k Kind) isString() bool {
	switch k {
	case U8String, U16String, U32String, WString:
		return true
	default:
		return false
	}
}

func (k Kind) isArithmetic() bool {
	switch k {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64,
		Char, Char16, Char32, WChar, Float, Double, LongDouble, Fixed:
		return true
	default:
		return false
	}
}

func (k Kind) isFloating() bool {
	switch k {
	case Float, Double, LongDouble, Fixed:
		return true
	default:
		return false
	}
}

// isSigned reports whether the kind's payload lives in Value.i rather than
// Value.u. Char16 is deliberately absent: it is an unsigned UTF-16 code
// unit and is stored in u, unlike Char/Char32/WChar which carry a signed
// Go int/rune representation in i.
func (k Kind) isSigned() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Char, Char32, WChar:
		return true
	default:
		return false
	}
}

func (k Kind) isHandleLike() bool {
	return k == InterfaceHandle || k == InterfaceID || k == ExceptionID
}
