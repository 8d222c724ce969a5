package anyvalue

// Handle is an opaque interface-object identity. It is address-like
// (pointer equality/ordering, spec.md §4.5.4) without pulling unsafe.Pointer
// into this package: internal/marshal mints one per registered proxy and
// hands it here as an ordinary comparable value.
type Handle uintptr

// Value is the dynamic envelope. It mirrors constvariant.Variant's shape (a
// single struct with a kind tag, avoiding interface{} so downstream
// marshalling code stays type-safe) generalized to the wider alternative set
// the runtime boundary needs: narrow/wide scalar kinds, four string
// encodings, and the three handle-like identifier kinds.
type Value struct {
	kind Kind

	i      int64
	u      uint64
	f      float64
	s      string
	w16    []uint16
	w32    []rune
	handle Handle
}

// Kind reports the active alternative.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether no payload is live.
func (v Value) IsEmpty() bool { return v.kind == Empty }

func NewInt8(n int8) Value   { return Value{kind: Int8, i: int64(n)} }
func NewUint8(n uint8) Value { return Value{kind: Uint8, u: uint64(n)} }

func NewInt16(n int16) Value   { return Value{kind: Int16, i: int64(n)} }
func NewUint16(n uint16) Value { return Value{kind: Uint16, u: uint64(n)} }

func NewInt32(n int32) Value   { return Value{kind: Int32, i: int64(n)} }
func NewUint32(n uint32) Value { return Value{kind: Uint32, u: uint64(n)} }

func NewInt64(n int64) Value   { return Value{kind: Int64, i: n} }
func NewUint64(n uint64) Value { return Value{kind: Uint64, u: n} }

// NewChar constructs from a single narrow (8-bit) character.
func NewChar(c byte) Value { return Value{kind: Char, i: int64(c)} }

// NewChar16 constructs from a single UTF-16 code unit.
func NewChar16(c uint16) Value { return Value{kind: Char16, u: uint64(c)} }

// NewChar32 constructs from a single UTF-32 code point.
func NewChar32(c rune) Value { return Value{kind: Char32, i: int64(c)} }

// NewWChar constructs from a single platform-wide character, modeled as a
// 32-bit code point the way SPEC_FULL.md §3 models the platform wide
// character for the text interpreter: no native Go type
// distinguishes a 16-bit-vs-32-bit wide char, so WChar always carries a rune.
func NewWChar(c rune) Value { return Value{kind: WChar, i: int64(c)} }

func NewFloat(f float32) Value      { return Value{kind: Float, f: float64(f)} }
func NewDouble(f float64) Value     { return Value{kind: Double, f: f} }
func NewLongDouble(f float64) Value { return Value{kind: LongDouble, f: f} }
func NewFixed(f float64) Value      { return Value{kind: Fixed, f: f} }

// NewString constructs a u8string any (an unprefixed string literal,
// spec.md §3.5).
func NewString(s string) Value { return Value{kind: U8String, s: s} }

// NewStringPtr models the `const char*` implicit constructor: a nil pointer
// yields the empty any rather than panicking, matching spec.md §3.5's
// explicit "construction from a C string that is a null pointer" invariant.
func NewStringPtr(s *string) Value {
	if s == nil {
		return Value{}
	}
	return NewString(*s)
}

func NewU16String(s []uint16) Value {
	return Value{kind: U16String, w16: append([]uint16(nil), s...)}
}
func NewU32String(s []rune) Value { return Value{kind: U32String, w32: append([]rune(nil), s...)} }
func NewWString(s []rune) Value   { return Value{kind: WString, w32: append([]rune(nil), s...)} }

// NewInterfaceID and NewExceptionID are typed constructors (spec.md §4.5.2):
// unlike an implicit construction from a plain uint64 (which always tags as
// Uint64), these preserve the declared id tag even though the storage is the
// same 64-bit word (spec.md §3.5: "interface_id and exception_id values
// that numerically equal a primitive integer width are stored as uint64 on
// implicit construction, but the variant-preserving typed construction API
// keeps their declared tag").
func NewInterfaceID(id uint64) Value { return Value{kind: InterfaceID, u: id} }
func NewExceptionID(id uint64) Value { return Value{kind: ExceptionID, u: id} }

// NewInterfaceHandle constructs an interface-handle any. Two handles compare
// equal/ordered by their underlying address (spec.md §4.5.4).
func NewInterfaceHandle(h Handle) Value { return Value{kind: InterfaceHandle, handle: h} }

// Take performs the move: it returns v's current value and resets the
// receiver to empty, the way spec.md §4.5.5 describes moving an any
// (ownership of any heap-backed payload transfers, the source becomes
// empty). Go's garbage collector makes an explicit "release owned storage"
// step unnecessary; what remains of "move" here is the source-becomes-empty
// postcondition callers rely on.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// Clone returns an independent copy; string/slice payloads are deep-copied
// so neither value observes the other's later mutation (spec.md §3.5:
// "string payloads carry independently owned storage").
func (v Value) Clone() Value {
	out := v
	if v.w16 != nil {
		out.w16 = append([]uint16(nil), v.w16...)
	}
	if v.w32 != nil {
		out.w32 = append([]rune(nil), v.w32...)
	}
	return out
}
