package constvariant

import (
	"math"

	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
)

// Variant is the evaluation engine's tagged union. It intentionally avoids
// interface{} for the same reason the teacher's jsonvalue.Value does:
// downstream arithmetic code stays type-safe and allocation-free for the
// scalar alternatives. Signed integral kinds live in i; Bool (0/1) and
// unsigned integral kinds live in u; floating and fixed kinds live in f;
// narrow strings live in s; the wide string kinds share a []rune payload
// (w), since Go has no distinct 16-bit-vs-32-bit "wchar" representation —
// U16String additionally keeps its UTF-16 code units in w16 so that lone
// surrogates survive a round trip.
type Variant struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	w    []rune
	w16  []uint16
}

func newErr(reason string) error {
	return &compileerr.Error{Kind: compileerr.ConstExpr, Reason: reason}
}

// NewBool constructs a Bool variant.
func NewBool(b bool) Variant {
	v := Variant{kind: Bool}
	if b {
		v.u = 1
	}
	return v
}

func NewInt8(n int8) Variant     { return Variant{kind: Int8, i: int64(n)} }
func NewInt16(n int16) Variant   { return Variant{kind: Int16, i: int64(n)} }
func NewInt32(n int32) Variant   { return Variant{kind: Int32, i: int64(n)} }
func NewInt64(n int64) Variant   { return Variant{kind: Int64, i: n} }
func NewUint8(n uint8) Variant   { return Variant{kind: Uint8, u: uint64(n)} }
func NewUint16(n uint16) Variant { return Variant{kind: Uint16, u: uint64(n)} }
func NewUint32(n uint32) Variant { return Variant{kind: Uint32, u: uint64(n)} }
func NewUint64(n uint64) Variant { return Variant{kind: Uint64, u: n} }

// NewLong and NewUnsignedLong canonicalize the platform `long`/`unsigned
// long` constructors to the 32-bit alternative, matching constvariant.cpp's
// `#ifdef _WIN32` long constructors (SPEC_FULL.md supplemented feature; on
// every platform this core targets, `long` is 32-bit at the IDL level).
func NewLong(n int32) Variant          { return NewInt32(n) }
func NewUnsignedLong(n uint32) Variant { return NewUint32(n) }

func NewFixed(n float64) Variant      { return Variant{kind: Fixed, f: n} }
func NewFloat32(n float32) Variant    { return Variant{kind: Float32, f: float64(n)} }
func NewFloat64(n float64) Variant    { return Variant{kind: Float64, f: n} }
func NewLongDouble(n float64) Variant { return Variant{kind: LongDouble, f: n} }

func NewString(s string) Variant { return Variant{kind: String, s: s} }

func NewU16String(s []uint16) Variant {
	v := Variant{kind: U16String, w16: append([]uint16(nil), s...)}
	for _, u := range s {
		v.w = append(v.w, rune(u))
	}
	return v
}
func NewU32String(s []rune) Variant { return Variant{kind: U32String, w: append([]rune(nil), s...)} }
func NewWString(s []rune) Variant   { return Variant{kind: WString, w: append([]rune(nil), s...)} }

// Kind reports the active alternative.
func (v Variant) Kind() Kind { return v.kind }

// Ranking returns the tag index, used for promotion (spec.md §4.4.3).
func (v Variant) Ranking() int { return int(v.kind) }

// IsArithmetic reports whether the active alternative is a scalar numeric
// or boolean type; every string kind is non-arithmetic (spec.md §4.4.2).
func (v Variant) IsArithmetic() bool { return !v.kind.isStringLike() }

// IsIntegral reports whether the active alternative is Bool or an integer
// kind (Fixed/Float32/Float64/LongDouble and strings are not integral).
func (v Variant) IsIntegral() bool {
	switch v.kind {
	case Bool, Uint8, Uint16, Uint32, Uint64, Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsFloatingPoint reports whether the active alternative is Fixed, Float32,
// Float64 or LongDouble.
func (v Variant) IsFloatingPoint() bool {
	switch v.kind {
	case Fixed, Float32, Float64, LongDouble:
		return true
	default:
		return false
	}
}

// IsBoolean reports whether the active alternative is Bool.
func (v Variant) IsBoolean() bool { return v.kind == Bool }

// IsSigned reports whether the active alternative is a signed integer kind.
func (v Variant) IsSigned() bool {
	switch v.kind {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether the active alternative is Bool or an unsigned
// integer kind (matching std::is_unsigned_v<bool> == true in the source).
func (v Variant) IsUnsigned() bool {
	switch v.kind {
	case Bool, Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// Convert replaces the stored value with the same value re-expressed at
// target rank, in place. Converting between an arithmetic rank and a string
// rank (or vice versa) is a compile error (spec.md §4.4.3).
func (v *Variant) Convert(target Kind) error {
	if target == v.kind {
		return nil
	}
	if v.kind.isStringLike() || target.isStringLike() {
		return newErr("cannot convert between an arithmetic type and a string type")
	}

	var f float64
	switch {
	case v.IsFloatingPoint():
		f = v.f
	case v.IsSigned():
		f = float64(v.i)
	default:
		f = float64(v.u)
	}

	switch target {
	case Bool:
		v.u = 0
		if f != 0 {
			v.u = 1
		}
		v.i = 0
	case Uint8, Uint16, Uint32, Uint64:
		v.u = uint64(int64(f))
		v.i = 0
	case Int8, Int16, Int32, Int64:
		v.i = int64(f)
		v.u = 0
	case Fixed, Float32, Float64, LongDouble:
		v.f = f
		v.i, v.u = 0, 0
	default:
		return newErr("internal error: incompatible data type conversion")
	}
	v.kind = target
	return nil
}

// Converted returns a copy of v converted to target, leaving v unmodified.
func (v Variant) Converted(target Kind) (Variant, error) {
	out := v
	if err := out.Convert(target); err != nil {
		return Variant{}, err
	}
	return out, nil
}

// asFloat returns the arithmetic value widened to float64, used internally
// by operator implementations after equalization.
func (v Variant) asFloat() float64 {
	switch {
	case v.IsFloatingPoint():
		return v.f
	case v.IsSigned():
		return float64(v.i)
	default:
		return float64(v.u)
	}
}

// asSignedInt returns the arithmetic value as int64 for integral kinds; for
// unsigned kinds this reinterprets the bit pattern, matching C's behavior
// for operators that only make sense on integral types.
func (v Variant) asSignedInt() int64 {
	if v.IsUnsigned() {
		return int64(v.u)
	}
	return v.i
}

func (v Variant) asUnsignedInt() uint64 {
	if v.IsUnsigned() {
		return v.u
	}
	return uint64(v.i)
}

// bitWidth returns the storage width in bits for integral/boolean kinds,
// used by Get's demotion range check (spec.md §4.4.6).
func bitWidth(k Kind) int {
	switch k {
	case Bool, Uint8, Int8:
		return 8
	case Uint16, Int16:
		return 16
	case Uint32, Int32:
		return 32
	case Uint64, Int64:
		return 64
	default:
		return 0
	}
}

// canonical NaN/Inf guard for float demotion (long double exceeding double's
// range, per the Open Question resolution in SPEC_FULL.md §5: LongDouble is
// kept as a distinct tag but stored at double precision, so only
// infinite/NaN values can be produced by arithmetic; both are rejected when
// demoting into Float64/Float32 the same way the source rejects range
// overflow).
func fitsFloat64(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
