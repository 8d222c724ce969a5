package constvariant

import "math"

// Get requests v's value re-expressed as the alternative identified by
// target, performing the demotion range check constvariant.cpp's Get<T>()
// applies (spec.md §4.4.6). Converting between an arithmetic rank and a
// string rank is always rejected, as is floating-to-integral. Demoting to
// a smaller integral rank checks the stored value against the TARGET bit
// width's *signed* range regardless of whether the target itself is signed
// or unsigned: an int16 holding -20 fits within [-128, 127] and
// Get<uint8_t>() succeeds, producing 0xec, the value's two's-complement
// pattern truncated to 8 bits — but a uint8 holding 255 does not fit that
// same [-128, 127] range and Get<int8_t>() fails. Bool is exempt from the
// range check (any value converts via a zero/nonzero test). Floating
// demotion instead checks representable magnitude in the target float
// kind.
func (v Variant) Get(target Kind) (Variant, error) {
	if target == v.kind {
		return v, nil
	}
	if v.kind.isStringLike() || target.isStringLike() {
		return Variant{}, newErr("cannot convert between an arithmetic type and a string type")
	}

	switch target {
	case Bool:
		return NewBool(v.asFloat() != 0), nil

	case Uint8, Uint16, Uint32, Uint64, Int8, Int16, Int32, Int64:
		if v.IsFloatingPoint() {
			return Variant{}, newErr("cannot demote a floating-point value to an integral type")
		}
		bits := bitWidth(target)
		if !fitsTargetSignedRange(v, bits) {
			return Variant{}, newErr("value out of range for target type " + target.String())
		}
		return demoteIntegral(v, target, bits), nil

	case Fixed, Float32, Float64, LongDouble:
		if v.IsFloatingPoint() && !fitsFloatTarget(v, target) {
			return Variant{}, newErr("value out of range for target type " + target.String())
		}
	}

	out := v
	if err := out.Convert(target); err != nil {
		return Variant{}, err
	}
	return out, nil
}

// fitsTargetSignedRange reports whether v's mathematical value (always
// non-negative for an unsigned source) fits within the signed range of an
// integer of the given bit width.
func fitsTargetSignedRange(v Variant, bits int) bool {
	var lo, hi int64 = math.MinInt64, math.MaxInt64
	if bits < 64 {
		lo = int64(-1) << (bits - 1)
		hi = -lo - 1
	}
	if v.IsUnsigned() {
		return v.u <= uint64(hi)
	}
	return v.i >= lo && v.i <= hi
}

// demoteIntegral truncates v's two's-complement bit pattern to bits and
// reinterprets it per target's own signedness.
func demoteIntegral(v Variant, target Kind, bits int) Variant {
	var raw int64
	if v.IsUnsigned() {
		raw = int64(v.u)
	} else {
		raw = v.i
	}
	var truncated int64
	switch bits {
	case 8:
		truncated = int64(int8(raw))
	case 16:
		truncated = int64(int16(raw))
	case 32:
		truncated = int64(int32(raw))
	default:
		truncated = raw
	}

	out := Variant{kind: target}
	if target == Bool || target == Uint8 || target == Uint16 || target == Uint32 || target == Uint64 {
		out.u = uint64(truncated) & bitWidthMask(bits)
	} else {
		out.i = truncated
	}
	return out
}

// fitsFloatTarget reports whether v (already known floating-point) is
// representable in target's floating kind. LongDouble is stored at double
// precision (SPEC_FULL.md Open Question resolution), so only non-finite
// values can be detected as exceeding double's own range; Float32 gets a
// genuine magnitude check against its narrower range.
func fitsFloatTarget(v Variant, target Kind) bool {
	if target == Float32 {
		f := v.f
		abs := math.Abs(f)
		if abs > math.MaxFloat32 {
			return false
		}
		if f != 0 && abs < math.SmallestNonzeroFloat32 {
			return false
		}
		return true
	}
	if v.kind == LongDouble {
		return fitsFloat64(v.f)
	}
	return true
}

// GetBool returns v's value as a bool, rejecting non-boolean kinds through
// the same demotion machinery as Get.
func (v Variant) GetBool() (bool, error) {
	out, err := v.Get(Bool)
	if err != nil {
		return false, err
	}
	return out.u != 0, nil
}

// GetInt64 returns v's value widened/demoted to int64.
func (v Variant) GetInt64() (int64, error) {
	out, err := v.Get(Int64)
	if err != nil {
		return 0, err
	}
	return out.i, nil
}

// GetUint64 returns v's value widened/demoted to uint64.
func (v Variant) GetUint64() (uint64, error) {
	out, err := v.Get(Uint64)
	if err != nil {
		return 0, err
	}
	return out.u, nil
}

// GetFloat64 returns v's value widened to float64.
func (v Variant) GetFloat64() (float64, error) {
	out, err := v.Get(Float64)
	if err != nil {
		return 0, err
	}
	return out.f, nil
}

// GetString returns v's narrow string payload; any other kind is a compile
// error (strings and arithmetic types never interconvert implicitly).
func (v Variant) GetString() (string, error) {
	if v.kind != String {
		return "", newErr("value is not a string")
	}
	return v.s, nil
}

// GetU16String returns v's UTF-16 code-unit payload.
func (v Variant) GetU16String() ([]uint16, error) {
	if v.kind != U16String {
		return nil, newErr("value is not a u16string")
	}
	return append([]uint16(nil), v.w16...), nil
}

// GetU32String returns v's UTF-32 payload.
func (v Variant) GetU32String() ([]rune, error) {
	if v.kind != U32String {
		return nil, newErr("value is not a u32string")
	}
	return append([]rune(nil), v.w...), nil
}

// GetWString returns v's wide-string payload.
func (v Variant) GetWString() ([]rune, error) {
	if v.kind != WString {
		return nil, newErr("value is not a wstring")
	}
	return append([]rune(nil), v.w...), nil
}
