package anyvalue

// category groups kinds the way comparison policy treats them: arithmetic
// kinds interconvert freely, the four string kinds interconvert freely, but
// strings, handles and the two id kinds never compare across their own
// category boundary (spec.md §4.5.4).
type category int

const (
	catEmpty category = iota
	catArithmetic
	catString
	catHandle
	catInterfaceID
	catExceptionID
)

func categoryOf(v Value) category {
	switch {
	case v.kind == Empty:
		return catEmpty
	case v.kind.isArithmetic():
		return catArithmetic
	case v.kind.isString():
		return catString
	case v.kind == InterfaceHandle:
		return catHandle
	case v.kind == InterfaceID:
		return catInterfaceID
	default:
		return catExceptionID
	}
}

// Compare orders a against b within a shared comparison category, returning
// ok=false for any cross-category pairing (spec.md §4.5.4: "cross-category
// comparisons return false, never crash" — this covers the any-vs-
// interface-handle-vs-string open question in spec.md §9 too: a string
// against a handle lands in different categories, so every relational query
// built on Compare answers false without special-casing that pair).
//
// The prose in spec.md §4.5.4 also allows a string to compare equal to "a
// convertible numeric of equal textual form", but the worked example in
// spec.md §8 scenario 7 (`any(10.1234) == any("10.1234")` is false) overrides
// that reading: a string only ever compares against another string here.
func Compare(a, b Value) (result int, ok bool) {
	ca, cb := categoryOf(a), categoryOf(b)
	if ca != cb {
		return 0, false
	}
	switch ca {
	case catEmpty:
		return 0, true
	case catArithmetic:
		return compareFloat(a.asFloat(), b.asFloat()), true
	case catString:
		return compareRunes([]rune(stringPayload(a)), []rune(stringPayload(b))), true
	case catHandle:
		return compareUint64(uint64(a.handle), uint64(b.handle)), true
	default: // catInterfaceID, catExceptionID
		return compareUint64(a.u, b.u), true
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareRunes(a, b []rune) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return compareFloat(float64(a[i]), float64(b[i]))
		}
	}
	return compareUint64(uint64(len(a)), uint64(len(b)))
}

// Equal reports whether a and b satisfy spec.md §4.5.4's equality policy.
func Equal(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

// Less reports whether a sorts strictly before b; false for any
// non-comparable (cross-category) pairing.
func Less(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c < 0
}

// LessEq reports a <= b.
func LessEq(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c <= 0
}

// Greater reports a > b.
func Greater(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c > 0
}

// GreaterEq reports a >= b. This is the relation spec.md §9's open question
// calls out explicitly: comparing an interface handle against a string
// returns false here too, preserving the source's non-total-order behavior
// rather than forcing one.
func GreaterEq(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c >= 0
}
