package token

// List is an ordered sequence of tokens with an internal cursor pointing at
// "current" — one of the elements, or past the end. It is grounded on
// original_source's tokenlist.cpp, which backs CTokenList with a
// std::list<CToken> plus an iterator; we use a slice plus an index, which
// gives the same semantics (cursor as an ordinal position) without pointer
// invalidation concerns.
type List struct {
	items []Token
	cur   int // index into items; == len(items) means "at end"
}

// NewList creates an empty token list with the cursor at the end.
func NewList() *List {
	return &List{}
}

// NewListFrom creates a list from an existing slice of tokens, cursor at
// the start.
func NewListFrom(items []Token) *List {
	return &List{items: append([]Token(nil), items...)}
}

// Clone returns an independent copy of l. The copy's cursor points at the
// same ordinal position as the original's, per spec.md §3.3 — this mirrors
// tokenlist.cpp's copy constructor, which walks both the source and
// destination iterators in lockstep counting steps to the cursor so that a
// clone made mid-scan can resume from the identical logical position.
func (l *List) Clone() *List {
	return &List{items: append([]Token(nil), l.items...), cur: l.cur}
}

// Len returns the number of tokens in the list.
func (l *List) Len() int { return len(l.items) }

// End reports whether the cursor is at or past the last element.
func (l *List) End() bool {
	return len(l.items) == 0 || l.cur >= len(l.items)
}

// Current returns the token nIndex positions ahead of the cursor (nIndex==0
// is the token the cursor currently sits on). Past the end of the list it
// returns the Empty sentinel, matching CTokenList::Current's "static dummy
// token" fallback.
func (l *List) Current(nIndex int) Token {
	i := l.cur + nIndex
	if i < 0 || i >= len(l.items) {
		return Empty
	}
	return l.items[i]
}

// LastValid returns the token at the cursor if valid, else the last token
// in the list, else Empty if the list is empty.
func (l *List) LastValid() Token {
	if len(l.items) == 0 {
		return Empty
	}
	if l.cur < len(l.items) {
		return l.items[l.cur]
	}
	return l.items[len(l.items)-1]
}

// Advance moves the cursor one token forward, unless already at the end.
func (l *List) Advance() {
	if !l.End() {
		l.cur++
	}
}

// PushBack appends a token to the end of the list. If the cursor was
// sitting at the (previously empty) end, it tracks the appended token's
// position, matching CTokenList::push_back's bookkeeping.
func (l *List) PushBack(t Token) {
	wasEmpty := len(l.items) == 0
	wasAtEnd := wasEmpty || l.cur >= len(l.items)
	l.items = append(l.items, t)
	if wasEmpty {
		l.cur = 0
	} else if wasAtEnd {
		l.cur = len(l.items) - 1
	}
}

// PushFront prepends a token to the list, adjusting the cursor so it keeps
// pointing at the same logical element (begin/end/elsewhere), matching
// CTokenList::push_front.
func (l *List) PushFront(t Token) {
	wasEmpty := len(l.items) == 0
	wasAtEnd := wasEmpty || l.cur >= len(l.items)
	wasAtBegin := !wasEmpty && l.cur == 0
	l.items = append([]Token{t}, l.items...)
	switch {
	case wasEmpty:
		l.cur = 0
	case wasAtEnd:
		l.cur = len(l.items)
	case wasAtBegin:
		l.cur = 0
	default:
		l.cur++
	}
}

// Insert performs equality-merge insertion at the cursor: if the token
// immediately before the cursor equals the new token, the cursor retreats
// to that earlier token instead of duplicating it. Otherwise t is spliced in
// before the cursor, which stays on the same token. This supports macro
// expansion idempotence (spec.md §3.3, tokenlist.cpp::insert).
func (l *List) Insert(t Token) {
	if len(l.items) == 0 {
		l.cur = 0
	}
	if l.cur > 0 && l.cur <= len(l.items) && l.items[l.cur-1].Equal(t) {
		l.cur--
		return
	}
	l.items = append(l.items, Token{})
	copy(l.items[l.cur+1:], l.items[l.cur:])
	l.items[l.cur] = t
	l.cur++
}

// Items returns the underlying token slice. Callers must not mutate it.
func (l *List) Items() []Token { return l.items }
