package codepos

import "testing"

func TestAdvance_Newlines(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantLine   int
		wantColumn int
	}{
		{"LF alone", "a\nb", 2, 1},
		{"CRLF counts once", "a\r\nb", 2, 1},
		{"no newline", "abc", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.src, "")
			p = p.Advance(len(tt.src) - 1)
			if p.Line() != tt.wantLine || p.Column() != tt.wantColumn {
				t.Errorf("Line/Column = %d/%d, want %d/%d", p.Line(), p.Column(), tt.wantLine, tt.wantColumn)
			}
		})
	}
}

func TestAdvance_TabAlignment(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantColumn int
	}{
		{"tab from column 1", "\t", 5},
		{"tab from column 2", "a\t", 5},
		{"tab from column 5", "abcd\t", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.src, "")
			p = p.Advance(len(tt.src))
			if p.Column() != tt.wantColumn {
				t.Errorf("Column = %d, want %d", p.Column(), tt.wantColumn)
			}
		})
	}
}

func TestAdvance_LineContinuation(t *testing.T) {
	// A backslash-newline in Normal mode joins the physical lines without
	// incrementing the line counter.
	src := "a\\\nb"
	p := New(src, "")
	p = p.Advance(len(src) - 1) // stop just before 'b'
	if p.Line() != 1 {
		t.Errorf("Normal mode: Line = %d, want 1 (continuation must not advance line)", p.Line())
	}

	pp := New(src, "").SetMode(Preprocessor)
	pp = pp.Advance(len(src) - 1)
	if pp.Line() != 2 {
		t.Errorf("Preprocessor mode: Line = %d, want 2 (continuation must advance line)", pp.Line())
	}
}

func TestAdvance_NeverPastEnd(t *testing.T) {
	p := New("ab", "")
	p = p.Advance(10)
	if p.Offset() != 2 {
		t.Errorf("Offset = %d, want 2 (clamped at buffer length)", p.Offset())
	}
	if !p.HasEOF() {
		t.Errorf("HasEOF() = false at end of buffer")
	}
	if p.Current() != 0 {
		t.Errorf("Current() = %q at EOF, want 0", p.Current())
	}
}

func TestPeek(t *testing.T) {
	p := New("abc", "")
	if p.Peek(0) != 'a' || p.Peek(1) != 'b' || p.Peek(2) != 'c' {
		t.Fatalf("unexpected Peek values")
	}
	if p.Peek(3) != 0 || p.Peek(-1) != 0 {
		t.Errorf("Peek out of range must return 0")
	}
}

func TestSkipBOM(t *testing.T) {
	p := New("\xEF\xBB\xBFhello", "")
	p = SkipBOM(p)
	if p.Current() != 'h' {
		t.Errorf("SkipBOM did not strip the UTF-8 BOM")
	}

	// Only stripped at offset 0.
	q := New("x\xEF\xBB\xBFhello", "")
	q = q.Advance(1)
	q = SkipBOM(q)
	if q.Current() != 0xEF {
		t.Errorf("SkipBOM must be a no-op once the cursor has advanced")
	}
}

func TestPath(t *testing.T) {
	p := New("abc", "foo.idl")
	if p.Path() != "foo.idl" {
		t.Errorf("Path() = %q, want %q", p.Path(), "foo.idl")
	}
}

func TestClonesAreIndependent(t *testing.T) {
	p := New("abcd", "")
	clone := p.Advance(2)
	if p.Offset() != 0 {
		t.Errorf("original Position mutated by Advance on its clone")
	}
	if clone.Offset() != 2 {
		t.Errorf("clone did not advance")
	}
}
