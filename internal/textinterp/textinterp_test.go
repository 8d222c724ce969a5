package textinterp

import "testing"

func TestDecodeAsciiPlain(t *testing.T) {
	d, n, err := Decode(`Hello"`, `"`, ASCII, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Narrow != "Hello" || n != 5 {
		t.Fatalf("got %q, %d", d.Narrow, n)
	}
}

func TestDecodeEscapeSequence(t *testing.T) {
	d, n, err := Decode(`Hello\nYou there"`, `"`, ASCII, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Narrow != "Hello\nYou there" {
		t.Fatalf("got %q", d.Narrow)
	}
	if n != 16 {
		t.Fatalf("expected 16 bytes consumed, got %d", n)
	}
}

func TestDecodeRawStringNoEscapes(t *testing.T) {
	d, n, err := Decode(`this is a delimiter\check)abc"`, `)abc"`, UTF8, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Narrow != `this is a delimiter\check` {
		t.Fatalf("got %q", d.Narrow)
	}
	if n != 25 {
		t.Fatalf("expected 25 bytes, got %d", n)
	}
}

func TestDecodeOctalEscape(t *testing.T) {
	d, _, err := Decode(`\101"`, `"`, ASCII, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Narrow != "A" {
		t.Fatalf("got %q", d.Narrow)
	}
}

func TestDecodeOctalOutOfRange(t *testing.T) {
	_, _, err := Decode(`\777"`, `"`, ASCII, false)
	if err == nil {
		t.Fatal("expected an out-of-range octal escape error")
	}
}

func TestDecodeUnicodeEscapeRejectsSurrogate(t *testing.T) {
	_, _, err := Decode(`\uD800"`, `"`, UTF16, false)
	if err == nil {
		t.Fatal("expected a surrogate-range error")
	}
}

func TestDecodeAsciiOverflow(t *testing.T) {
	_, _, err := Decode(`ŀ"`, `"`, ASCII, false)
	if err == nil {
		t.Fatal("expected ASCII cannot represent U+0140")
	}
}

func TestDecodeUTF16SurrogatePair(t *testing.T) {
	d, _, err := Decode(`\U0001F600"`, `"`, UTF16, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Wide16) != 2 {
		t.Fatalf("expected a surrogate pair, got %d units", len(d.Wide16))
	}
	if d.Wide16[0] != 0xD83D || d.Wide16[1] != 0xDE00 {
		t.Fatalf("unexpected surrogate pair: %04X %04X", d.Wide16[0], d.Wide16[1])
	}
}

func TestRoundTripASCII(t *testing.T) {
	d, _, err := Decode(`Hello\tWorld"`, `"`, ASCII, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Encode(d, 0)
	if got != `Hello\tWorld` {
		t.Fatalf("got %q", got)
	}
}

func TestRoundTripUTF16SupplementaryPlane(t *testing.T) {
	d, _, err := Decode(`\U0001F600"`, `"`, UTF16, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Encode(d, 0)
	if got != `\U0001F600` {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeMaxLenStopsAtEscapeBoundary(t *testing.T) {
	d := Decoded{Encoding: ASCII, Narrow: "ab\ncd"}
	got := Encode(d, 3)
	if got != "ab" {
		t.Fatalf("expected truncation before the escape, got %q", got)
	}
}
