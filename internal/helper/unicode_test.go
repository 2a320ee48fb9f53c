package helper

import "testing"

func TestEncodeSurrogateBMP(t *testing.T) {
	lead, trail, n := EncodeSurrogate('A')
	if n != 1 || lead != 'A' || trail != 0 {
		t.Fatalf("got lead=%#x trail=%#x n=%d", lead, trail, n)
	}
}

func TestEncodeSurrogateAstral(t *testing.T) {
	// U+1F600 GRINNING FACE, a well-known astral-plane code point.
	cp := rune(0x1F600)
	lead, trail, n := EncodeSurrogate(cp)
	if n != 2 {
		t.Fatalf("want n=2, got %d", n)
	}
	if lead != 0xD83D || trail != 0xDE00 {
		t.Fatalf("got lead=%#x trail=%#x, want lead=0xD83D trail=0xDE00", lead, trail)
	}
	if back := DecodeSurrogate(lead, trail); back != cp {
		t.Fatalf("round trip failed: got %#x want %#x", back, cp)
	}
}

func TestDecodeSurrogateBMP(t *testing.T) {
	if got := DecodeSurrogate('Z', 0); got != 'Z' {
		t.Fatalf("got %#x want 'Z'", got)
	}
}
