package scanner

import "testing"

func assertToken(t *testing.T, got Token, want Token) {
	t.Helper()
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestScanActions(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"plain word", "add"},
		{"single letter", "a"},
		{"contains equals", "key=value"},
		{"leading equals", "=value"},
		{"contains dash", "re-move"},
		{"numeric", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := Scan(tt.arg)
			if !ok {
				t.Fatalf("Scan(%q) not ok", tt.arg)
			}
			assertToken(t, tok, Token{Kind: KindAction, Key: tt.arg})
		})
	}
}

func TestScanFlags(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want Token
	}{
		{"short", "-v", Token{Kind: KindFlag, Key: "-v"}},
		{"long", "--verbose", Token{Kind: KindFlag, Key: "--verbose"}},
		{"lone dash", "-", Token{Kind: KindFlag, Key: "-"}},
		{"with value", "-h=test", Token{Kind: KindFlag, Key: "-h", Value: "test", HasValue: true}},
		{"long with value", "--out=a.txt", Token{Kind: KindFlag, Key: "--out", Value: "a.txt", HasValue: true}},
		{"empty value", "-h=", Token{Kind: KindFlag, Key: "-h", Value: "", HasValue: true}},
		{"dash then separator", "-=", Token{Kind: KindFlag, Key: "-", Value: "", HasValue: true}},
		{"value keeps later separators", "-e=a=b=c", Token{Kind: KindFlag, Key: "-e", Value: "a=b=c", HasValue: true}},
		{"value is a flag", "--pass=--raw", Token{Kind: KindFlag, Key: "--pass", Value: "--raw", HasValue: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := Scan(tt.arg)
			if !ok {
				t.Fatalf("Scan(%q) not ok", tt.arg)
			}
			assertToken(t, tok, tt.want)
		})
	}
}

func TestScanEmptyToken(t *testing.T) {
	if _, ok := Scan(""); ok {
		t.Error("expected empty token to be rejected")
	}
}
