package query

import (
	"testing"
	"time"
)

func TestParseSplitsBareTermsAndFields(t *testing.T) {
	p, err := Parse(`timeout producer:web greed:6 level:error`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Terms) != 1 || p.Terms[0] != "timeout" {
		t.Fatalf("Terms = %v; want [timeout]", p.Terms)
	}
	if p.Greed != 6 {
		t.Fatalf("Greed = %d; want 6", p.Greed)
	}
	if len(p.Fields) != 2 {
		t.Fatalf("Fields = %v; want 2 entries", p.Fields)
	}
}

func TestParseWithinToken(t *testing.T) {
	p, err := Parse("error within:5m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Within != 5*time.Minute {
		t.Fatalf("Within = %v; want 5m", p.Within)
	}
	if len(p.Terms) != 1 || p.Terms[0] != "error" {
		t.Fatalf("Terms = %v; want [error]", p.Terms)
	}
}

func TestParseQuotedValue(t *testing.T) {
	p, err := Parse(`msg:"deadline exceeded"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Fields) != 1 || p.Fields[0].value != "deadline exceeded" {
		t.Fatalf("Fields = %v; want msg=\"deadline exceeded\"", p.Fields)
	}
}

func TestParseUnbalancedQuoteIsMalformed(t *testing.T) {
	if _, err := Parse(`msg:"unterminated`); err == nil {
		t.Fatal("expected malformed query error")
	}
}

func TestParseInvalidGreedIsMalformed(t *testing.T) {
	if _, err := Parse("greed:99 auth"); err == nil {
		t.Fatal("expected malformed query error for out-of-range greed")
	}
	if _, err := Parse("greed:nope auth"); err == nil {
		t.Fatal("expected malformed query error for non-numeric greed")
	}
}

func TestParseEmptyStringYieldsNoTokens(t *testing.T) {
	p, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Terms) != 0 || len(p.Fields) != 0 || p.Greed != -1 {
		t.Fatalf("Parse(\"\") = %+v; want zero value with Greed -1", p)
	}
}
