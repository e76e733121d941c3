package termindex

import (
	"reflect"
	"sort"
	"testing"
)

func TestPrefixScanCaseInsensitive(t *testing.T) {
	idx := New([]string{"Auth", "Authenticated", "Authorization", "Token"})
	got := idx.PrefixScan("AUTH")
	sort.Strings(got)
	want := []string{"auth", "authenticated", "authorization"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	idx := New([]string{"timeout", "retry"})
	if !idx.Contains("TIMEOUT") {
		t.Fatal("expected case-insensitive contains to match")
	}
	if idx.Contains("nope") {
		t.Fatal("unexpected match")
	}
}

func TestInfixScan(t *testing.T) {
	idx := New([]string{"timeout", "retry", "deadline exceeded"})
	got := idx.InfixScan("time")
	if len(got) != 1 || got[0] != "timeout" {
		t.Fatalf("got %v", got)
	}
}

func TestLoadDeduplicates(t *testing.T) {
	idx := New([]string{"a", "A", "b"})
	if len(idx.terms) != 2 {
		t.Fatalf("terms = %v; want 2 deduplicated entries", idx.terms)
	}
}
