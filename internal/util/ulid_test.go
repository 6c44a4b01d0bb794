package util

import "testing"

func TestNewULID(t *testing.T) {
	prev := NewULID()
	for i := 0; i < 100; i++ {
		id := NewULID()
		if !IsULID(id) {
			t.Fatalf("NewULID() = %q is not a valid ULID", id)
		}
		if id <= prev {
			t.Fatalf("NewULID() not increasing: %q after %q", id, prev)
		}
		prev = id
	}
}

func TestIsULID(t *testing.T) {
	tests := map[string]bool{
		"01HGZ8VNRYXS8QKNJV5GRWPWDQ": true,
		"01HGZ8VNRYXS8QKNJV5GRWPWD":  false,
		"not-a-ulid":                 false,
		"":                           false,
	}
	for in, want := range tests {
		if got := IsULID(in); got != want {
			t.Errorf("IsULID(%q) = %v, want %v", in, got, want)
		}
	}
}
