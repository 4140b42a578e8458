package books

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Short", "Dune", 30, "Dune"},
		{"ExactFit", "abcdefghij", 10, "abcdefghij"},
		{"Cut", "abcdefghijk", 10, "abcdefg..."},
		{"MultibyteFits", "Löwenzähne", 10, "Löwenzähne"},
		{"MultibyteCut", "Überraschungsmomente", 10, "Überras..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := truncate(tc.in, tc.max)
			if result != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, result)
			}
			if !utf8.ValidString(result) {
				t.Errorf("Expected valid UTF-8, got %q", result)
			}
		})
	}
}
