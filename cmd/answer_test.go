package cmd

import "testing"

func TestParseOptionLetter(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"A", 0, false},
		{"d", 3, false},
		{" b ", 1, false},
		{"2", 2, false},
		{"E", 0, true},
		{"4", 0, true},
		{"AB", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseOptionLetter(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseOptionLetter(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOptionLetter(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseOptionLetter(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
