package extract

import (
	"reflect"
	"testing"
)

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "nil input",
			in:   nil,
			want: []string{},
		},
		{
			name: "whitespace collapsed and blanks dropped",
			in:   []string{"  Jane   A.  Smith ", "", "   "},
			want: []string{"Jane A. Smith"},
		},
		{
			name: "noise lines dropped",
			in:   []string{"-----", "***", "Acme Corp", "| | |"},
			want: []string{"Acme Corp"},
		},
		{
			name: "hyphen wrap rejoined without space",
			in:   []string{"Interna-", "tional Sales"},
			want: []string{"International Sales"},
		},
		{
			name: "lowercase continuation rejoined with space",
			in:   []string{"Senior Marketing", "manager"},
			want: []string{"Senior Marketing manager"},
		},
		{
			name: "uppercase start is a new line, not a wrap",
			in:   []string{"Jane Smith", "Marketing Director"},
			want: []string{"Jane Smith", "Marketing Director"},
		},
		{
			name: "email line never merged into its neighbor",
			in:   []string{"Contact", "jane@acme.com"},
			want: []string{"Contact", "jane@acme.com"},
		},
		{
			name: "digit-heavy line never absorbs a following website",
			in:   []string{"+1 (555) 012-3456", "www.acme.com"},
			want: []string{"+1 (555) 012-3456", "www.acme.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLines(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNoiseOnly(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"-----", true},
		{"| |", true},
		{"a", false},
		{"555", false},
	}
	for _, tt := range tests {
		if got := noiseOnly(tt.in); got != tt.want {
			t.Errorf("noiseOnly(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
