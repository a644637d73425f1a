package extract

import "testing"

func TestCompanyDetector(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		wantN int
	}{
		{"corp suffix", []string{"Acme Corp"}, 1},
		{"suffix with trailing period", []string{"Acme Widgets Inc."}, 1},
		{"gmbh suffix", []string{"Beispiel GmbH"}, 1},
		{"no suffix", []string{"Jane Smith"}, 0},
		{"suffix inside email line ignored", []string{"sales@acmecorp.com"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompanyDetector{}.Detect(tt.lines)
			if len(got) != tt.wantN {
				t.Errorf("got %d candidates, want %d: %+v", len(got), tt.wantN, got)
			}
		})
	}
}
