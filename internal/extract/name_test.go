package extract

import "testing"

func TestNameDetector(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		wantN int
	}{
		{"plain two-token name", []string{"Jane Smith"}, 1},
		{"middle initial", []string{"Jane A. Smith"}, 1},
		{"single token rejected", []string{"Jane"}, 0},
		{"five tokens rejected", []string{"Jane Anne Beth Clara Smith"}, 0},
		{"digits rejected", []string{"Jane Smith 42"}, 0},
		{"title keyword rejected", []string{"Marketing Director"}, 0},
		{"company suffix rejected", []string{"Acme Corp"}, 0},
		{"beyond head window rejected", []string{"a b c", "a b c", "a b c", "a b c", "a b c", "a b c", "Jane Smith"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Candidate
			for _, c := range (NameDetector{}).Detect(tt.lines) {
				if c.Value == "Jane Smith" || c.Value == "Jane A. Smith" {
					got = append(got, c)
				}
			}
			if len(got) != tt.wantN {
				t.Errorf("got %d name candidates, want %d: %+v", len(got), tt.wantN, got)
			}
		})
	}
}

func TestNameConfidenceDropsWithDepth(t *testing.T) {
	top := (NameDetector{}).Detect([]string{"Jane Smith"})
	deep := (NameDetector{}).Detect([]string{"Alpha Beta", "Jane Smith"})
	if len(top) != 1 || len(deep) != 2 {
		t.Fatalf("unexpected candidate counts: top=%d deep=%d", len(top), len(deep))
	}
	if deep[1].Confidence >= top[0].Confidence {
		t.Errorf("line 1 confidence %v not below line 0 confidence %v", deep[1].Confidence, top[0].Confidence)
	}
}
