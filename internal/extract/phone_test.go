package extract

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 (555) 012-3456", "15550123456"},
		{"(555) 012-3456", "5550123456"},
		{"555.012.3456", "5550123456"},
		{"555 012 3456 ext. 42", "5550123456"},
		{"555-012-3456 x123", "5550123456"},
		{"012-3456", "0123456"},
		{"123456", ""},                 // too few digits
		{"1234567890123456", ""},       // too many digits
		{"15550123456", "15550123456"}, // already canonical
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"+1 (555) 012-3456", "555.012.3456", "0123456789 ext 9"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		if once == "" {
			t.Fatalf("NormalizePhone(%q) unexpectedly empty", in)
		}
		if twice := NormalizePhone(once); twice != once {
			t.Errorf("NormalizePhone(NormalizePhone(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestPhoneDetector(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantN    int
		wantConf float64
	}{
		{
			name:     "international prefix scores high",
			lines:    []string{"+1 (555) 012-3456"},
			wantN:    1,
			wantConf: 0.85,
		},
		{
			name:     "parenthesized area code scores high",
			lines:    []string{"(555) 012-3456"},
			wantN:    1,
			wantConf: 0.85,
		},
		{
			name:     "labeled line scores high",
			lines:    []string{"Tel: 555 012 3456"},
			wantN:    1,
			wantConf: 0.85,
		},
		{
			name:     "bare digit group scores lower",
			lines:    []string{"555 012 3456"},
			wantN:    1,
			wantConf: 0.70,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhoneDetector{}.Detect(tt.lines)
			if len(got) != tt.wantN {
				t.Fatalf("got %d candidates, want %d: %+v", len(got), tt.wantN, got)
			}
			if got[0].Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", got[0].Confidence, tt.wantConf)
			}
		})
	}
}

func TestPhoneDetectorSkipsEmailLines(t *testing.T) {
	got := PhoneDetector{}.Detect([]string{"jane2024@acme.com"})
	if len(got) != 0 {
		t.Errorf("digits inside an email line produced candidates: %+v", got)
	}
}
