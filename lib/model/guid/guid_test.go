package guid

import (
	"testing"
)

func TestNew(t *testing.T) {
	seen := make(map[GUID]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if len(id) != 32 {
			t.Fatalf("New() = %q, want 32 characters", id)
		}
		if seen[id] {
			t.Fatalf("New() returned duplicate %q", id)
		}
		seen[id] = true
		if _, err := Parse(string(id)); err != nil {
			t.Fatalf("Parse(New()) returned error: %v", err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		desc    string
		input   string
		wantErr bool
	}{
		{
			desc:  "valid",
			input: "18a45dfc58a496d4ed438cb312469fc8",
		},
		{
			desc:    "too short",
			input:   "18a45dfc",
			wantErr: true,
		},
		{
			desc:    "dashed uuid",
			input:   "18a45dfc-58a4-96d4-ed43-8cb312469fc8",
			wantErr: true,
		},
		{
			desc:    "non-hex",
			input:   "zza45dfc58a496d4ed438cb312469fc8",
			wantErr: true,
		},
		{
			desc:    "empty",
			input:   "",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got, err := Parse(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %q, want error", test.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", test.input, err)
			}
			if got != GUID(test.input) {
				t.Fatalf("Parse(%q) = %q", test.input, got)
			}
		})
	}
}
