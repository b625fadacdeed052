package cpu

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"below_normal", PriorityBelow},
		{"BELOW", PriorityBelow},
		{"1", PriorityBelow},
		{"normal", PriorityNormal},
		{" 2 ", PriorityNormal},
		{"above_normal", PriorityAbove},
		{"above", PriorityAbove},
		{"3", PriorityAbove},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("rejects unknown tokens", func(t *testing.T) {
		for _, in := range []string{"", "4", "realtime", "0"} {
			if _, err := ParsePriority(in); err == nil {
				t.Errorf("expected error for %q", in)
			}
		}
	})
}

func TestPriority_String(t *testing.T) {
	for _, p := range []Priority{PriorityBelow, PriorityNormal, PriorityAbove} {
		back, err := ParsePriority(p.String())
		if err != nil || back != p {
			t.Errorf("%s did not parse back: %v %v", p, back, err)
		}
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if Priority(7).Valid() {
		t.Error("priority 7 should be invalid")
	}
	if Priority(7).String() != "priority(7)" {
		t.Errorf("unexpected name %q", Priority(7).String())
	}
}
