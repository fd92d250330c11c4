package tasks

import "testing"

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Status
	}{
		{0, StatusNotStarted},
		{1, StatusInProgress},
		{2, StatusDone},
		{3, StatusNotStarted},
		{-1, StatusNotStarted},
	}

	for _, tt := range tests {
		if got := StatusFromCode(tt.code); got != tt.want {
			t.Errorf("StatusFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestPriorityFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Priority
	}{
		{0, PriorityLow},
		{1, PriorityMedium},
		{2, PriorityHigh},
		{7, PriorityLow},
		{-4, PriorityLow},
	}

	for _, tt := range tests {
		if got := PriorityFromCode(tt.code); got != tt.want {
			t.Errorf("PriorityFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   Status
		wantOK bool
	}{
		{"done", StatusDone, true},
		{"In_Progress", StatusInProgress, true},
		{" NotStarted ", StatusNotStarted, true},
		{"finished", StatusNotStarted, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseStatus(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	if p, ok := ParsePriority("HIGH"); !ok || p != PriorityHigh {
		t.Errorf("ParsePriority(HIGH) = (%v, %v)", p, ok)
	}
	if _, ok := ParsePriority("urgent"); ok {
		t.Error("ParsePriority(urgent) accepted an unknown name")
	}
}
