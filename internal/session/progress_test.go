package session

import "testing"

func TestProgress_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        int
	}{
		{0, 66, 0},
		{1, 66, 2}, // 1.515
		{33, 66, 50},
		{65, 66, 98}, // 98.48
		{66, 66, 100},
		{1, 8, 13}, // 12.5 rounds up
		{0, 0, 0},
	}
	for _, tt := range tests {
		p := Progress{Done: tt.done, Total: tt.total}
		if got := p.Percent(); got != tt.want {
			t.Errorf("Progress{%d, %d}.Percent() = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgress_Complete(t *testing.T) {
	if (Progress{Done: 65, Total: 66}).Complete() {
		t.Error("65/66 should not be complete")
	}
	if !(Progress{Done: 66, Total: 66}).Complete() {
		t.Error("66/66 should be complete")
	}
	if (Progress{}).Complete() {
		t.Error("empty progress should not be complete")
	}
}

func TestProgress_String(t *testing.T) {
	if got := (Progress{Done: 33, Total: 66}).String(); got != "33/66 (50%)" {
		t.Errorf("String() = %q", got)
	}
}
