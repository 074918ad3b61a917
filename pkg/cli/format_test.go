package cli

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1 << 20, "1.00 MB"},
		{1 << 30, "1.00 GB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(250 * time.Millisecond); got != "250ms" {
		t.Errorf("FormatDuration(250ms) = %q", got)
	}
	if got := FormatDuration(1500 * time.Millisecond); got != "1.5s" {
		t.Errorf("FormatDuration(1.5s) = %q", got)
	}
	if got := FormatDuration(90 * time.Second); got != "1m30.0s" {
		t.Errorf("FormatDuration(90s) = %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(2048, time.Second); got != "2.00 KB/s" {
		t.Errorf("FormatRate(2048, 1s) = %q", got)
	}
	if got := FormatRate(100, 0); got != "-" {
		t.Errorf("FormatRate(100, 0) = %q", got)
	}
}
