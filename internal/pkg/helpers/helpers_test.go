package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	fallback := 15 * time.Minute

	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"valid duration", "2h", 2 * time.Hour},
		{"valid composite", "1h30m", 90 * time.Minute},
		{"empty string", "", fallback},
		{"garbage", "soon", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.in, fallback); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
	}{
		{"defaults", "", "", 1, 25},
		{"explicit values", "3", "50", 3, 50},
		{"size capped", "1", "1000", 1, 100},
		{"negative ignored", "-1", "-5", 1, 25},
		{"garbage ignored", "abc", "xyz", 1, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := ParsePagination(tt.page, tt.size)
			if page != tt.wantPage || size != tt.wantSize {
				t.Errorf("ParsePagination(%q, %q) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, size int
		want       uint64
	}{
		{1, 25, 0},
		{2, 25, 25},
		{4, 10, 30},
	}
	for _, tt := range tests {
		if got := Offset(tt.page, tt.size); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.page, tt.size, got, tt.want)
		}
	}
}
