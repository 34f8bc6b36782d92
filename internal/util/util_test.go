package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "upload limit", bytes: 50 * 1024 * 1024, expected: "50.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestMegabytesToBytes(t *testing.T) {
	t.Parallel()

	if got := MegabytesToBytes(50); got != 52428800 {
		t.Fatalf("MegabytesToBytes(50) = %d, want 52428800", got)
	}
}

func TestHasAllowedExtension(t *testing.T) {
	t.Parallel()

	allowed := []string{".jpg", ".png", ".pdf", ".sketch"}

	tests := []struct {
		name     string
		file     string
		expected bool
	}{
		{name: "allowed", file: "mockup.png", expected: true},
		{name: "upper case", file: "MOCKUP.PNG", expected: true},
		{name: "path prefix", file: "designs/v2/home.sketch", expected: true},
		{name: "not allowed", file: "payload.exe", expected: false},
		{name: "no extension", file: "README", expected: false},
		{name: "double extension uses last", file: "home.png.exe", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasAllowedExtension(tt.file, allowed); got != tt.expected {
				t.Fatalf("HasAllowedExtension(%q) = %v, want %v", tt.file, got, tt.expected)
			}
		})
	}
}
