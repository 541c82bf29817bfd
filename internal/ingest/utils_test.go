package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	cases := []struct {
		ext  string
		want bool
	}{
		{"pdf", true},
		{".pdf", true},
		{"PDF", true},
		{"jpg", true},
		{"jpeg", true},
		{"png", true},
		{"tif", true},
		{"tiff", true},
		{"docx", false},
		{"txt", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := AllowedExt(tc.ext); got != tc.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/tmp/scans/.DS_Store", true},
		{"/tmp/scans/.cache", true},
		{"/tmp/scans/fatura.pdf", false},
		{"/tmp/.hidden/visible.pdf", false},
		{"fatura.png", false},
	}
	for _, tc := range cases {
		if got := IsHidden(tc.path); got != tc.want {
			t.Errorf("IsHidden(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
