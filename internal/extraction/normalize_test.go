package extraction

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"05.03.2024", "2024-03-05"},
		{"05/03/2024", "2024-03-05"},
		{"05-03-2024", "2024-03-05"},
		{"2024-03-05", "2024-03-05"}, // idempotent
		{"1.1.2024", "2024-01-01"},
		{"13.45.2024", ""}, // month > 12
		{"32.01.2024", ""}, // day > 31
		{"05.03.24", ""},   // two-digit year not a date token
		{"", ""},
		{"not a date", ""},
	}
	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"420,75 TL", "420.75"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"420.75", "420.75"},
		{"420", "420"},
		{"abc", ""},
		{"250000", ""},    // exceeds ceiling
		{"0", ""},         // not positive
		{"100000", "100000"},
		{"100000,01", ""}, // just above ceiling
		{"484,023", ""},   // 3-digit tail is grouping -> 484023 > ceiling
		{"₺89,90", "89.90"},
		{"a1b2c3,4d5", "123.45"}, // OCR noise glued to digits
	}
	for _, tt := range tests {
		if got := CleanAmount(tt.in); got != tt.want {
			t.Errorf("CleanAmount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanInvoiceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"No: 123456789", "123456789"},
		{"123456", "123456"},
		{"12345", ""},              // too short
		{"12345678901234567", ""},  // 17 digits, too long
		{"1234567890123456", "1234567890123456"},
		{"FT-2024-001234", "2024001234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanInvoiceNumber(tt.in); got != tt.want {
			t.Errorf("CleanInvoiceNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"300,5", 300.5, true},
		{"484,023", 484.023, true}, // meter readings carry 3 decimals
		{"1.234,56", 1234.56, true},
		{"42", 42, true},
		{"kWh", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseDecimal(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseDecimal(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
