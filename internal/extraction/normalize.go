package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxAmount is the plausibility ceiling for invoice amounts, in TL.
// Values outside (0, MaxAmount] are dropped at the candidate stage.
const MaxAmount = 100000

// Invoice numbers must be 6..16 digits after cleanup.
const (
	MinInvoiceNumberLen = 6
	MaxInvoiceNumberLen = 16
)

var (
	reDateToken = regexp.MustCompile(`\b(\d{1,2}[./-]\d{1,2}[./-]\d{4}|\d{4}-\d{1,2}-\d{1,2})\b`)
	reDMY       = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	reYMD       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDigits    = regexp.MustCompile(`\d`)
	reNonDigit  = regexp.MustCompile(`\D`)
)

// NormalizeDate converts DD.MM.YYYY, DD/MM/YYYY, DD-MM-YYYY and YYYY-MM-DD
// to YYYY-MM-DD. Returns "" when the token is not a plausible date
// (month > 12 or day > 31). Already-normalized input passes through.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)

	var day, month, year int
	if m := reYMD.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := reDMY.FindStringSubmatch(s); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return ""
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// CleanAmount strips currency markers and OCR noise from a numeric token and
// returns a canonical decimal string, or "" when the value is implausible.
// All separators but the last are treated as thousands grouping; the last
// one is the decimal point only when followed by exactly 1-2 digits.
func CleanAmount(s string) string {
	// drop letters and currency symbols glued to digits
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".,")
	if !reDigits.MatchString(cleaned) {
		return ""
	}

	lastSep := strings.LastIndexAny(cleaned, ".,")
	if lastSep >= 0 {
		tail := cleaned[lastSep+1:]
		head := cleaned[:lastSep]
		head = strings.ReplaceAll(head, ".", "")
		head = strings.ReplaceAll(head, ",", "")
		if len(tail) >= 1 && len(tail) <= 2 && !strings.ContainsAny(tail, ".,") {
			cleaned = head + "." + tail
		} else {
			cleaned = head + strings.ReplaceAll(strings.ReplaceAll(tail, ".", ""), ",", "")
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 || v > MaxAmount {
		return ""
	}
	return cleaned
}

// CleanInvoiceNumber reduces a matched token to digits and validates its
// length. Returns "" when the digit run is outside [6,16].
func CleanInvoiceNumber(s string) string {
	digits := reNonDigit.ReplaceAllString(s, "")
	if len(digits) < MinInvoiceNumberLen || len(digits) > MaxInvoiceNumberLen {
		return ""
	}
	return digits
}

// parseDecimal reads a Turkish-formatted numeric token for magnitude
// comparison. Unlike CleanAmount it accepts up to 3 decimal digits (meter
// readings commonly carry three) and applies no range ceiling.
func parseDecimal(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".,")
	if !reDigits.MatchString(cleaned) {
		return 0, false
	}
	lastSep := strings.LastIndexAny(cleaned, ".,")
	if lastSep >= 0 {
		tail := cleaned[lastSep+1:]
		head := strings.NewReplacer(".", "", ",", "").Replace(cleaned[:lastSep])
		if len(tail) >= 1 && len(tail) <= 3 && !strings.ContainsAny(tail, ".,") {
			cleaned = head + "." + tail
		} else {
			cleaned = head + strings.NewReplacer(".", "", ",", "").Replace(tail)
		}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
