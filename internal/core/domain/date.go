package domain

import (
	"strconv"
	"strings"
)

const (
	userDateLen = len("DD/MM/YYYY")
	dateKeyLen  = len("YYYY-MM-DD")
)

// ParseUserDate converts DD/MM/YYYY into the sortable key YYYY-MM-DD.
// Only the day (1-31) and month (1-12) ranges are checked, so month length and
// leap years are not: 31/02/2024 is accepted.
func ParseUserDate(text string) (string, error) {
	if len(text) != userDateLen || text[2] != '/' || text[5] != '/' {
		return "", ErrInvalidDate
	}
	day, month, year := text[0:2], text[3:5], text[6:10]
	if !allDigits(day) || !allDigits(month) || !allDigits(year) {
		return "", ErrInvalidDate
	}
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", ErrInvalidDate
	}
	return year + "-" + month + "-" + day, nil
}

// FormatUserDate converts a YYYY-MM-DD key back into DD/MM/YYYY. An empty key
// yields an empty string.
func FormatUserDate(key string) string {
	if key == "" {
		return ""
	}
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 {
		return key
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatDisplayDate is FormatUserDate for read-only views, where a missing
// date is shown as "-".
func FormatDisplayDate(key string) string {
	if key == "" {
		return "-"
	}
	return FormatUserDate(key)
}

// MaskAsTyped reformats raw keyboard input into DD/MM/YYYY while the user is
// typing: non-digits are dropped, at most 8 digits are kept and separators are
// inserted after the 2nd and 4th digit once more digits follow.
func MaskAsTyped(raw string) string {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(raw) && len(digits) < 8; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}

	var b strings.Builder
	for i, c := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// IsDateKey reports whether key has the YYYY-MM-DD shape produced by
// ParseUserDate.
func IsDateKey(key string) bool {
	if len(key) != dateKeyLen || key[4] != '-' || key[7] != '-' {
		return false
	}
	_, err := ParseUserDate(FormatUserDate(key))
	return err == nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
