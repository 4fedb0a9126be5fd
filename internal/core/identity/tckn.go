// Package identity validates and extracts Turkish national identifiers: the
// 11-digit personal ID (TCKN) and the 10-digit tax number (VKN). Validators
// are pure predicates over fixed-length digit strings.
package identity

// ValidTCKN reports whether s is a checksum-valid 11-digit personal ID.
// Requirements: exactly 11 ASCII digits, first digit non-zero,
// sum(d1..d10) mod 10 == d11, and ((d1+d3+d5+d7+d9)*7 - (d2+d4+d6+d8))
// mod 10 == d10 taken as the non-negative residue.
func ValidTCKN(s string) bool {
	digits, ok := digitsOf(s, 11)
	if !ok || digits[0] == 0 {
		return false
	}

	sum := 0
	for _, d := range digits[:10] {
		sum += d
	}
	if sum%10 != digits[10] {
		return false
	}

	odd := digits[0] + digits[2] + digits[4] + digits[6] + digits[8]
	even := digits[1] + digits[3] + digits[5] + digits[7]
	check := (odd*7 - even) % 10
	if check < 0 {
		check += 10
	}
	return check == digits[9]
}

func digitsOf(s string, length int) ([]int, bool) {
	if len(s) != length {
		return nil, false
	}
	digits := make([]int, length)
	for i := 0; i < length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}
