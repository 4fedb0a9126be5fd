package identity

// ValidVKN reports whether s is a checksum-valid 10-digit tax number per the
// published national algorithm. For each of the first nine digits (0-based
// index i): v = (d[i] + 9 - i) mod 10; the contribution is 9 when v == 0,
// otherwise (v * 2^(9-i)) mod 9 with a zero result corrected to 9. The check
// digit is (10 - sum mod 10) mod 10 and must equal d[9].
func ValidVKN(s string) bool {
	digits, ok := digitsOf(s, 10)
	if !ok {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		v := (digits[i] + 9 - i) % 10
		contribution := 9
		if v != 0 {
			contribution = (v * pow2mod9(9-i)) % 9
			if contribution == 0 {
				contribution = 9
			}
		}
		sum += contribution
	}
	return (10-sum%10)%10 == digits[9]
}

// pow2mod9 returns 2^n mod 9 for small n without overflow concerns. The
// caller multiplies it by a single digit, so the product stays well within
// int range and (v * 2^n) mod 9 == (v * (2^n mod 9)) mod 9.
func pow2mod9(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result = (result * 2) % 9
	}
	return result
}
