package identity

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// Checksum-valid values generated with the documented algorithms.
var validTCKNs = []string{
	"10000000146",
	"62601815964",
	"18301661332",
	"28609139020",
	"70308246202",
	"45181909322",
	"88657975476",
	"42319487592",
}

var validVKNs = []string{
	"3982597914",
	"9074833786",
	"8762328607",
	"1290404793",
	"6669725105",
	"2734646862",
	"9589693506",
	"4925899136",
}

func TestValidTCKNAcceptsKnownValid(t *testing.T) {
	for _, tc := range validTCKNs {
		if !ValidTCKN(tc) {
			t.Errorf("ValidTCKN(%s) = false, want true", tc)
		}
	}
}

func TestValidTCKNRejectsMalformed(t *testing.T) {
	for _, tc := range []string{
		"",
		"1234567890",     // 10 digits
		"123456789012",   // 12 digits
		"01234567890",    // leading zero
		"1000000014a",    // non-digit
		"10000000146 ",   // trailing space
		"100000001４6",    // full-width digit
		"10000000147",    // wrong final check digit
		"10000000156",    // wrong tenth digit
	} {
		if ValidTCKN(tc) {
			t.Errorf("ValidTCKN(%q) = true, want false", tc)
		}
	}
}

func TestValidTCKNSingleDigitMutationRejected(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, tc := range validTCKNs {
		for trial := 0; trial < 30; trial++ {
			pos := rng.Intn(11)
			delta := 1 + rng.Intn(9)
			mutated := []byte(tc)
			mutated[pos] = byte('0' + (int(tc[pos]-'0')+delta)%10)
			m := string(mutated)
			if m[0] == '0' {
				continue // mutation left the valid domain for another reason
			}
			if ValidTCKN(m) {
				t.Errorf("mutation of %s at pos %d accepted: %s", tc, pos, m)
			}
		}
	}
}

func TestValidVKNAcceptsKnownValid(t *testing.T) {
	for _, vkn := range validVKNs {
		if !ValidVKN(vkn) {
			t.Errorf("ValidVKN(%s) = false, want true", vkn)
		}
	}
}

func TestValidVKNRejectsMalformed(t *testing.T) {
	for _, vkn := range []string{
		"",
		"123456789",    // 9 digits
		"12345678901",  // 11 digits
		"398259791x",   // non-digit
		"3982597915",   // wrong check digit
	} {
		if ValidVKN(vkn) {
			t.Errorf("ValidVKN(%q) = true, want false", vkn)
		}
	}
}

func TestValidVKNCheckDigitIsUnique(t *testing.T) {
	// For any 9-digit prefix exactly one check digit validates.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		var prefix strings.Builder
		for i := 0; i < 9; i++ {
			prefix.WriteString(strconv.Itoa(rng.Intn(10)))
		}
		accepted := 0
		for d := 0; d < 10; d++ {
			if ValidVKN(prefix.String() + strconv.Itoa(d)) {
				accepted++
			}
		}
		if accepted != 1 {
			t.Fatalf("prefix %s: %d check digits accepted, want 1", prefix.String(), accepted)
		}
	}
}
