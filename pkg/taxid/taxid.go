// Package taxid validates Brazilian tax identifiers: CPF (11 digits, individuals)
// and CNPJ (14 digits, organizations).
package taxid

import "strings"

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = append([]int{6}, cnpjWeights1...)
)

// IsValid reports whether v passes either the CPF or the CNPJ checksum.
func IsValid(v string) bool {
	return IsCPF(v) || IsCNPJ(v)
}

// IsCPF strips non-digits and checks the two CPF check digits.
func IsCPF(v string) bool {
	d := digits(v)
	if len(d) != 11 || allSame(d) {
		return false
	}
	return cpfDigit(d[:9]) == d[9] && cpfDigit(d[:10]) == d[10]
}

// IsCNPJ strips non-digits and checks the two CNPJ check digits.
func IsCNPJ(v string) bool {
	d := digits(v)
	if len(d) != 14 || allSame(d) {
		return false
	}
	return cnpjDigit(d[:12], cnpjWeights1) == d[12] && cnpjDigit(d[:13], cnpjWeights2) == d[13]
}

// cpfDigit weights the prefix from len+1 down to 2.
func cpfDigit(prefix []int) int {
	sum := 0
	w := len(prefix) + 1
	for i, n := range prefix {
		sum += n * (w - i)
	}
	return ((sum * 10) % 11) % 10
}

func cnpjDigit(prefix, weights []int) int {
	sum := 0
	for i, n := range prefix {
		sum += n * weights[i]
	}
	dig := 11 - sum%11
	if dig >= 10 {
		return 0
	}
	return dig
}

// Normalize drops every non-digit, so formatted and bare ids compare equal.
func Normalize(v string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, v)
}

func digits(v string) []int {
	n := Normalize(v)
	out := make([]int, len(n))
	for i := 0; i < len(n); i++ {
		out[i] = int(n[i] - '0')
	}
	return out
}

func allSame(d []int) bool {
	for _, n := range d[1:] {
		if n != d[0] {
			return false
		}
	}
	return true
}
