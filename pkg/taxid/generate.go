package taxid

import (
	"math/rand"
	"strings"
)

// GenerateCPF returns a checksum-valid 11-digit CPF built from r.
func GenerateCPF(r *rand.Rand) string {
	d := randomBase(r, 9)
	d = append(d, cpfDigit(d))
	d = append(d, cpfDigit(d))
	return join(d)
}

// GenerateCNPJ returns a checksum-valid 14-digit CNPJ. The branch segment is
// always 0001 (head office), like real-world generators do.
func GenerateCNPJ(r *rand.Rand) string {
	d := randomBase(r, 8)
	d = append(d, 0, 0, 0, 1)
	d = append(d, cnpjDigit(d, cnpjWeights1))
	d = append(d, cnpjDigit(d, cnpjWeights2))
	return join(d)
}

func randomBase(r *rand.Rand, n int) []int {
	for {
		d := make([]int, n, n+6)
		for i := range d {
			d[i] = r.Intn(10)
		}
		if !allSame(d) {
			return d
		}
	}
}

func join(d []int) string {
	var b strings.Builder
	b.Grow(len(d))
	for _, n := range d {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}
