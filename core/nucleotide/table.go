// core/nucleotide/table.go
package nucleotide

const (
	BaseA = 'A'
	BaseT = 'T'
	BaseC = 'C'
	BaseG = 'G'
)

// Order is the fixed scan order used wherever every base is visited.
const Order = "ATCG"

// PairToBase maps a 2-bit pair to its nucleotide.
var PairToBase = map[string]byte{
	"00": BaseA,
	"01": BaseT,
	"10": BaseC,
	"11": BaseG,
}

// BaseToPair is the inverse of PairToBase.
var BaseToPair = map[rune]string{
	BaseA: "00",
	BaseT: "01",
	BaseC: "10",
	BaseG: "11",
}

var complement = map[rune]rune{
	BaseA: BaseT, BaseT: BaseA,
	BaseC: BaseG, BaseG: BaseC,
}

// Complement returns the Watson-Crick partner of r; any other symbol is returned unchanged.
func Complement(r rune) rune {
	if c, ok := complement[r]; ok {
		return c
	}
	return r
}

// RevComp reverses seq and complements every symbol.
func RevComp(seq string) string {
	r := []rune(seq)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = Complement(r[j]), Complement(r[i])
	}
	if len(r)%2 == 1 {
		m := len(r) / 2
		r[m] = Complement(r[m])
	}
	return string(r)
}

// IsBase reports whether r is one of A, T, C, G.
func IsBase(r rune) bool {
	_, ok := BaseToPair[r]
	return ok
}

// IsDNA reports whether every symbol of seq is one of A, T, C, G.
func IsDNA(seq string) bool {
	for _, r := range seq {
		if !IsBase(r) {
			return false
		}
	}
	return true
}
