package pkg

import (
	"math"
	"strconv"
)

// Round2 arredonda para duas casas decimais, metade para longe de zero.
func Round2(value float64) float64 {
	return math.Trunc(value*100+math.Copysign(0.5, value)) / 100
}

// FormatAmount formata um valor monetário como string de duas casas,
// ex.: 150 -> "150.00".
func FormatAmount(value float64) string {
	return strconv.FormatFloat(Round2(value), 'f', 2, 64)
}
