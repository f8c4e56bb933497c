package util

import "strconv"

// FormatNumber renders a price, amount or reading with the shortest exact
// decimal form: 8 -> "8", 2.5 -> "2.5".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
