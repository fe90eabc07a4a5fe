package invoice

import (
	"math"
	"strings"
)

var (
	ones = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Indian place values, largest first.
var scales = []struct {
	value int64
	name  string
}{
	{10_000_000, "Crore"},
	{100_000, "Lakh"},
	{1_000, "Thousand"},
	{100, "Hundred"},
}

// AmountInWords spells a rupee amount the way it is written on Indian
// invoices: "Rupees One Lakh Twenty Thousand and Fifty Paise Only".
func AmountInWords(amount float64) string {
	if amount < 0 {
		amount = -amount
	}

	paiseTotal := int64(math.Round(amount * 100))
	rupees, paise := paiseTotal/100, paiseTotal%100

	var b strings.Builder

	b.WriteString("Rupees ")

	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(spell(rupees))
	}

	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(spell(paise))
		b.WriteString(" Paise")
	}

	b.WriteString(" Only")

	return b.String()
}

func spell(n int64) string {
	var words []string

	for _, s := range scales {
		if n >= s.value {
			words = append(words, spell(n/s.value), s.name)
			n %= s.value
		}
	}

	switch {
	case n == 0:
	case n < 20:
		words = append(words, ones[n])
	default:
		w := tens[n/10]
		if n%10 != 0 {
			w += " " + ones[n%10]
		}

		words = append(words, w)
	}

	return strings.Join(words, " ")
}
