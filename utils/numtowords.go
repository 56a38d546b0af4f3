package utils

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells a non-negative integer in short-scale English.
// Returns "" for 0 so callers can join groups without stray spaces.
func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1_000:
		remainder := num % 100
		if remainder == 0 {
			return ones[num/100] + " Hundred"
		}
		return ones[num/100] + " Hundred " + NumberToWords(remainder)
	case num < 1_000_000:
		remainder := num % 1_000
		if remainder == 0 {
			return NumberToWords(num/1_000) + " Thousand"
		}
		return NumberToWords(num/1_000) + " Thousand " + NumberToWords(remainder)
	case num < 1_000_000_000:
		remainder := num % 1_000_000
		if remainder == 0 {
			return NumberToWords(num/1_000_000) + " Million"
		}
		return NumberToWords(num/1_000_000) + " Million " + NumberToWords(remainder)
	default:
		remainder := num % 1_000_000_000
		if remainder == 0 {
			return NumberToWords(num/1_000_000_000) + " Billion"
		}
		return NumberToWords(num/1_000_000_000) + " Billion " + NumberToWords(remainder)
	}
}

// AmountInWords writes a currency amount for a printed bill, e.g.
// "One Hundred Birr and Fifty Cents". The cents clause is omitted when
// the fractional part rounds to zero.
func AmountInWords(amount float64) string {
	prefix := ""
	if amount < 0 {
		prefix = "Minus "
		amount = -amount
	}

	birr := int(math.Floor(amount))
	cents := int(math.Round((amount - float64(birr)) * 100))
	if cents == 100 {
		birr++
		cents = 0
	}

	whole := NumberToWords(birr)
	if whole == "" {
		whole = "Zero"
	}

	if cents > 0 {
		return prefix + whole + " Birr and " + NumberToWords(cents) + " Cents"
	}
	return prefix + whole + " Birr"
}
