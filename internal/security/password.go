// Package security scores password strength for registration.
package security

import (
	"strings"
	"unicode"

	"github.com/coolbreeze/storefront/internal/models"
)

// MaxScore is the highest strength score.
const MaxScore = 4

var labels = [...]string{"very weak", "weak", "fair", "strong", "very strong"}

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "123456": {}, "1234567": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "qwerty": {}, "qwerty123": {},
	"abc123": {}, "111111": {}, "000000": {}, "iloveyou": {}, "admin": {},
	"admin123": {}, "welcome": {}, "welcome1": {}, "letmein": {}, "monkey": {},
	"dragon": {}, "sunshine": {}, "football": {}, "princess": {}, "passw0rd": {},
	"p@ssw0rd": {}, "p@ssword": {}, "master": {}, "login": {}, "starwars": {},
	"baseball": {}, "trustno1": {}, "superman": {}, "qwertyuiop": {}, "asdfghjkl": {},
	"zaq12wsx": {}, "1q2w3e4r": {}, "changeme": {}, "secret": {}, "india123": {},
}

// Label returns the display label for a score, clamped to the valid range.
func Label(score int) string {
	if score < 0 {
		score = 0
	}

	if score > MaxScore {
		score = MaxScore
	}

	return labels[score]
}

// PasswordStrength scores a password from 0 to 4.
//
// A password on the common list or shorter than six characters scores 0.
// Otherwise it gains a point each for length >= 8, length >= 12, mixed case,
// a digit and a symbol, capped at 4. A single repeated character never scores
// above 1.
func PasswordStrength(password string) models.PasswordStrength {
	runes := []rune(password)

	if len(runes) < 6 {
		return models.PasswordStrength{
			Score:       0,
			Label:       Label(0),
			Suggestions: []string{"Use at least 8 characters"},
		}
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return models.PasswordStrength{
			Score:       0,
			Label:       Label(0),
			Suggestions: []string{"Avoid common passwords"},
		}
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool

	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
			hasSymbol = true
		}
	}

	score := 0

	var suggestions []string

	if len(runes) >= 8 {
		score++
	} else {
		suggestions = append(suggestions, "Use at least 8 characters")
	}

	if len(runes) >= 12 {
		score++
	} else {
		suggestions = append(suggestions, "Longer passwords (12+) are stronger")
	}

	if hasLower && hasUpper {
		score++
	} else {
		suggestions = append(suggestions, "Mix upper and lower case letters")
	}

	if hasDigit {
		score++
	} else {
		suggestions = append(suggestions, "Add a number")
	}

	if hasSymbol {
		score++
	} else {
		suggestions = append(suggestions, "Add a symbol")
	}

	if score > MaxScore {
		score = MaxScore
	}

	if repeatsOneChar(runes) && score > 1 {
		score = 1
		suggestions = append(suggestions, "Avoid repeating a single character")
	}

	if score == MaxScore {
		suggestions = nil
	}

	return models.PasswordStrength{Score: score, Label: Label(score), Suggestions: suggestions}
}

func repeatsOneChar(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}

	return true
}
