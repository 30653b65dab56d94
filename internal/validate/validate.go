// Package validate holds the pure input predicates shared by the menu layer
// and the inventory service. Re-prompt loops are a caller concern.
package validate

import (
	"regexp"
	"strconv"
	"time"
)

var (
	dateForm = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	digits   = regexp.MustCompile(`^[0-9]+$`)
)

// DateLayout is the canonical expiration date form.
const DateLayout = "2006-01-02"

// IsValidDate reports whether s is a real calendar date in strict YYYY-MM-DD
// form. time.Parse alone accepts "2024-2-3", so the shape is checked first.
func IsValidDate(s string) bool {
	if !dateForm.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidQuantity reports whether s consists only of decimal digits and has
// an integer value of at least one.
func IsValidQuantity(s string) bool {
	if !digits.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1
}
