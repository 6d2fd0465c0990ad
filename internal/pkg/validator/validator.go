package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

const (
	DateLayout   = "2006-01-02"
	PeriodLayout = "2006-01"
)

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// ParseDateIn parses a YYYY-MM-DD date as midnight in loc.
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(DateLayout, dateStr, loc)
	return date, err == nil
}

// IsValidPeriod checks a payroll period in "YYYY-MM" format.
func IsValidPeriod(period string) bool {
	_, err := time.Parse(PeriodLayout, period)
	return err == nil
}
