package domain

// MonthNumbers maps the twelve canonical month names to their calendar number.
// Performance records store the month by name, so every inbound month must be
// one of these keys.
var MonthNumbers = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// IsValidMonth reports whether name is one of the twelve canonical month names.
func IsValidMonth(name string) bool {
	_, ok := MonthNumbers[name]
	return ok
}
