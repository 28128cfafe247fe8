package validators

// FormatPhone renders Brazilian numbers: (xx) xxxxx-xxxx for mobiles and
// (xx) xxxx-xxxx for landlines. Anything else is returned untouched.
func FormatPhone(s string) string {
	d := onlyDigits(s)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	default:
		return s
	}
}

// IsValidPhone accepts 10 or 11 digit numbers (area code included).
func IsValidPhone(s string) bool {
	n := len(onlyDigits(s))
	return n == 10 || n == 11
}
