package client

import "time"

const AdultAge = 18

// Age counts full years between birth and today, subtracting one when
// this year's birthday (month/day) has not been reached yet.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func IsMinor(age int) bool {
	return age < AdultAge
}
