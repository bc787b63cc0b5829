package validation

import "time"

const MinSignupAge = 14

// Age computes full years between birthDate (YYYY-MM-DD) and now.
// Returns -1 when birthDate does not parse.
func Age(birthDate string, now time.Time) int {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return -1
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// AgeOK reports whether the birth date parses and meets the minimum
// signup age.
func AgeOK(birthDate string, now time.Time) bool {
	age := Age(birthDate, now)
	return age >= MinSignupAge
}
