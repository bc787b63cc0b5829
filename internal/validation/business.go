package validation

import (
	"regexp"
	"strings"
)

var businessNumberRe = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)

// checksum weights for the first nine digits of a Korean business
// registration number
var businessChecksumWeights = [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}

// BusinessNumberFormatOK reports whether number looks like 000-00-00000.
func BusinessNumberFormatOK(number string) bool {
	return businessNumberRe.MatchString(number)
}

// BusinessNumberChecksumOK validates the registration number check digit.
func BusinessNumberChecksumOK(number string) bool {
	digits := strings.ReplaceAll(number, "-", "")
	if len(digits) != 10 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * businessChecksumWeights[i]
	}
	sum += int(digits[8]-'0') * 5 / 10
	check := (10 - sum%10) % 10

	return check == int(digits[9]-'0')
}

// ValidateBusinessNumber combines the format and checksum checks and returns
// a display message for the first failure.
func ValidateBusinessNumber(number string) (bool, string) {
	if !BusinessNumberFormatOK(number) {
		return false, "business number must be formatted as 000-00-00000"
	}
	if !BusinessNumberChecksumOK(number) {
		return false, "business number checksum is invalid"
	}
	return true, ""
}

// FormatBusinessNumber inserts dashes into a bare 10-digit number; anything
// else is returned unchanged.
func FormatBusinessNumber(number string) string {
	digits := regexp.MustCompile(`\D`).ReplaceAllString(number, "")
	if len(digits) != 10 {
		return number
	}
	return digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
}
