package service

import "regexp"

// Field format patterns shared across services. The email pattern
// matches the rest of the platform's account tooling (2-3 character TLD
// segments, dot/hyphen-delimited parts), which is stricter than a
// generic RFC 5322 check.
var (
	emailPattern     = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	timeOfDayPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
	timezonePattern  = regexp.MustCompile(`^[A-Za-z_/]+$`)
)

// minPasswordLength is the minimum accepted raw password length
const minPasswordLength = 6

// isValidEmail reports whether s matches the platform email format
func isValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// isValidTimeOfDay reports whether s is an HH:MM value
func isValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// isValidTimezone reports whether s looks like a POSIX zone name
func isValidTimezone(s string) bool {
	return timezonePattern.MatchString(s)
}
