package logger

import "strings"

// RedactEmail masks the local part of an address for logging.
// "ursula@domain.com" becomes "ur***@domain.com".
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}
