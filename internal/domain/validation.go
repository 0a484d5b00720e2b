package domain

import (
	"regexp"
	"time"
)

// linkPattern regex permisiva heredada del validador original: scheme opcional,
// host.tld simple y path básico. Acepta strings malformados y rechaza URLs
// raras pero válidas; es un trade-off documentado, no endurecer sin avisar.
var linkPattern = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

// ValidLink verifica que el enlace de postulación tenga forma de URL.
func ValidLink(link string) bool {
	return linkPattern.MatchString(link)
}

// FutureDeadline exige que la fecha límite sea estrictamente posterior a now.
func FutureDeadline(deadline, now time.Time) bool {
	return deadline.After(now)
}
