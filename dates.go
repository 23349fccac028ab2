package main

import (
	"strings"
	"time"
)

const dateISOFormat = "2006-01-02"

// resolveDateToken expands the date shorthands used across every date
// field: "t" is today, "y" is yesterday, compared case-insensitively.
// Anything else is passed through verbatim; a literal date is trusted as
// already canonical and never parsed or validated here.
func resolveDateToken(token string, today time.Time) string {
	switch strings.ToLower(token) {
	case "t":
		return today.Format(dateISOFormat)
	case "y":
		return today.AddDate(0, 0, -1).Format(dateISOFormat)
	}
	return token
}
