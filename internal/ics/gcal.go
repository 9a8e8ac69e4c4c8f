// event-app10/internal/ics/gcal.go

package ics

import (
	"net/url"
	"time"
)

const googleCalendarBase = "https://www.google.com/calendar/render?action=TEMPLATE"

// GoogleCalendarURL builds the prefilled "quick add" link for an event. Free
// text parameters are percent-encoded; the dates pair stays raw because
// Google expects the literal 20060102T150405Z/20060102T150405Z form.
func GoogleCalendarURL(title, details, location string, start, end time.Time) string {
	return googleCalendarBase +
		"&text=" + url.QueryEscape(title) +
		"&details=" + url.QueryEscape(details) +
		"&location=" + url.QueryEscape(location) +
		"&dates=" + start.UTC().Format(utcStamp) + "/" + end.UTC().Format(utcStamp)
}
