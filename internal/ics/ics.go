// event-app10/internal/ics/ics.go

// Package ics builds the calendar artifacts sent to members: the emailed
// RFC 5545 invite and the Google Calendar quick-add link. The invite text is
// assembled by hand because consumer clients (Apple, Google, Outlook) are
// sensitive to line endings, field order and the presence of DTSTAMP and
// METHOD:REQUEST.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/matsumurashin0125/event-app10/models"
)

// utcStamp is the compact Z-suffixed UTC layout calendar clients expect.
const utcStamp = "20060102T150405Z"

// EventTimes converts a candidate's local date and "HH:MM" times of day into
// timezone-aware start/end instants.
func EventTimes(c models.Candidate, loc *time.Location) (start, end time.Time, err error) {
	start, err = localTime(c, c.Start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = localTime(c, c.End, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func localTime(c models.Candidate, hhmm string, loc *time.Location) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", hhmm, err)
	}
	return time.Date(c.Year, time.Month(c.Month), c.Day, h, m, 0, 0, loc), nil
}

// escapeText applies the RFC 5545 TEXT escaping rule to a property value.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	return s
}

// BuildInvite renders the VCALENDAR blob for one candidate and recipient.
//
// The UID is derived from the candidate id and UTC start, not randomized:
// re-sending the same invite keeps the same UID so clients update the
// existing event instead of duplicating it.
func BuildInvite(c models.Candidate, recipientName string, loc *time.Location) (string, error) {
	start, end, err := EventTimes(c, loc)
	if err != nil {
		return "", err
	}

	startUTC := start.UTC().Format(utcStamp)
	endUTC := end.UTC().Format(utcStamp)
	uid := fmt.Sprintf("%d-%s@event-app.local", c.ID, startUTC)

	summary := fmt.Sprintf("%s (%s〜%s)", c.Gym, c.Start, c.End)
	description := fmt.Sprintf("%s さんの参加登録です", recipientName)

	var b strings.Builder
	for _, line := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:REQUEST",
		"PRODID:-//EventApp//JP",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + startUTC,
		"DTSTART:" + startUTC,
		"DTEND:" + endUTC,
		"SUMMARY:" + escapeText(summary),
		"DESCRIPTION:" + escapeText(description),
		"LOCATION:" + escapeText(c.Gym),
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	return b.String(), nil
}
