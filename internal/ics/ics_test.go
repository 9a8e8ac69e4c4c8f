package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/matsumurashin0125/event-app10/models"
)

func tokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load Asia/Tokyo: %v", err)
	}
	return loc
}

func TestGoogleCalendarURLDates(t *testing.T) {
	loc := tokyo(t)
	start := time.Date(2024, 6, 1, 18, 0, 0, 0, loc)
	end := time.Date(2024, 6, 1, 19, 0, 0, 0, loc)

	u := GoogleCalendarURL("中平井", "中平井", "中平井", start, end)

	if !strings.Contains(u, "dates=20240601T090000Z/20240601T100000Z") {
		t.Errorf("dates parameter wrong: %s", u)
	}
	if !strings.HasPrefix(u, "https://www.google.com/calendar/render?action=TEMPLATE") {
		t.Errorf("base URL wrong: %s", u)
	}
	if !strings.Contains(u, "text="+"%E4%B8%AD%E5%B9%B3%E4%BA%95") {
		t.Errorf("title not percent-encoded: %s", u)
	}
}

func TestBuildInviteLayout(t *testing.T) {
	cand := models.Candidate{ID: 7, Year: 2024, Month: 6, Day: 1, Gym: "中平井", Start: "18:00", End: "19:00"}
	body, err := BuildInvite(cand, "松村", tokyo(t))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(body, "\r\n")
	if lines[len(lines)-1] != "" {
		t.Error("body must end with CRLF")
	}
	if strings.Contains(strings.ReplaceAll(body, "\r\n", ""), "\n") {
		t.Error("found bare LF line ending")
	}

	want := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:REQUEST",
		"PRODID:-//EventApp//JP",
		"BEGIN:VEVENT",
		"UID:7-20240601T090000Z@event-app.local",
		"DTSTAMP:20240601T090000Z",
		"DTSTART:20240601T090000Z",
		"DTEND:20240601T100000Z",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestBuildInviteDeterministicUID(t *testing.T) {
	cand := models.Candidate{ID: 3, Year: 2025, Month: 1, Day: 10, Gym: "平井", Start: "20:00", End: "21:00"}
	a, err := BuildInvite(cand, "山根", tokyo(t))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildInvite(cand, "山根", tokyo(t))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("re-sending the same invite must produce identical bytes")
	}
}

// The blob must round-trip through an independent RFC 5545 parser: same UTC
// instants, reversible text escaping.
func TestBuildInviteRoundTrip(t *testing.T) {
	cand := models.Candidate{ID: 12, Year: 2024, Month: 11, Day: 3, Gym: "西小岩, 第2体育館; B面", Start: "18:30", End: "20:00"}
	body, err := BuildInvite(cand, "奥迫", tokyo(t))
	if err != nil {
		t.Fatal(err)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse generated ICS: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("got %d VEVENTs, want 1", len(events))
	}
	ve := events[0]

	start, err := ve.GetStartAt()
	if err != nil {
		t.Fatalf("DTSTART: %v", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		t.Fatalf("DTEND: %v", err)
	}
	wantStart, wantEnd, err := EventTimes(cand, tokyo(t))
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p == nil || p.Value == "" {
		t.Error("UID missing")
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p == nil ||
		p.Value != `西小岩\, 第2体育館\; B面` {
		t.Errorf("LOCATION not escaped as expected: %+v", p)
	}
}

func TestEscapeTextReversible(t *testing.T) {
	in := "a\\b,c;d\ne"
	esc := escapeText(in)
	if esc != `a\\b\,c\;d\ne` {
		t.Fatalf("escapeText = %q", esc)
	}
	// Unescape in the reverse order of escaping.
	out := esc
	out = strings.ReplaceAll(out, `\;`, ";")
	out = strings.ReplaceAll(out, `\,`, ",")
	out = strings.ReplaceAll(out, `\n`, "\n")
	out = strings.ReplaceAll(out, `\\`, "\\")
	if out != in {
		t.Errorf("escaping not reversible: %q -> %q -> %q", in, esc, out)
	}
}

func TestEventTimesRejectsBadTime(t *testing.T) {
	cand := models.Candidate{Year: 2024, Month: 6, Day: 1, Start: "notatime", End: "19:00"}
	if _, _, err := EventTimes(cand, tokyo(t)); err == nil {
		t.Error("expected error for malformed time of day")
	}
}
