// event-app10/internal/schedule/format.go

package schedule

import (
	"fmt"
	"time"
)

// weekdays is indexed Monday=0 .. Sunday=6.
var weekdays = [7]string{"月", "火", "水", "木", "金", "土", "日"}

// ErrInvalidDate is returned for day/month combinations that do not exist in
// the Gregorian calendar.
type ErrInvalidDate struct {
	Year, Month, Day int
}

func (e ErrInvalidDate) Error() string {
	return fmt.Sprintf("invalid date: %d-%d-%d", e.Year, e.Month, e.Day)
}

// ValidateDate rejects dates like 2024-02-30. time.Date normalizes overflow,
// so a round trip that changes any component means the input was not a real
// calendar day.
func ValidateDate(year, month, day int) error {
	if month < 1 || month > 12 || day < 1 {
		return ErrInvalidDate{year, month, day}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return ErrInvalidDate{year, month, day}
	}
	return nil
}

// Weekday returns the kanji weekday label for a valid date.
func Weekday(year, month, day int) (string, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return "", err
	}
	wd := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	// time.Weekday counts Sunday=0; shift to Monday=0.
	return weekdays[(int(wd)+6)%7], nil
}

// FormatDate renders the "M/D（曜）" display string used everywhere an event
// date is shown.
func FormatDate(year, month, day int) (string, error) {
	youbi, err := Weekday(year, month, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d/%d（%s）", month, day, youbi), nil
}

// FormatTimeRange renders the "HH:MM〜HH:MM" display string.
func FormatTimeRange(start, end string) string {
	return start + "〜" + end
}
