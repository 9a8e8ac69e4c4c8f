// event-app10/internal/handlers/views.go

package handlers

import (
	"fmt"
	"sort"

	"github.com/matsumurashin0125/event-app10/internal/schedule"
	"github.com/matsumurashin0125/event-app10/models"
)

// candidateView is a candidate prepared for display: formatted date, its
// confirmed event id (0 when unconfirmed) and the attendance rollup.
type candidateView struct {
	ID          uint
	Gym         string
	Start       string
	End         string
	MD          string
	Times       string
	Month       int
	ConfirmedID uint
	Summary     schedule.Summary
}

// monthGroup holds one month's candidates for the tabbed listings.
type monthGroup struct {
	Month int
	Items []candidateView
}

func (h *Handler) candidateView(c models.Candidate) candidateView {
	md, err := schedule.FormatDate(c.Year, c.Month, c.Day)
	if err != nil {
		// Rows predating date validation may be unformattable; show the
		// raw numbers instead of failing the page.
		md = fmt.Sprintf("%d/%d", c.Month, c.Day)
	}
	return candidateView{
		ID:    c.ID,
		Gym:   c.Gym,
		Start: c.Start,
		End:   c.End,
		MD:    md,
		Times: schedule.FormatTimeRange(c.Start, c.End),
		Month: c.Month,
	}
}

// groupByMonth buckets views by calendar month, months ascending, keeping
// the incoming order inside each month.
func groupByMonth(views []candidateView) []monthGroup {
	byMonth := make(map[int][]candidateView)
	for _, v := range views {
		byMonth[v.Month] = append(byMonth[v.Month], v)
	}
	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	groups := make([]monthGroup, 0, len(months))
	for _, m := range months {
		groups = append(groups, monthGroup{Month: m, Items: byMonth[m]})
	}
	return groups
}

// summaryForEvent rolls up the attendance rows of one confirmed event.
func (h *Handler) summaryForEvent(eventID uint) schedule.Summary {
	var rows []models.Attendance
	h.DB.Where("event_id = ?", eventID).Find(&rows)
	return schedule.Summarize(rows)
}

// orderedCandidates returns all candidates in (year, month, day, start)
// ascending order.
func (h *Handler) orderedCandidates() ([]models.Candidate, error) {
	var cands []models.Candidate
	err := h.DB.Order("year asc, month asc, day asc, start asc").Find(&cands).Error
	return cands, err
}
