// event-app10/internal/schedule/summary.go

package schedule

import "github.com/matsumurashin0125/event-app10/models"

// Summary is the per-event attendance rollup shown on the confirm and
// register pages and in LINE messages.
type Summary struct {
	AttendCount   int      `json:"attend_count"`
	AbsentCount   int      `json:"absent_count"`
	AttendMembers []string `json:"attend_members"`
	AbsentMembers []string `json:"absent_members"`
}

// Summarize rolls up the attendance rows of one event. Rows keep storage
// order; pending and empty statuses are counted in neither list.
func Summarize(rows []models.Attendance) Summary {
	s := Summary{
		AttendMembers: []string{},
		AbsentMembers: []string{},
	}
	for _, a := range rows {
		switch a.Status {
		case StatusAttend:
			s.AttendMembers = append(s.AttendMembers, a.Name)
		case StatusAbsent:
			s.AbsentMembers = append(s.AbsentMembers, a.Name)
		}
	}
	s.AttendCount = len(s.AttendMembers)
	s.AbsentCount = len(s.AbsentMembers)
	return s
}
