package logic

import (
	"sort"

	"hrmslite/attendance/model"
)

// FilterByDate returns records most recently appended first, narrowed to
// the given calendar date. An empty date keeps every record.
func FilterByDate(records []model.AttendanceRecord, date string) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		if date != "" && records[i].Date != date {
			continue
		}
		out = append(out, records[i])
	}
	return out
}

// AggregatePresence counts Present records per employee across the whole
// attendance set. Every employee gets a row, including those with no
// history, ranked by count descending; ties keep directory order.
// Duplicate records for the same employee and date each count.
func AggregatePresence(employees []model.Employee, records []model.AttendanceRecord) []model.AggregateRow {
	counts := make(map[int]int, len(employees))
	for _, record := range records {
		if record.Status == model.StatusPresent {
			counts[record.EmployeeID]++
		}
	}

	rows := make([]model.AggregateRow, 0, len(employees))
	for _, employee := range employees {
		rows = append(rows, model.AggregateRow{
			Employee:    employee,
			PresentDays: counts[employee.ID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PresentDays > rows[j].PresentDays
	})

	return rows
}
