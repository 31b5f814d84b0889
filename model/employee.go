package model

// Attendance status values accepted by the service.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Employee holds one entry of the remote directory. The service owns the
// record; this client only mirrors it.
type Employee struct {
	ID           int    `json:"id"`
	EmployeeCode string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
}

// AttendanceRecord holds one attendance entry. ID is assigned by the
// service on creation and is zero before confirmation.
type AttendanceRecord struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// AggregateRow is one employee's total count of Present days.
type AggregateRow struct {
	Employee    Employee
	PresentDays int
}
