package logic

import (
	"context"
	"sync"

	"hrmslite/attendance/model"
)

// fakeService is an in-memory stand-in for the remote service.
type fakeService struct {
	mu        sync.Mutex
	employees []model.Employee
	records   []model.AttendanceRecord

	empErr    error
	attErr    error
	createErr error
	nextID    int

	// when set, ListAttendance waits on it before answering
	attGate chan struct{}

	created []CreateAttendanceRequest
}

func (f *fakeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.empErr != nil {
		return nil, f.empErr
	}
	out := make([]model.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.empErr != nil {
		return nil, f.empErr
	}
	f.nextID++
	employee := model.Employee{
		ID:           f.nextID,
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
	}
	f.employees = append(f.employees, employee)
	return &employee, nil
}

func (f *fakeService) DeleteEmployee(ctx context.Context, employeeID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.empErr != nil {
		return f.empErr
	}
	for i, employee := range f.employees {
		if employee.ID == employeeID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return &APIError{StatusCode: 404, Detail: "Employee not found"}
}

func (f *fakeService) ListAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	f.mu.Lock()
	gate := f.attGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attErr != nil {
		return nil, f.attErr
	}
	out := make([]model.AttendanceRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeService) ListEmployeeAttendance(ctx context.Context, employeeID int) ([]model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attErr != nil {
		return nil, f.attErr
	}
	var out []model.AttendanceRecord
	for _, record := range f.records {
		if record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeService) CreateAttendance(ctx context.Context, req *CreateAttendanceRequest) (*model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	record := model.AttendanceRecord{
		ID:         f.nextID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	}
	f.records = append(f.records, record)
	return &record, nil
}

func (f *fakeService) createCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}
