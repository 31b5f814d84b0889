package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hrmslite/attendance/model"
)

// AttendanceService is the remote directory/attendance service this
// client consumes.
type AttendanceService interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int) error
	ListAttendance(ctx context.Context) ([]model.AttendanceRecord, error)
	ListEmployeeAttendance(ctx context.Context, employeeID int) ([]model.AttendanceRecord, error)
	CreateAttendance(ctx context.Context, req *CreateAttendanceRequest) (*model.AttendanceRecord, error)
}

// CreateAttendanceRequest is the payload of the attendance creation
// endpoint.
type CreateAttendanceRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// CreateEmployeeRequest is the payload of the directory creation
// endpoint.
type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
}

// APIError is a non-2xx response from the service. The human-readable
// reason, when the service provides one, sits in the detail field.
type APIError struct {
	StatusCode int
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("hrms api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("hrms api error %d", e.StatusCode)
}

type AttendanceServiceImpl struct {
	baseURL string
	http    *http.Client
}

func NewAttendanceService(baseURL string) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListEmployees fetches the full employee directory.
func (svc *AttendanceServiceImpl) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := svc.getJSON(ctx, "/employees/", &employees); err != nil {
		return nil, fmt.Errorf("failed to list employees: %v", err)
	}
	return employees, nil
}

// CreateEmployee adds one employee to the remote directory and returns
// the confirmed entry carrying its service-assigned id.
func (svc *AttendanceServiceImpl) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode employee payload: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/employees/", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := svc.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var employee model.Employee
	if err := json.Unmarshal(body, &employee); err != nil {
		return nil, fmt.Errorf("failed to decode employee response: %v", err)
	}
	return &employee, nil
}

// DeleteEmployee removes one employee from the remote directory. The
// service cascades the removal to the employee's attendance records.
func (svc *AttendanceServiceImpl) DeleteEmployee(ctx context.Context, employeeID int) error {
	path := fmt.Sprintf("%s/employees/%d", svc.baseURL, employeeID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := svc.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read employee response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}
	return nil
}

// ListAttendance fetches the full attendance record set.
func (svc *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	if err := svc.getJSON(ctx, "/attendance/", &records); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %v", err)
	}
	return records, nil
}

// ListEmployeeAttendance fetches the records of a single employee.
func (svc *AttendanceServiceImpl) ListEmployeeAttendance(ctx context.Context, employeeID int) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	path := fmt.Sprintf("/attendance/%d", employeeID)
	if err := svc.getJSON(ctx, path, &records); err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %d: %v", employeeID, err)
	}
	return records, nil
}

// CreateAttendance submits one new attendance entry and returns the
// confirmed record carrying its service-assigned id.
func (svc *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req *CreateAttendanceRequest) (*model.AttendanceRecord, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attendance payload: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/attendance/", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := svc.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var record model.AttendanceRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode attendance response: %v", err)
	}
	return &record, nil
}

func (svc *AttendanceServiceImpl) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := svc.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}

	return json.Unmarshal(body, out)
}

func decodeAPIError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}
	// best effort: the body may not be the expected JSON shape
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
