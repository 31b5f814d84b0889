package logic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrmslite/attendance/model"
)

func TestAttendanceService_ListEmployees(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/employees/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.Employee{
			{ID: 1, EmployeeCode: "E1", FullName: "Ann"},
		})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	employees, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees() error: %v", err)
	}
	if len(employees) != 1 || employees[0].FullName != "Ann" {
		t.Fatalf("unexpected employees %v", employees)
	}
}

func TestAttendanceService_ListEmployeeAttendance(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attendance/3" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.AttendanceRecord{
			{ID: 10, EmployeeID: 3, Date: "2024-01-01", Status: model.StatusPresent},
		})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	records, err := svc.ListEmployeeAttendance(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListEmployeeAttendance() error: %v", err)
	}
	if len(records) != 1 || records[0].EmployeeID != 3 {
		t.Fatalf("unexpected records %v", records)
	}
}

func TestAttendanceService_CreateEmployee(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/employees/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req CreateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Employee{
			ID:           3,
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			Email:        req.Email,
			Department:   req.Department,
		})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	employee, err := svc.CreateEmployee(context.Background(), &CreateEmployeeRequest{
		EmployeeCode: "E3",
		FullName:     "Cy",
		Email:        "cy@example.com",
		Department:   "Ops",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error: %v", err)
	}
	if employee.ID != 3 || employee.EmployeeCode != "E3" {
		t.Fatalf("unexpected employee %+v", employee)
	}
}

func TestAttendanceService_CreateEmployee_DuplicateDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Employee with this ID or Email already exists"})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	_, err := svc.CreateEmployee(context.Background(), &CreateEmployeeRequest{
		EmployeeCode: "E1",
		FullName:     "Ann",
		Email:        "ann@example.com",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T", err)
	}
	if apiErr.Detail != "Employee with this ID or Email already exists" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
}

func TestAttendanceService_DeleteEmployee(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/employees/5" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	if err := svc.DeleteEmployee(context.Background(), 5); err != nil {
		t.Fatalf("DeleteEmployee() error: %v", err)
	}
}

func TestAttendanceService_DeleteEmployee_NotFoundDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Employee not found"})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	err := svc.DeleteEmployee(context.Background(), 99)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Employee not found" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
}

func TestAttendanceService_CreateAttendance(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/attendance/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req CreateAttendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.AttendanceRecord{
			ID:         11,
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			Status:     req.Status,
		})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	record, err := svc.CreateAttendance(context.Background(), &CreateAttendanceRequest{
		EmployeeID: 2,
		Date:       "2024-01-02",
		Status:     model.StatusAbsent,
	})
	if err != nil {
		t.Fatalf("CreateAttendance() error: %v", err)
	}
	if record.ID != 11 || record.EmployeeID != 2 || record.Status != model.StatusAbsent {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestAttendanceService_CreateAttendance_ErrorDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Employee not found"})
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	_, err := svc.CreateAttendance(context.Background(), &CreateAttendanceRequest{
		EmployeeID: 99,
		Date:       "2024-01-02",
		Status:     model.StatusPresent,
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Employee not found" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
}

func TestAttendanceService_TruncatedBodySurfacesReadError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// promise more bytes than are sent so the client's read fails
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "500")
		w.Write([]byte(`[{"id":1`))
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	_, err := svc.ListEmployees(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "failed to read response body") {
		t.Fatalf("expected a read failure, got %v", err)
	}
}

func TestAttendanceService_CreateAttendance_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer ts.Close()

	svc := NewAttendanceService(ts.URL)
	_, err := svc.CreateAttendance(context.Background(), &CreateAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-02",
		Status:     model.StatusPresent,
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Detail != "" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
}
