package logic

import (
	"context"
	"fmt"
	"sync"

	"hrmslite/attendance/model"

	"github.com/sirupsen/logrus"
)

// Cache mirrors the two remote collections. Load replaces both sets in a
// single step, so readers never observe a fresh employee set next to a
// stale attendance set.
type Cache struct {
	svc AttendanceService

	mu        sync.RWMutex
	employees []model.Employee
	records   []model.AttendanceRecord
	loadErr   error
}

func NewCache(svc AttendanceService) *Cache {
	return &Cache{svc: svc}
}

// Load fetches the employee and attendance collections concurrently and
// applies them only once both fetches have resolved, and only if both
// succeeded. On failure the previous contents stay in place and the error
// is retained for observers; calling Load again retries.
func (c *Cache) Load(ctx context.Context) error {
	var wg sync.WaitGroup

	var employees []model.Employee
	var records []model.AttendanceRecord
	var empErr, attErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		employees, empErr = c.svc.ListEmployees(ctx)
	}()
	go func() {
		defer wg.Done()
		records, attErr = c.svc.ListAttendance(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if empErr != nil || attErr != nil {
		err := empErr
		if err == nil {
			err = attErr
		} else if attErr != nil {
			err = fmt.Errorf("%v; %v", empErr, attErr)
		}
		c.loadErr = fmt.Errorf("failed to load remote collections: %v", err)
		logrus.WithError(err).Error("cache load failed")
		return c.loadErr
	}

	c.employees = employees
	c.records = records
	c.loadErr = nil

	return nil
}

// Append inserts one confirmed record without a full reload, keeping the
// set in insertion order.
func (c *Cache) Append(record model.AttendanceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, record)
}

// DefaultEmployeeID returns the first employee in the directory, used to
// pre-select the marking form. ok is false when the directory is empty.
func (c *Cache) DefaultEmployeeID() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.employees) == 0 {
		return 0, false
	}
	return c.employees[0].ID, true
}

// HasEmployee reports whether id is in the current directory.
func (c *Cache) HasEmployee(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, employee := range c.employees {
		if employee.ID == id {
			return true
		}
	}
	return false
}

// Employees returns a copy of the current directory.
func (c *Cache) Employees() []model.Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Employee, len(c.employees))
	copy(out, c.employees)
	return out
}

// Records returns a copy of the current attendance set in insertion order.
func (c *Cache) Records() []model.AttendanceRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.AttendanceRecord, len(c.records))
	copy(out, c.records)
	return out
}

// LoadErr returns the error of the most recent failed Load, or nil after
// a successful one.
func (c *Cache) LoadErr() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}
