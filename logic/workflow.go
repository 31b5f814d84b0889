package logic

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hrmslite/attendance/model"

	"github.com/sirupsen/logrus"
)

// Phase of the marking workflow.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseConfirmed  Phase = "confirmed"
	PhaseRejected   Phase = "rejected"
)

const fallbackSubmitError = "Failed to mark attendance."

// MarkingForm holds the user's pending entry.
type MarkingForm struct {
	EmployeeID int
	Date       string
	Status     string
}

// Workflow validates and submits new attendance entries, then reconciles
// the cache and raises a toast with the outcome. A confirmed record is
// appended only after the service acknowledges it; nothing unconfirmed
// ever reaches the cache.
type Workflow struct {
	svc    AttendanceService
	cache  *Cache
	toasts *ToastQueue

	mu      sync.Mutex
	form    MarkingForm
	phase   Phase
	lastErr string
}

func NewWorkflow(svc AttendanceService, cache *Cache, toasts *ToastQueue) *Workflow {
	return &Workflow{
		svc:    svc,
		cache:  cache,
		toasts: toasts,
		form: MarkingForm{
			Date:   time.Now().Format("2006-01-02"),
			Status: model.StatusPresent,
		},
		phase: PhaseIdle,
	}
}

// SetForm replaces the pending entry.
func (w *Workflow) SetForm(form MarkingForm) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = form
}

// Form returns the pending entry. After a rejected submission it still
// holds the user's values.
func (w *Workflow) Form() MarkingForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Prefill selects the directory's first employee when none is chosen yet.
func (w *Workflow) Prefill() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form.EmployeeID == 0 {
		if id, ok := w.cache.DefaultEmployeeID(); ok {
			w.form.EmployeeID = id
		}
	}
}

func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

func (w *Workflow) LastError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Reset returns the workflow to idle without touching the form.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phase = PhaseIdle
	w.lastErr = ""
}

// Submit sends the current form to the service. Validation failures
// reject synchronously before any network call. On success the confirmed
// record is appended to the cache and a success toast is raised; on
// failure the cache is untouched and an error toast carries the most
// specific reason the service gave.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	form := w.form
	w.phase = PhaseSubmitting
	w.lastErr = ""
	w.mu.Unlock()

	if err := w.validate(form); err != nil {
		w.reject(err.Error())
		return err
	}

	record, err := w.svc.CreateAttendance(ctx, &CreateAttendanceRequest{
		EmployeeID: form.EmployeeID,
		Date:       form.Date,
		Status:     form.Status,
	})
	if err != nil {
		msg := fallbackSubmitError
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			msg = apiErr.Detail
		}
		w.reject(msg)
		w.toasts.Error(msg)
		logrus.WithError(err).Error("attendance submission rejected")
		return fmt.Errorf("failed to mark attendance: %v", err)
	}

	w.cache.Append(*record)
	w.toasts.Success("Attendance marked successfully!")

	w.mu.Lock()
	w.phase = PhaseConfirmed
	w.mu.Unlock()

	return nil
}

func (w *Workflow) validate(form MarkingForm) error {
	if !w.cache.HasEmployee(form.EmployeeID) {
		return fmt.Errorf("employee %d is not in the directory", form.EmployeeID)
	}
	if form.Date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse("2006-01-02", form.Date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", form.Date)
	}
	if form.Status != model.StatusPresent && form.Status != model.StatusAbsent {
		return fmt.Errorf("invalid status %q, must be %s or %s", form.Status, model.StatusPresent, model.StatusAbsent)
	}
	return nil
}

func (w *Workflow) reject(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phase = PhaseRejected
	w.lastErr = msg
}
