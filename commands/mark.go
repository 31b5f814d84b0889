package commands

import (
	"context"
	"fmt"
	"time"

	"hrmslite/attendance/logic"
	"hrmslite/attendance/model"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMarkCmd(conf *model.Config) *cobra.Command {
	var employeeID int
	var date, status string

	markCmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark an employee present or absent for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := cmd.Flags().GetInt("employee")
			if err != nil {
				return fmt.Errorf("failed to return the int value of employee flag: %v", err)
			}

			date, err := cmd.Flags().GetString("date")
			if err != nil {
				return fmt.Errorf("failed to return the string value of date flag: %v", err)
			}

			status, err := cmd.Flags().GetString("status")
			if err != nil {
				return fmt.Errorf("failed to return the string value of status flag: %v", err)
			}

			ctx := context.Background()

			svc := logic.NewAttendanceService(conf.APIBaseURL)
			cache := logic.NewCache(svc)
			toasts := logic.NewToastQueue(logic.DefaultToastTTL)

			if err := cache.Load(ctx); err != nil {
				toasts.Error("Failed to fetch data. Please try again.")
				drainToasts(toasts)
				return err
			}

			workflow := logic.NewWorkflow(svc, cache, toasts)
			workflow.SetForm(logic.MarkingForm{
				EmployeeID: employeeID,
				Date:       date,
				Status:     status,
			})
			workflow.Prefill()

			err = workflow.Submit(ctx)
			drainToasts(toasts)
			return err
		},
	}

	markCmd.PersistentFlags().IntVar(
		&employeeID,
		"employee",
		0,
		"employee id, defaults to the first directory entry",
	)

	markCmd.PersistentFlags().StringVar(
		&date,
		"date",
		time.Now().Format("2006-01-02"),
		"calendar date YYYY-MM-DD",
	)

	markCmd.PersistentFlags().StringVar(
		&status,
		"status",
		model.StatusPresent,
		"Present or Absent",
	)

	return markCmd
}

// drainToasts logs every live notification and dismisses it, standing in
// for the on-screen toast area.
func drainToasts(toasts *logic.ToastQueue) {
	for _, t := range toasts.Active() {
		if t.Kind == model.ToastError {
			log.Error(t.Message)
		} else {
			log.Info(t.Message)
		}
		toasts.Dismiss(t.ID)
	}
}
