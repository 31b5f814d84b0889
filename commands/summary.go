package commands

import (
	"context"
	"fmt"

	"hrmslite/attendance/logic"
	"hrmslite/attendance/model"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSummaryCmd(conf *model.Config) *cobra.Command {
	var employeeID int

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show present-day counts per employee, ranked",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := cmd.Flags().GetInt("employee")
			if err != nil {
				return fmt.Errorf("failed to return the int value of employee flag: %v", err)
			}

			ctx := context.Background()
			svc := logic.NewAttendanceService(conf.APIBaseURL)

			if employeeID > 0 {
				return printEmployeeHistory(ctx, svc, employeeID)
			}

			cache := logic.NewCache(svc)
			if err := cache.Load(ctx); err != nil {
				return err
			}

			rows := logic.AggregatePresence(cache.Employees(), cache.Records())
			if len(rows) == 0 {
				log.Info("No employees in the directory")
				return nil
			}

			msg := "Present days per employee: \n"
			for _, row := range rows {
				msg += fmt.Sprintf(
					"- %s (%s): %d\n",
					row.Employee.FullName,
					row.Employee.EmployeeCode,
					row.PresentDays,
				)
			}
			log.Info(msg)

			return nil
		},
	}

	summaryCmd.PersistentFlags().IntVar(
		&employeeID,
		"employee",
		0,
		"show the raw history for one employee id",
	)

	return summaryCmd
}

// show one employee's records, most recent first
func printEmployeeHistory(ctx context.Context, svc logic.AttendanceService, employeeID int) error {
	records, err := svc.ListEmployeeAttendance(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to fetch attendance for employee %d: %v", employeeID, err)
	}

	if len(records) == 0 {
		log.Infof("No attendance records for employee %d", employeeID)
		return nil
	}

	for _, record := range logic.FilterByDate(records, "") {
		fmt.Printf("%-12s %s\n", record.Date, record.Status)
	}

	return nil
}
