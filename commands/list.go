package commands

import (
	"context"
	"fmt"

	"hrmslite/attendance/logic"
	"hrmslite/attendance/model"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newListCmd(conf *model.Config) *cobra.Command {
	var date string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := cmd.Flags().GetString("date")
			if err != nil {
				return fmt.Errorf("failed to return the string value of date flag: %v", err)
			}

			ctx := context.Background()

			svc := logic.NewAttendanceService(conf.APIBaseURL)
			cache := logic.NewCache(svc)
			if err := cache.Load(ctx); err != nil {
				return err
			}

			records := logic.FilterByDate(cache.Records(), date)
			if len(records) == 0 {
				log.Info("No attendance records found.")
				return nil
			}

			byID := make(map[int]model.Employee)
			for _, employee := range cache.Employees() {
				byID[employee.ID] = employee
			}

			for _, record := range records {
				name := "Unknown Employee"
				code := "-"
				if employee, ok := byID[record.EmployeeID]; ok {
					name = employee.FullName
					code = employee.EmployeeCode
				}
				fmt.Printf("%-12s %-8s %s (%s)\n", record.Date, record.Status, name, code)
			}

			return nil
		},
	}

	listCmd.PersistentFlags().StringVar(
		&date,
		"date",
		"",
		"only records for this YYYY-MM-DD date",
	)

	return listCmd
}
