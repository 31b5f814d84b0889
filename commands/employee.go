package commands

import (
	"context"
	"errors"
	"fmt"

	"hrmslite/attendance/logic"
	"hrmslite/attendance/model"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(conf *model.Config) *cobra.Command {
	var code, name, email, department string
	var employeeID int

	employeeCmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the employee directory",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee to the directory",
		RunE:  addEmployee(conf),
	}

	addCmd.PersistentFlags().StringVar(
		&code,
		"code",
		"",
		"unique employee code",
	)

	addCmd.PersistentFlags().StringVar(
		&name,
		"name",
		"",
		"full name",
	)

	addCmd.PersistentFlags().StringVar(
		&email,
		"email",
		"",
		"email address",
	)

	addCmd.PersistentFlags().StringVar(
		&department,
		"department",
		"",
		"department",
	)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove an employee and their attendance records",
		RunE:  deleteEmployee(conf),
	}

	deleteCmd.PersistentFlags().IntVar(
		&employeeID,
		"id",
		0,
		"employee id to remove",
	)

	employeeCmd.AddCommand(addCmd)
	employeeCmd.AddCommand(deleteCmd)

	return employeeCmd
}

// add one employee to the remote directory
func addEmployee(conf *model.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		code, err := cmd.Flags().GetString("code")
		if err != nil {
			return fmt.Errorf("failed to return the string value of code flag: %v", err)
		}

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			return fmt.Errorf("failed to return the string value of name flag: %v", err)
		}

		email, err := cmd.Flags().GetString("email")
		if err != nil {
			return fmt.Errorf("failed to return the string value of email flag: %v", err)
		}

		department, err := cmd.Flags().GetString("department")
		if err != nil {
			return fmt.Errorf("failed to return the string value of department flag: %v", err)
		}

		if code == "" || name == "" || email == "" {
			return errors.New("code, name and email are required")
		}

		ctx := context.Background()
		svc := logic.NewAttendanceService(conf.APIBaseURL)

		employee, err := svc.CreateEmployee(ctx, &logic.CreateEmployeeRequest{
			EmployeeCode: code,
			FullName:     name,
			Email:        email,
			Department:   department,
		})
		if err != nil {
			var apiErr *logic.APIError
			if errors.As(err, &apiErr) && apiErr.Detail != "" {
				return fmt.Errorf("failed to add employee: %s", apiErr.Detail)
			}
			return fmt.Errorf("failed to add employee: %v", err)
		}

		log.Infof(
			"Added employee %s (%s) with id %d",
			employee.FullName,
			employee.EmployeeCode,
			employee.ID,
		)

		return nil
	}
}

// remove one employee from the remote directory
func deleteEmployee(conf *model.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		employeeID, err := cmd.Flags().GetInt("id")
		if err != nil {
			return fmt.Errorf("failed to return the int value of id flag: %v", err)
		}

		if employeeID <= 0 {
			return errors.New("id is required")
		}

		ctx := context.Background()
		svc := logic.NewAttendanceService(conf.APIBaseURL)

		if err := svc.DeleteEmployee(ctx, employeeID); err != nil {
			var apiErr *logic.APIError
			if errors.As(err, &apiErr) && apiErr.Detail != "" {
				return fmt.Errorf("failed to remove employee %d: %s", employeeID, apiErr.Detail)
			}
			return fmt.Errorf("failed to remove employee %d: %v", employeeID, err)
		}

		log.Infof("Removed employee %d", employeeID)

		return nil
	}
}
