package main

import (
	"hrmslite/attendance/commands"
	"hrmslite/attendance/model"
)

func main() {
	rootCmd := commands.New(&model.Config{})

	rootCmd.Execute()
}
