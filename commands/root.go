package commands

import (
	"os"

	"hrmslite/attendance/model"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	defaultAPIBaseURL = "http://localhost:8000"
	defaultESURL      = "http://0.0.0.0:9200"
)

func New(conf *model.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attendance",
		Short: "Record and review employee attendance against the HRMS Lite service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; environment variables win either way
			_ = godotenv.Load()

			if conf.APIBaseURL == "" {
				conf.APIBaseURL = os.Getenv("HRMS_API_BASE_URL")
			}
			if conf.APIBaseURL == "" {
				conf.APIBaseURL = defaultAPIBaseURL
			}

			if conf.ESURL == "" {
				conf.ESURL = os.Getenv("HRMS_ES_URL")
			}
			if conf.ESURL == "" {
				conf.ESURL = defaultESURL
			}

			return nil
		},
	}

	rootCmd.AddCommand(newEmployeeCmd(conf))
	rootCmd.AddCommand(newMarkCmd(conf))
	rootCmd.AddCommand(newListCmd(conf))
	rootCmd.AddCommand(newSummaryCmd(conf))
	rootCmd.AddCommand(newExportCmd(conf))

	return rootCmd
}
