package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/databricks"
)

var rootCmd = &cobra.Command{
	Use:   "warden-cli",
	Short: "warden-cli is the command-line interface for job-warden.",
	Long:  `A CLI for inspecting and repairing Databricks job runs from a terminal, using the same workspace access as the bot.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("databricks-host", "", "Databricks workspace URL")
	rootCmd.PersistentFlags().String("databricks-token", "", "Databricks access token")
	rootCmd.PersistentFlags().String("email", "", "Operator account e-mail")

	for flag, key := range map[string]string{
		"databricks-host":  "DATABRICKS_HOST",
		"databricks-token": "DATABRICKS_TOKEN",
		"email":            "OPERATOR_EMAIL",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in the .env file and environment variables if set.
func initConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()
	viper.AutomaticEnv()
}

// newJobsClient builds a workspace client from flags and environment.
func newJobsClient() (core.JobsClient, error) {
	for _, key := range []string{"DATABRICKS_HOST", "DATABRICKS_TOKEN", "OPERATOR_EMAIL"} {
		if viper.GetString(key) == "" {
			return nil, fmt.Errorf("%s must be set", key)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return databricks.NewClient(
		viper.GetString("DATABRICKS_HOST"),
		viper.GetString("DATABRICKS_TOKEN"),
		viper.GetString("OPERATOR_EMAIL"),
		logger,
	)
}

// operatorLocation resolves the display time zone, defaulting to the bot's.
func operatorLocation() (*time.Location, error) {
	tz := viper.GetString("TIMEZONE")
	if tz == "" {
		tz = "Asia/Kolkata"
	}
	return time.LoadLocation(tz)
}
