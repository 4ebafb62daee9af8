/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"earlyexport/config"
	"earlyexport/daterange"
	"earlyexport/early"
	"earlyexport/output"
	"earlyexport/timesheet"
)

var (
	cfgFile            string
	outputFile         string
	outputFormat       string
	baseURL            string
	includeNonbillable bool
	requestTimeout     time.Duration
	verbose            bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "earlyexport <range...>",
	Short: "Export Early time entries to CSV/Excel with a progress summary.",
	Long: `Sign in to the Early time-tracking API, fetch the time entries for a date
range, write them as a report, and print progress against an 8h/weekday target.

Date range tokens:
- @       yesterday and today
- ^       this month
- ^^      last month
- YYYY M  a specific month, given as two arguments (e.g. 2024 6)

Credentials are read from EARLY_API_KEY and EARLY_API_SECRET.`,
	Example: `
  # Export this month
  earlyexport ^

  # Export last month to a specific file
  earlyexport ^^ --output ./march.csv

  # Export June 2024 as Excel, including non-billable entries
  earlyexport 2024 6 --output ./june.xlsx --include-nonbillable

  # Export yesterday and today
  earlyexport @
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Past argument validation; failures from here on are run errors,
		// not usage errors.
		cmd.SilenceUsage = true

		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)

		token := strings.Join(args, " ")
		window, err := daterange.Resolve(token, time.Now())
		if err != nil {
			return err
		}

		bounds := daterange.BuildQueryBounds(window)
		log.WithFields(log.Fields{
			"start": bounds.StartISO(),
			"end":   bounds.EndISO(),
		}).Debug("resolved query window")

		return runExport(cfg, window, bounds)
	},
}

func runExport(cfg *config.Config, window daterange.Window, bounds daterange.QueryBounds) error {
	client, err := early.NewClient(early.ClientConfig{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.Key,
		APISecret:  cfg.API.Secret,
		UserAgent:  "earlyexport/1.0",
		HTTPClient: &http.Client{Timeout: requestTimeout},
	})
	if err != nil {
		return err
	}

	signInCtx, cancelSignIn := context.WithTimeout(context.Background(), requestTimeout)
	defer cancelSignIn()
	accessToken, err := client.SignIn(signInCtx)
	if err != nil {
		return err
	}

	fetchCtx, cancelFetch := context.WithTimeout(context.Background(), requestTimeout)
	defer cancelFetch()
	entries, err := client.FetchTimeEntries(fetchCtx, accessToken, bounds.StartISO(), bounds.EndISO())
	if err != nil {
		return err
	}

	filtered := timesheet.FilterEntries(entries, cfg.Output.IncludeNonbillable)

	format := cfg.Output.Format
	if strings.TrimSpace(format) == "" {
		format = output.DetectFormat(cfg.Output.File)
	}
	writer, err := output.WriterForFormat(format)
	if err != nil {
		return err
	}
	if err := writer.Write(cfg.Output.File, filtered); err != nil {
		return err
	}
	fmt.Printf("wrote %d entries to %s\n", len(filtered), cfg.Output.File)

	progress, hasWorkdays := timesheet.Summarize(filtered, window, time.Now())
	fmt.Println(timesheet.FormatSummary(progress, hasWorkdays, cfg.Output.IncludeNonbillable))
	return nil
}

// applyFlagOverrides lets explicit flags win over environment and config
// file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Output.File = outputFile
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = outputFormat
	}
	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}
	if cmd.Flags().Changed("include-nonbillable") {
		cfg.Output.IncludeNonbillable = includeNonbillable
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()
	config.BindEnv()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.earlyexport.yaml, then ./.earlyexport.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "output.csv", "Report destination path (env: OUTPUT_FILE)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Override the API base URL")
	rootCmd.Flags().BoolVar(&includeNonbillable, "include-nonbillable", false, "Keep entries tagged nonbillable in report and totals (env: INCLUDE_NONBILLABLE)")
	rootCmd.Flags().DurationVar(&requestTimeout, "timeout", 30*time.Second, "Timeout per API request")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".earlyexport" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".earlyexport")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional; environment variables are the primary
	// configuration surface.
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("loaded config file")
	}
}
