// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/cost"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errCheckFailed is returned by the check command when any check fails.
var errCheckFailed = errors.New("configuration check failed")

// newQueryCommand runs the get-cost query locally and prints the result.
// CONFIG is honoured for dataFile but no license is required.
func (cf *CLIFramework) newQueryCommand() *cobra.Command {
	var (
		vendors []string
		months  []string
		table   bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the cost summary for the given vendors and months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cf.configFile, false)
			if err != nil {
				return err
			}

			log := logger.NewCLILogger()
			log.SetOutput(cmd.ErrOrStderr())
			if config.Log.Silent {
				log.SetOutput(io.Discard)
			}

			loader := cost.NewLoader(config.DataFile, log)
			report := loader.Fetch(cmd.Context())
			if report == nil {
				return fmt.Errorf("%s from %s: %w", cost.FailureMessage, loader.Path(), cost.ErrDataUnavailable)
			}

			q := cost.Query{Vendors: vendors, Months: months}
			out := cmd.OutOrStdout()
			if table {
				return cost.RenderTotals(out, cost.Summarize(report, q))
			}

			text := cost.Format(report, q)
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			_, err = io.WriteString(out, text)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&vendors, "vendor", nil, "vendor to include, repeatable (default: all vendors)")
	cmd.Flags().StringArrayVar(&months, "month", nil, "month (YYYY-MM) to include, repeatable (default: all months)")
	cmd.Flags().BoolVar(&table, "table", false, "print per-month totals as a markdown table")

	return cmd
}

// newCheckCommand validates the settings file, CONFIG and the cost report,
// printing one colored status line per check.
func (cf *CLIFramework) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and the cost report file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			pass := color.New(color.FgGreen, color.Bold).SprintFunc()
			fail := color.New(color.FgRed, color.Bold).SprintFunc()
			failed := false

			source := cf.configFile
			if source == "" {
				source = os.Getenv(EnvConfigFile)
			}
			if source == "" {
				source = "built-in defaults"
			}

			config, err := loadConfig(cf.configFile)
			if err != nil {
				fmt.Fprintf(out, "%s settings (%s): %v\n", fail("FAIL"), source, err)
				return errCheckFailed
			}
			fmt.Fprintf(out, "%s settings (%s)\n", pass("OK"), source)

			if err := applyEnvConfig(config, os.Getenv(EnvConfig), true); err != nil {
				failed = true
				fmt.Fprintf(out, "%s %s: %v\n", fail("FAIL"), EnvConfig, err)
			} else {
				fmt.Fprintf(out, "%s %s: license present\n", pass("OK"), EnvConfig)
			}

			report, err := cost.Load(cmd.Context(), config.DataFile)
			if err != nil {
				failed = true
				fmt.Fprintf(out, "%s data file %s: %v\n", fail("FAIL"), config.DataFile, err)
				var schemaErr *cost.SchemaError
				if errors.As(err, &schemaErr) {
					for _, v := range schemaErr.Violations {
						fmt.Fprintf(out, "    - %s\n", v)
					}
				}
			} else {
				fmt.Fprintf(out, "%s data file %s: %d vendor(s)\n", pass("OK"), config.DataFile, len(report.Vendors()))
			}

			if failed {
				return errCheckFailed
			}
			return nil
		},
	}
}
