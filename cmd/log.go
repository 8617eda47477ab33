package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/audiocrypt/internal/audit"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logFile      string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logFile, "file", "", "filter by file path substring")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logFile = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of encrypt, decrypt and key operations.

Examples:
  audiocrypt log                              # View full log
  audiocrypt log -n 10                        # Last 10 entries
  audiocrypt log --reverse                    # Most recent first
  audiocrypt log --operation encrypt,decrypt  # Filter by operation
  audiocrypt log --file song                  # Filter by file
  audiocrypt log --since 2024-01-01           # Filter by date
  audiocrypt log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	result, err := workflows.Log(context.Background(), workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		File:       logFile,
		Since:      logSince,
		Until:      logUntil,
	})
	if err != nil {
		if errors.Is(err, kerrors.ErrNoFilesFound) {
			fmt.Println(ui.Info.Sprint("ℹ") + " No audit log found. Operations will be logged after running any command.")
			return nil
		}
		fmt.Println(formatError(err))
		if isUserError(err) {
			return nil
		}
		return err
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No audit log entries found.")
		} else {
			fmt.Println("No audit log entries found matching the filters.")
		}
		return nil
	}

	switch {
	case logJSON:
		return outputLogJSON(result.Entries)
	case logOneline:
		outputLogOneline(result.Entries)
	default:
		outputLogDefault(result.Entries)
	}
	return nil
}

func outputLogJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogOneline(entries []audit.Entry) {
	for _, e := range entries {
		date := workflows.FormatDateTime(e.Timestamp)
		if len(date) > 10 {
			date = date[:10]
		}
		fmt.Printf("%s %s %s\n", date, e.Operation, formatLogDetails(e))
	}
}

func outputLogDefault(entries []audit.Entry) {
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		fmt.Printf("%-19s  %-16s  %-8s  %s\n", datetime, e.User, e.Operation, formatLogDetails(e))
	}
}

// formatLogDetails summarizes the operation-specific fields of an entry.
func formatLogDetails(e audit.Entry) string {
	var parts []string
	if len(e.Files) > 0 {
		parts = append(parts, strings.Join(e.Files, ", "))
	}
	if e.KeyKind != "" {
		parts = append(parts, e.KeyKind+" key")
	}
	if e.OutputPath != "" {
		parts = append(parts, "-> "+e.OutputPath)
	}
	if e.Suite != "" {
		parts = append(parts, "("+e.Suite+")")
	}
	if e.Encoding != "" {
		parts = append(parts, "("+e.Encoding+")")
	}
	if e.Sealed {
		parts = append(parts, "sealed")
	}
	return strings.Join(parts, " ")
}
