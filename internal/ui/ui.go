package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/bettergovph/lastverified/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// --- Summaries ---

func PrintRunSummary(s model.Summary) {
	Header("\n--- Run Summary ---")

	if len(s.Updated) == 0 && len(s.Unattributed) == 0 && s.Unchanged == 0 {
		Info("No records found.")
	}

	if len(s.Updated) > 0 {
		Success("Updated %d record(s):", len(s.Updated))
		for _, r := range s.Updated {
			fmt.Printf("  - %s\n", r)
		}
	}
	if s.Unchanged > 0 {
		Info("%d record(s) already current.", s.Unchanged)
	}
	if len(s.Unattributed) > 0 {
		Warning("Skipped %d record(s) with no attribution:", len(s.Unattributed))
		for _, r := range s.Unattributed {
			fmt.Printf("  - %s\n", r)
		}
	}

	if s.Message != "" {
		fmt.Println(s.Message)
	}
}
