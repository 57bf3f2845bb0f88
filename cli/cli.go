package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	DataFile    string
	RepoDir     string
	ConfigFile  string
	NameKey     string
	VerifiedKey string
	DryRun      bool
	NoAnimation bool
	Verbose     bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.DataFile, "file", "f", "", "Data file to refresh, relative to the repository root (default: from settings).")
	pflag.StringVarP(&cfg.RepoDir, "repo", "C", "", "Run as if started in this directory (default: current directory).")
	pflag.StringVar(&cfg.ConfigFile, "config", "", "Settings file to load (default: .lastverified.toml in the repository root).")
	pflag.StringVar(&cfg.NameKey, "name-key", "", "JSON key holding the record name (default: from settings).")
	pflag.StringVar(&cfg.VerifiedKey, "verified-key", "", "JSON key holding the verification date (default: from settings).")
	pflag.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report what would change without writing the file.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable loading spinner and styled summary.")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print diagnostic logs while scanning.")

	pflag.Usage = func() {
		fmt.Println("Usage: lastverified [flags]")
		fmt.Println("\nRefresh each record's verification date from the git history of its name line.")
		fmt.Println("\nExample: lastverified -C ~/src/bettergov -n")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if args := pflag.Args(); len(args) > 0 {
		return nil, fmt.Errorf("error: unexpected argument '%s'", args[0])
	}

	return cfg, nil
}
