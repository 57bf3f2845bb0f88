package lastverified

import (
	"fmt"

	"github.com/bettergovph/lastverified/cli"
	"github.com/bettergovph/lastverified/model"
)

// Config for using lastverified as a library.
type Config struct {
	// Data file to refresh, relative to the repository root. Empty means
	// the configured default.
	File string
	// JSON key holding the record name.
	NameKey string
	// JSON key holding the verification date.
	VerifiedKey string
	// Directory inside the repository to operate on. Empty means the
	// current working directory.
	RepoDir string
	// Report what would change without writing the file.
	DryRun bool
}

// Refresh updates the repository's data file and returns a summary of the run.
func Refresh(config Config) (model.Summary, error) {
	cliCfg := &cli.Config{
		DataFile:    config.File,
		RepoDir:     config.RepoDir,
		NameKey:     config.NameKey,
		VerifiedKey: config.VerifiedKey,
		DryRun:      config.DryRun,
	}

	app, err := New(cliCfg)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to initialize lastverified app: %w", err)
	}

	return app.Execute()
}
