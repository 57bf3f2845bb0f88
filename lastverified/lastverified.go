package lastverified

import (
	"fmt"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/bettergovph/lastverified/cli"
	"github.com/bettergovph/lastverified/internal/config"
	"github.com/bettergovph/lastverified/internal/datafile"
	"github.com/bettergovph/lastverified/internal/gitblame"
	"github.com/bettergovph/lastverified/internal/logging"
	"github.com/bettergovph/lastverified/internal/scanner"
	"github.com/bettergovph/lastverified/internal/ui"
	"github.com/bettergovph/lastverified/model"
)

// CompletionMessage is printed after a successful refresh. It matches the
// script this tool replaced, so downstream tooling keeps working.
const CompletionMessage = "Updated lastVerified values based on git blame dates."

// App orchestrates one refresh of the data file.
type App struct {
	cfg    *cli.Config
	root   string
	logger zerolog.Logger
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance rooted at the repository that holds the
// data file.
func New(cfg *cli.Config) (*App, error) {
	root, err := gitblame.RepoRoot(cfg.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to locate repository: %w", err)
	}

	return &App{
		cfg:    cfg,
		root:   root,
		logger: logging.New(logging.Config{Verbose: cfg.Verbose}),
	}, nil
}

// Execute runs one refresh of the data file.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	return a.refresh()
}

// refresh correlates the data file with its git history and rewrites the
// verification date of every record whose name line has moved.
func (a *App) refresh() (model.Summary, error) {
	cfg, err := config.Load(a.root, a.cfg.ConfigFile)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to load settings: %w", err)
	}
	a.applyFlagOverrides(cfg)

	for _, w := range config.Validate(cfg) {
		ui.Warning("Config: %s", w)
	}

	a.logger.Debug().
		Str("root", a.root).
		Str("file", cfg.Data.File).
		Msg("refreshing verification dates")

	dates, err := gitblame.Blame(a.root, cfg.Data.File)
	if err != nil {
		return model.Summary{}, err
	}
	a.logger.Debug().Int("attributed_lines", len(dates)).Msg("blame complete")

	path := cfg.Data.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.root, path)
	}

	lines, err := datafile.ReadLines(path)
	if err != nil {
		return model.Summary{}, err
	}

	res := scanner.New(cfg.Data.NameKey, cfg.Data.VerifiedKey).Update(lines, dates)
	for _, r := range res.Updated {
		a.logger.Debug().Str("name", r.Name).Str("date", r.Date).Int("line", r.Line).Msg("record updated")
	}
	for _, r := range res.Unattributed {
		a.logger.Debug().Str("name", r.Name).Int("line", r.Line).Msg("record has no attribution")
	}

	if !a.cfg.DryRun {
		if err := datafile.WriteLines(path, res.Lines); err != nil {
			return model.Summary{}, err
		}
	}

	return a.buildSummary(res), nil
}

// applyFlagOverrides lets command-line flags win over the settings file and
// environment.
func (a *App) applyFlagOverrides(cfg *config.Config) {
	if a.cfg.DataFile != "" {
		cfg.Data.File = a.cfg.DataFile
	}
	if a.cfg.NameKey != "" {
		cfg.Data.NameKey = a.cfg.NameKey
	}
	if a.cfg.VerifiedKey != "" {
		cfg.Data.VerifiedKey = a.cfg.VerifiedKey
	}
}

func (a *App) buildSummary(res scanner.Result) model.Summary {
	summary := model.Summary{Unchanged: res.Unchanged}
	for _, r := range res.Updated {
		summary.Updated = append(summary.Updated, fmt.Sprintf("%s (%s)", displayName(r), r.Date))
	}
	for _, r := range res.Unattributed {
		summary.Unattributed = append(summary.Unattributed, displayName(r))
	}

	if a.cfg.DryRun {
		summary.Message = fmt.Sprintf("Dry run: %d record(s) would be updated.", len(res.Updated))
	} else {
		summary.Message = CompletionMessage
	}
	return summary
}

// displayName falls back to the block's position for records whose name
// could not be read.
func displayName(r model.Record) string {
	if r.Name == "" {
		return fmt.Sprintf("record at line %d", r.Line)
	}
	return r.Name
}
