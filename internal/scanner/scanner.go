// Package scanner rewrites verification dates inside a JSON data file by
// correlating each record's name line with its git attribution.
package scanner

import (
	"regexp"
	"strings"
	"time"

	"github.com/bettergovph/lastverified/internal/gitblame"
	"github.com/bettergovph/lastverified/model"
)

const dateLayout = "2006-01-02"

// Scanner matches record blocks in a line-oriented JSON file. It never
// parses the JSON; blocks are delimited by lines holding a lone brace, the
// way the data file is formatted.
type Scanner struct {
	nameNeedle     string
	verifiedNeedle string
	nameValue      *regexp.Regexp
	verified       *regexp.Regexp
}

// New builds a Scanner for the given key names, usually "hotlineName" and
// "lastVerified".
func New(nameKey, verifiedKey string) *Scanner {
	return &Scanner{
		nameNeedle:     `"` + nameKey + `"`,
		verifiedNeedle: `"` + verifiedKey + `"`,
		nameValue:      regexp.MustCompile(`"` + regexp.QuoteMeta(nameKey) + `"\s*:\s*"(.*?)"`),
		verified:       regexp.MustCompile(`("` + regexp.QuoteMeta(verifiedKey) + `"\s*:\s*)".*?"`),
	}
}

// Result holds the rewritten lines and the per-record outcome of a scan.
type Result struct {
	Lines        []string
	Updated      []model.Record
	Unattributed []model.Record
	Unchanged    int
}

// blockState tracks the record block currently being scanned. A nil pointer
// means the scanner is outside any block.
type blockState struct {
	start        int
	name         string
	nameSeen     bool
	date         time.Time
	dated        bool
	verifiedSeen bool
	attempted    bool
	changed      bool
}

// Update walks lines (1-based, terminators included) and rewrites the value
// of each block's verified field to the date its name line was last
// modified. Lines outside blocks, blocks without a verified field, and
// blocks whose name line has no attribution pass through untouched. Only
// the first name line and first verified field per block count.
func (s *Scanner) Update(lines []string, dates gitblame.LineDates) Result {
	res := Result{Lines: make([]string, 0, len(lines))}
	var block *blockState

	for i, line := range lines {
		no := i + 1
		trimmed := strings.TrimSpace(line)

		// An opening brace starts a record block. Data files are flat, so
		// a brace while already inside a block starts over rather than
		// nesting.
		if trimmed == "{" {
			block = &blockState{start: no}
		}
		if block != nil {
			if !block.nameSeen && strings.Contains(line, s.nameNeedle) {
				block.nameSeen = true
				if m := s.nameValue.FindStringSubmatch(line); m != nil {
					block.name = m[1]
				}
				block.date, block.dated = dates.Date(no)
			}
			if !block.verifiedSeen && strings.Contains(line, s.verifiedNeedle) {
				block.verifiedSeen = true
				if block.dated {
					block.attempted = true
					updated := s.verified.ReplaceAllString(line, `${1}"`+block.date.Format(dateLayout)+`"`)
					if updated != line {
						block.changed = true
						line = updated
					}
				}
			}
			if trimmed == "}" || trimmed == "}," {
				s.close(block, &res)
				block = nil
			}
		}
		res.Lines = append(res.Lines, line)
	}

	// A block left open at EOF cannot be rewritten further, but its
	// outcome is still worth reporting.
	if block != nil {
		s.close(block, &res)
	}
	return res
}

// close files the finished block under one of the summary buckets. Blocks
// without a verified field are not records and stay silent.
func (s *Scanner) close(b *blockState, res *Result) {
	if !b.verifiedSeen {
		return
	}
	rec := model.Record{Name: b.name, Line: b.start}
	switch {
	case !b.attempted:
		res.Unattributed = append(res.Unattributed, rec)
	case b.changed:
		rec.Date = b.date.Format(dateLayout)
		res.Updated = append(res.Updated, rec)
	default:
		res.Unchanged++
	}
}
