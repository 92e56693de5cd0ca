package repo

import (
	"fmt"
	"strings"
	"time"
)

// Fixed-field record layout requested from "git log". Every commit is
// printed as logFieldCount lines in this order; the parser indexes the
// record positionally by the same layout.
const (
	logAuthorName  = "%aN"
	logAuthorEmail = "%aE"
	logAuthorDate  = "%ad"
	logParentHash  = "%P"
	logCommitHash  = "%H"
	logSubject     = "%s"

	logFieldCount = 6

	// logDateFormat is passed to git --date=format:..., logDateLayout is
	// the equivalent Go time layout.
	logDateFormat = "%Y-%m-%d %H:%M:%S"
	logDateLayout = "2006-01-02 15:04:05"
)

// logFormat is the --pretty record format, one field per line
var logFormat = strings.Join([]string{
	logAuthorName,
	logAuthorEmail,
	logAuthorDate,
	logParentHash,
	logCommitHash,
	logSubject,
}, "%n")

// ParseCommits reconstructs the commit collection from raw "git log" output
// produced with logFormat. git lists commits newest first, so records are
// consumed from the end backwards: each commit's parent is already in the
// arena when the commit is added, and the collection ends up ordered oldest
// to newest. Lookups go through the hash index, so callers are insulated
// from the traversal order.
func ParseCommits(output string) (*Commits, error) {
	commits := NewCommits()
	output = strings.TrimSpace(output)
	if output == "" {
		return commits, nil
	}
	lines := strings.Split(output, "\n")
	for start := len(lines) - logFieldCount; start >= 0; start -= logFieldCount {
		record := lines[start : start+logFieldCount]
		commit, err := parseCommitRecord(record)
		if err != nil {
			return nil, err
		}
		commits.Add(commit)
	}
	return commits, nil
}

// parseCommitRecord builds one Commit from a fixed-size field group
func parseCommitRecord(record []string) (*Commit, error) {
	date, err := time.Parse(logDateLayout, record[2])
	if err != nil {
		return nil, fmt.Errorf("failed to parse commit date %q: %w", record[2], err)
	}
	return &Commit{
		Hash:    record[4],
		Message: record[5],
		Author: Author{
			Name:  record[0],
			Email: record[1],
		},
		Date:       date,
		ParentHash: firstParent(record[3]),
	}, nil
}

// firstParent reduces the %P parent list to the first-parent chain used by
// the commit model.
func firstParent(raw string) string {
	parents := strings.Fields(raw)
	if len(parents) == 0 {
		return ""
	}
	return parents[0]
}
