// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syllabus extracts and refines the module agenda for a course.
package syllabus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/course-engine/pkg/types"
)

// headingMarker is the literal, case-sensitive prefix that makes a
// syllabus line a module heading.
const headingMarker = "### Module"

// ErrNotUTF8 reports syllabus content that is not valid UTF-8.
var ErrNotUTF8 = errors.New("syllabus is not valid UTF-8")

// Parse reads the Markdown syllabus at path and returns its module
// titles in file order. A line is a module heading when, after trimming
// surrounding whitespace, it starts with "### Module"; the title is the
// remainder with a leading colon and surrounding whitespace stripped.
// Everything else is opaque prose. Duplicate titles are kept.
func Parse(path string) ([]types.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening syllabus: %w", err)
	}
	defer f.Close()

	var modules []types.Module
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("decoding syllabus %s: %w", path, ErrNotUTF8)
		}
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, headingMarker) {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(trimmed, headingMarker))
		title = strings.TrimSpace(strings.TrimPrefix(title, ":"))
		modules = append(modules, types.Module(title))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading syllabus %s: %w", path, err)
	}
	return modules, nil
}
