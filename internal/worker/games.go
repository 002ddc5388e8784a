package worker

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadGames reads one game per line: whitespace-separated long algebraic
// moves. Blank lines and lines starting with '#' are skipped. Indexes start
// at first so that several sources can share one numbering.
func ReadGames(r io.Reader, source string, first int) ([]WorkItem, error) {
	var items []WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, WorkItem{
			Index:  first + len(items),
			Source: fmt.Sprintf("%s:%d", source, line),
			Moves:  strings.Fields(text),
		})
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", source, err)
	}
	return items, nil
}
