package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadSlugList reads one slug per line from path. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed.
// Duplicate slugs are dropped — they would render identical covers.
func ReadSlugList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open slug list: %w", err)
	}
	defer f.Close()

	var slugs []string
	seen := map[string]bool{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		slugs = append(slugs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read slug list: %w", err)
	}
	return slugs, nil
}
