// Package stopwords loads the stopword list for a language code from the
// embedded line-oriented resources (resources/stopwords.<lang>.dat, one
// lowercase word per line, '#' lines ignored). A missing resource is a
// hard error; there is no default fallback.
package stopwords

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed resources
var resources embed.FS

// Load returns the stopword set for the given language code.
func Load(code string) (map[string]struct{}, error) {
	f, err := resources.Open("resources/stopwords." + code + ".dat")
	if err != nil {
		return nil, fmt.Errorf("no stopword resource for language %q: %w", code, err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stopword resource for %q: %w", code, err)
	}

	return words, nil
}
