// Package novelty combines the parsed listing with local state and reports new relevant threads
package novelty

import (
	"regexp"

	"github.com/umputun/arcwatch/pkg/domain"
	"github.com/umputun/arcwatch/pkg/localstate"
)

// Filter returns links of threads whose excerpt matches relevance pattern and whose id
// is not known. Order of refs is kept, every link is returned once.
// Case-insensitivity comes from the compiled pattern.
func Filter(refs []domain.ThreadRef, known localstate.IDSet, relevance *regexp.Regexp) []string {
	links := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if !relevance.MatchString(ref.Excerpt) {
			continue
		}
		if known.Has(ref.ID) {
			continue
		}
		if _, dup := seen[ref.Link]; dup {
			continue
		}
		seen[ref.Link] = struct{}{}
		links = append(links, ref.Link)
	}
	return links
}
