package domain

// ThreadRef represents a single thread row parsed from the archive listing
type ThreadRef struct {
	ID      string // thread id as shown in the first cell
	Excerpt string // free text from the second cell, used for relevance only
	Link    string // absolute link, base url + relative href
}
