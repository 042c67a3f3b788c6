package novelty

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/arcwatch/pkg/domain"
	"github.com/umputun/arcwatch/pkg/localstate"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . ListingParser
//go:generate moq -out mocks/deriver.go -pkg mocks -skip-ensure -fmt goimports . Deriver
//go:generate moq -out mocks/emitter.go -pkg mocks -skip-ensure -fmt goimports . Emitter

// Fetcher retrieves raw markup of a page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ListingParser converts listing markup to thread records
type ListingParser interface {
	Parse(markup string) ([]domain.ThreadRef, error)
}

// Deriver builds the set of already processed thread ids
type Deriver interface {
	KnownIDs(path string) (localstate.IDSet, error)
}

// Emitter delivers a single result link
type Emitter interface {
	Emit(link string) error
}

// Params holds all dependencies and settings of the service
type Params struct {
	Fetcher        Fetcher
	Parser         ListingParser
	Deriver        Deriver
	Emitter        Emitter
	ArchiveURL     string
	DownloadFolder string
	Relevance      *regexp.Regexp
}

// Service runs a single check of the archive
type Service struct {
	Params
}

// NewService makes service from params
func NewService(params Params) *Service {
	return &Service{Params: params}
}

// Run derives local state, fetches and parses the listing, filters it and emits the result.
// Nothing is emitted if any step before emission fails. Returns number of emitted links.
func (s *Service) Run(ctx context.Context) (int, error) {
	if s.Relevance == nil {
		return 0, errors.New("relevance pattern is not set")
	}

	known, err := s.Deriver.KnownIDs(s.DownloadFolder)
	if err != nil {
		return 0, fmt.Errorf("derive known ids: %w", err)
	}
	lgr.Printf("[INFO] %d known threads in %s", len(known), s.DownloadFolder)

	markup, err := s.Fetcher.Fetch(ctx, s.ArchiveURL)
	if err != nil {
		return 0, fmt.Errorf("fetch archive: %w", err)
	}

	refs, err := s.Parser.Parse(markup)
	if err != nil {
		return 0, fmt.Errorf("parse listing: %w", err)
	}
	lgr.Printf("[INFO] %d threads in listing %s", len(refs), s.ArchiveURL)

	links := Filter(refs, known, s.Relevance)
	for i, link := range links {
		if err := s.Emitter.Emit(link); err != nil {
			return i, fmt.Errorf("emit %s: %w", link, err)
		}
	}
	lgr.Printf("[INFO] %d new relevant threads", len(links))
	return len(links), nil
}
