// Package localstate derives already processed thread ids from the names of local folder entries
package localstate

import (
	"errors"
	"os"
	"regexp"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/arcwatch/pkg/domain"
)

// IDSet is a set of known thread ids
type IDSet map[string]struct{}

// Has reports whether id is in the set
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// DirLister enumerates immediate entry names of a directory
type DirLister interface {
	List(path string) ([]string, error)
}

// FSLister lists entries of a local filesystem directory
type FSLister struct{}

// List returns names of all entries, files included
func (FSLister) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &domain.IOError{Path: path, Err: err}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Deriver builds the known-id set from entry names
type Deriver struct {
	lister  DirLister
	pattern *regexp.Regexp
}

// NewDeriver makes deriver with the given lister and directory pattern.
// Pattern group 1 is the thread id.
func NewDeriver(lister DirLister, pattern *regexp.Regexp) *Deriver {
	return &Deriver{lister: lister, pattern: pattern}
}

// KnownIDs lists the folder and returns ids derived from entry names.
// Names not matching the pattern are skipped.
func (d *Deriver) KnownIDs(path string) (IDSet, error) {
	names, err := d.lister.List(path)
	if err != nil {
		return nil, &domain.IOError{Path: path, Err: unwrapIOError(err)}
	}

	unique := make(map[string]struct{}, len(names))
	for _, name := range names {
		unique[name] = struct{}{}
	}

	ids := make(IDSet, len(unique))
	for name := range unique {
		id, ok := DeriveID(d.pattern, name)
		if !ok {
			lgr.Printf("[DEBUG] skip %q, no thread id", name)
			continue
		}
		ids[id] = struct{}{}
	}
	lgr.Printf("[DEBUG] %d known thread ids from %d entries in %s", len(ids), len(unique), path)
	return ids, nil
}

// DeriveID matches pattern at the start of name and returns capture group 1.
// Trailing characters after the match are allowed. Returns false if the pattern doesn't
// match at position 0, has no group 1, or group 1 didn't participate in the match.
func DeriveID(pattern *regexp.Regexp, name string) (string, bool) {
	if pattern == nil || pattern.NumSubexp() < 1 {
		return "", false
	}
	loc := pattern.FindStringSubmatchIndex(name)
	if loc == nil || loc[0] != 0 || loc[2] < 0 {
		return "", false
	}
	return name[loc[2]:loc[3]], true
}

// unwrapIOError avoids double wrapping when lister already returned *domain.IOError
func unwrapIOError(err error) error {
	var ioErr *domain.IOError
	if errors.As(err, &ioErr) {
		return ioErr.Err
	}
	return err
}
