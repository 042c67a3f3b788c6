package novelty

import (
	"fmt"
	"io"
)

// WriterEmitter writes one link per line
type WriterEmitter struct {
	W io.Writer
}

// Emit writes link followed by newline
func (e WriterEmitter) Emit(link string) error {
	if _, err := fmt.Fprintln(e.W, link); err != nil {
		return fmt.Errorf("write link: %w", err)
	}
	return nil
}

// CollectEmitter keeps emitted links in memory
type CollectEmitter struct {
	Links []string
}

// Emit appends link
func (e *CollectEmitter) Emit(link string) error {
	e.Links = append(e.Links, link)
	return nil
}
