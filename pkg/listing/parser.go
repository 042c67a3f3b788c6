// Package listing turns archive listing markup into thread records.
// The listing is a table with a known element id; every body row has the thread id in the
// first cell, the excerpt in the second one and a link somewhere inside the third one.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/umputun/arcwatch/pkg/domain"
)

const minCells = 3

// Parser extracts thread records from the archive listing table
type Parser struct {
	TableID string
	BaseURL string
}

// NewParser makes parser for the given table id and base url used to absolutize links
func NewParser(tableID, baseURL string) *Parser {
	return &Parser{TableID: tableID, BaseURL: baseURL}
}

// Parse returns thread records in the order rows appear in the listing.
// Missing table or a malformed row fails the whole parse with *domain.StructureError.
func (p *Parser) Parse(markup string) ([]domain.ThreadRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	table := doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == p.TableID
	}).First()
	if table.Length() == 0 {
		return nil, &domain.StructureError{Reason: fmt.Sprintf("table #%s not found", p.TableID)}
	}

	body := table.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		return nil, &domain.StructureError{Reason: fmt.Sprintf("table #%s has no body", p.TableID)}
	}

	rows := body.ChildrenFiltered("tr")
	result := make([]domain.ThreadRef, 0, rows.Length())
	for i := range rows.Nodes {
		ref, err := p.parseRow(rows.Eq(i))
		if err != nil {
			return nil, &domain.StructureError{Row: i + 1, Reason: err.Error()}
		}
		result = append(result, ref)
	}
	return result, nil
}

// parseRow reads cells by index: id, excerpt, and the first link inside the third cell
func (p *Parser) parseRow(row *goquery.Selection) (domain.ThreadRef, error) {
	cells := row.ChildrenFiltered("td, th")
	if cells.Length() < minCells {
		return domain.ThreadRef{}, fmt.Errorf("expected at least %d cells, got %d", minCells, cells.Length())
	}

	href, ok := cells.Eq(2).Find("a[href]").First().Attr("href")
	if !ok {
		return domain.ThreadRef{}, errors.New("no link in cell 3")
	}

	return domain.ThreadRef{
		ID:      strings.TrimSpace(cells.Eq(0).Text()),
		Excerpt: strings.TrimSpace(cells.Eq(1).Text()),
		Link:    p.BaseURL + href,
	}, nil
}
