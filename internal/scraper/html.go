package scraper

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TableRows parses an HTML document and returns the td text of every tr.
// Cell text is whitespace-collapsed.
func TableRows(r io.Reader) ([][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var rows [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			rows = append(rows, rowCells(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows, nil
}

func rowCells(tr *html.Node) []string {
	var cells []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Td:
				cells = append(cells, textContent(c))
			case atom.Tr:
				// nested rows are reported on their own
			default:
				walk(c)
			}
		}
	}
	walk(tr)
	return cells
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func hasElement(n *html.Node, tag string) bool {
	if n.Type == html.ElementNode && n.Data == tag {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasElement(c, tag) {
			return true
		}
	}
	return false
}

// StaticBrowser serves a fixed HTML document instead of a live page.
// It backs offline mode and tests.
type StaticBrowser struct {
	HTML string
}

func (b *StaticBrowser) NewSession(_ context.Context) (Session, error) {
	return &staticSession{src: b.HTML}, nil
}

type staticSession struct {
	src string
	doc *html.Node
}

func (s *staticSession) Navigate(_ string) error {
	doc, err := html.Parse(strings.NewReader(s.src))
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}
	s.doc = doc
	return nil
}

// WaitFor fails straight away when the tag is absent; a static page never changes.
func (s *staticSession) WaitFor(tag string, timeout time.Duration) error {
	if s.doc == nil || !hasElement(s.doc, tag) {
		return fmt.Errorf("wait for <%s>: %w after %s", tag, context.DeadlineExceeded, timeout)
	}
	return nil
}

func (s *staticSession) Rows() ([][]string, error) {
	return TableRows(strings.NewReader(s.src))
}

func (s *staticSession) Close() error { return nil }
