package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ReadHTML reads the first <table> in the document. The header is the last row
// of <thead>, or the first row made of <th> cells when there is no <thead>.
// Data rows are the rows holding at least one <td>.
func (r *Reader) ReadHTML(in io.Reader) (*Extract, error) {
	root, err := html.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	doc := goquery.NewDocumentFromNode(root)

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrRead, ErrNoTable)
	}

	headerRow := table.Find("thead tr").Last()
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Children().Filter("th").Length() > 0 && s.Children().Filter("td").Length() == 0
		}).First()
	}
	if headerRow.Length() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrRead, ErrNoHeader)
	}

	ex := &Extract{Header: MangleDuplicates(cells(headerRow))}
	table.Find("tr").Each(func(i int, s *goquery.Selection) {
		if s.Children().Filter("td").Length() == 0 {
			return
		}
		ex.appendRow(i+1, cells(s))
	})
	return ex, nil
}

func cells(row *goquery.Selection) []string {
	var out []string
	row.Children().Filter("th, td").Each(func(_ int, c *goquery.Selection) {
		out = append(out, cellText(c.Nodes[0]))
	})
	return out
}

// cellText concatenates the text under n and collapses whitespace.
func cellText(n *html.Node) string {
	return strings.Join(strings.Fields(extractText(n)), " ")
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(extractText(c))
	}
	return sb.String()
}
