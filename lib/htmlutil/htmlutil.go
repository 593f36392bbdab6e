package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

	"inz-data-scraper/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText is the text content of `node`, <br> counts as a space.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	// <br> separates words visually but has no text node of its own
	if node.Type == html.ElementNode && node.Data == "br" {
		buffer.WriteByte(' ')
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText returns the printable text of every node in the selection,
// whitespace collapsed.
func CleanText(sel *goquery.Selection) string {
	texts := make([]string, len(sel.Nodes))
	for i, n := range sel.Nodes {
		texts[i] = GetText(n)
	}
	return textutil.NormalizeSpace(removeNonPrintable(strings.Join(texts, " ")))
}

// Table is the plain text content of an html table.
type Table struct {
	Header []string
	Body   [][]string
}

// ReadTable splits a <table> into its header captions and body cell
// text. The header comes from <thead> when present, otherwise from the
// first row. Rows without any cell are skipped.
func ReadTable(table *goquery.Selection) Table {
	var result Table

	rows := table.Find("tr")
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = rows.First()
	}

	headerRow.Children().Filter("th, td").Each(func(_ int, cell *goquery.Selection) {
		result.Header = append(result.Header, CleanText(cell))
	})

	rows.Each(func(_ int, row *goquery.Selection) {
		if headerRow.Length() > 0 && row.Nodes[0] == headerRow.Nodes[0] {
			return
		}
		cells := row.Children().Filter("th, td")
		if cells.Length() == 0 {
			return
		}
		values := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			values = append(values, CleanText(cell))
		})
		result.Body = append(result.Body, values)
	})

	return result
}
