package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// selectByName finds the first descendant of the form carrying the given
// name attribute.
func selectByName(form *goquery.Selection, name string) *goquery.Selection {
	found := form.Find("[name=" + name + "]").First()
	if found.Length() == 0 {
		return nil
	}
	return found
}

// inputValue returns the value of a form control: the value attribute for
// inputs and options, the enclosed text for textareas.
func inputValue(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	if goquery.NodeName(s) == "textarea" {
		return s.Text()
	}
	return s.AttrOr("value", "")
}

// isChecked reports whether a checkbox input is checked.
func isChecked(s *goquery.Selection) bool {
	_, checked := s.Attr("checked")
	return checked
}

// ownText returns the element's own text, excluding descendant elements,
// with whitespace normalised.
func ownText(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	for child := s.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return normalizeSpace(b.String())
}

// textWithBreaks returns the element's text with <br> elements rendered as
// newlines, so multi-line error banners keep their line structure.
func textWithBreaks(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	appendTextWithBreaks(&b, s.Nodes[0])
	return strings.TrimSpace(b.String())
}

func appendTextWithBreaks(b *strings.Builder, node *html.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			b.WriteString(normalizeSpace(child.Data))
		case html.ElementNode:
			if child.Data == "br" {
				b.WriteByte('\n')
				continue
			}
			appendTextWithBreaks(b, child)
		}
	}
}

func normalizeSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// findError locates the page's error banner, a td carrying the "error"
// style class, and returns its text. Empty when the page shows no error.
func findError(doc *goquery.Document) string {
	banner := doc.Find("td.error").First()
	if banner.Length() == 0 {
		return ""
	}
	return textWithBreaks(banner)
}
