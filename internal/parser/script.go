package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Textual markers bounding the embedded lookup arrays in the server's
// inline scripts. The slice between them is matched with a pattern, not
// parsed as JavaScript.
const (
	scriptTaskIDsStart  = "var task_ids = new Array();"
	scriptObjTasksStart = "// Populate obj_tasks with task ids for each relevant project."
	scriptTaskNamesEnd  = "// Prepare an array of task names."
)

// findScript scans the document's inline scripts in order and, for the
// first one containing startToken, returns the text strictly between the
// end of startToken and the next occurrence of endToken (or the end of the
// script when endToken is absent). Returns "" when no script matches.
func findScript(doc *goquery.Document, startToken, endToken string) string {
	var slice string
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		text := script.Text()
		start := strings.Index(text, startToken)
		if start < 0 {
			return true
		}
		start += len(startToken)
		end := strings.Index(text[start:], endToken)
		if end < 0 {
			slice = text[start:]
		} else {
			slice = text[start : start+end]
		}
		return false
	})
	return slice
}
