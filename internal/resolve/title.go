package resolve

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSuffixSeparators split a document title from its site-name suffix
// ("Post Title | Example Blog"). Checked in order; the first hit cuts.
var titleSuffixSeparators = []string{" | ", " \\ ", " - ", " – "}

// TitleResolver extracts an article title from a fetched page, probing in
// strict priority order: og:title meta, twitter:title meta, first h1, then
// the document title with any site-name suffix stripped.
type TitleResolver struct{}

// NewTitleResolver returns a TitleResolver.
func NewTitleResolver() *TitleResolver {
	return &TitleResolver{}
}

// Resolve returns the best title found in doc, or ErrNoTitle when every
// probe comes up empty. Callers drop the record on error rather than
// substitute a placeholder.
func (*TitleResolver) Resolve(doc *goquery.Document) (string, error) {
	if title := metaContent(doc, `meta[property="og:title"]`); title != "" {
		return title, nil
	}
	if title := metaContent(doc, `meta[name="twitter:title"]`); title != "" {
		return title, nil
	}

	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title, nil
	}

	if title := documentTitle(doc); title != "" {
		return title, nil
	}

	return "", ErrNoTitle
}

func metaContent(doc *goquery.Document, selector string) string {
	content, ok := doc.Find(selector).First().Attr("content")
	if !ok {
		return ""
	}

	return strings.TrimSpace(content)
}

func documentTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return ""
	}

	for _, sep := range titleSuffixSeparators {
		if i := strings.Index(title, sep); i >= 0 {
			title = title[:i]
			break
		}
	}

	return strings.TrimSpace(title)
}
