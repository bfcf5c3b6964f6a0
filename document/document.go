package document

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// Figure is a figure found in the rendered HTML of a document.
type Figure struct {
	Src     string
	Alt     string
	Title   string
	Caption string
}

type Document struct {
	Path  string            // File system path
	HTML  *goquery.Document // HTML content
	GUID  uuid.UUID
	Title string
	Date  time.Time
}

func (doc *Document) HasTitle() bool {
	return len(doc.Title) > 0
}

func (doc *Document) HasDate() bool {
	return !doc.Date.IsZero()
}

// DisplayTitle is the title or, lacking one, the file name without extension.
func (doc *Document) DisplayTitle() string {
	if doc.HasTitle() {
		return doc.Title
	}

	base := filepath.Base(doc.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Figures lists all figures holding an image, in document order.
func (doc *Document) Figures() []Figure {
	var figures []Figure

	doc.HTML.Find("figure").Each(func(i int, s *goquery.Selection) {
		img := s.Find("img").First()
		if img.Length() == 0 {
			return
		}

		figures = append(figures, Figure{
			Src:     img.AttrOr("src", ""),
			Alt:     img.AttrOr("alt", ""),
			Title:   img.AttrOr("title", ""),
			Caption: s.ChildrenFiltered("figcaption").Text(),
		})
	})

	return figures
}

// Body returns the HTML fragment inside the body element.
func (doc *Document) Body() (string, error) {
	return doc.HTML.Find("body").Html()
}
