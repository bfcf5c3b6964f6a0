package document

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/figcap/markdown/figure"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const journalEntry = `---
title: A trip to the lake
date: 2021-08-14
guid: 1b4e28ba-2fa1-11d2-883f-0016d3cca427
---

We went to the lake.

![The lake at dawn](lake.jpg)
![Our tent](tent.jpg "Camp")

Afterwards ![inline](x.jpg) images stay in their paragraph.
`

func newTestConverter(opts ...figure.Option) *Converter {
	return NewConverter(ConverterOptions{GFM: true, Unsafe: true, Figure: opts})
}

func TestConvert(t *testing.T) {
	doc, err := newTestConverter().Convert("entry.md", []byte(journalEntry))
	require.NoError(t, err)

	assert.Equal(t, "entry.md", doc.Path)
	assert.Equal(t, "A trip to the lake", doc.Title)
	assert.Equal(t, time.Date(2021, 8, 14, 0, 0, 0, 0, time.UTC), doc.Date)
	assert.Equal(t, uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427"), doc.GUID)

	assert.Equal(t, []Figure{
		{Src: "lake.jpg", Alt: "The lake at dawn", Caption: "The lake at dawn"},
		{Src: "tent.jpg", Alt: "Our tent", Title: "Camp", Caption: "Our tent"},
	}, doc.Figures())

	body, err := doc.Body()
	require.NoError(t, err)
	assert.Contains(t, body, "<p>We went to the lake.</p>")
	assert.Contains(t, body, `<img src="x.jpg" alt="inline"/>`)
	assert.NotContains(t, body, "title: A trip")
}

func TestConvertWithoutFrontMatter(t *testing.T) {
	doc, err := newTestConverter().Convert("notes/plain.md", []byte("![cap](a.png)\n"))
	require.NoError(t, err)

	assert.False(t, doc.HasTitle())
	assert.False(t, doc.HasDate())
	assert.Equal(t, "plain", doc.DisplayTitle())
	assert.NotEqual(t, uuid.Nil, doc.GUID)
	assert.Len(t, doc.Figures(), 1)
}

func TestConvertWrapperClass(t *testing.T) {
	doc, err := newTestConverter(figure.WithWrapperClass("figures")).Convert("a.md", []byte("![cap](a.png)\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.HTML.Find("div.figures > figure").Length())
}

func TestConvertBadFrontMatter(t *testing.T) {
	testCases := []struct {
		name   string
		source string
	}{
		{"bad date", "---\ndate: yesterday\n---\n\ntext\n"},
		{"bad guid", "---\nguid: not-a-guid\n---\n\ntext\n"},
		{"bad yaml", "---\ntitle: [unclosed\n---\n\ntext\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestConverter().Convert("a.md", []byte(tc.source))
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	out, err := newTestConverter().Render([]byte("![cap](a.png)\n"))
	require.NoError(t, err)

	assert.Equal(t, "<div>\n<figure><img src=\"a.png\" alt=\"cap\"><figcaption>cap</figcaption></figure>\n</div>\n", string(out))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2021", "lake.md"), journalEntry)
	writeFile(t, filepath.Join(root, "2020", "older.md"), "---\ntitle: Older\ndate: 2020-01-01\n---\n\ntext\n")
	writeFile(t, filepath.Join(root, "undated.md"), "text\n")
	writeFile(t, filepath.Join(root, "ignored.txt"), "![cap](a.png)\n")

	store, err := NewStore(root, newTestConverter())
	require.NoError(t, err)
	require.Len(t, store.Documents, 3)

	store.OrderDocuments()
	assert.Equal(t, "A trip to the lake", store.Documents[0].DisplayTitle())
	assert.Equal(t, "Older", store.Documents[1].DisplayTitle())
	assert.Equal(t, "undated", store.Documents[2].DisplayTitle())

	guid := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	doc := store.DocumentByGUID(guid)
	require.NotNil(t, doc)
	assert.Len(t, doc.Figures(), 2)

	writeFile(t, doc.Path, "---\ntitle: Changed\n---\n\n![new](new.jpg)\n")
	reloaded, err := store.ReloadByGUID(guid)
	require.NoError(t, err)
	assert.Equal(t, guid, reloaded.GUID)
	assert.Equal(t, "Changed", reloaded.Title)
	assert.Equal(t, "new", reloaded.Figures()[0].Caption)
	assert.Same(t, reloaded, store.DocumentByGUID(guid))

	_, err = store.ReloadByGUID(uuid.New())
	assert.Error(t, err)
}

func TestStoreCollectsErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good.md"), "text\n")
	writeFile(t, filepath.Join(root, "bad1.md"), "---\ndate: never\n---\n")
	writeFile(t, filepath.Join(root, "bad2.md"), "---\nguid: nope\n---\n")

	store, err := NewStore(root, newTestConverter())
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)

	require.NotNil(t, store)
	assert.Len(t, store.Documents, 1)
}
