package serve

import (
	"net/http"

	"github.com/bgraf/figcap/document"
	"github.com/gin-gonic/gin"
)

const templates = `
{{define "index.html"}}<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>figcap</title></head>
<body>
<ul>
{{range .Documents}}<li><a href="{{entryURL .}}">{{.DisplayTitle}}</a>{{if .HasDate}} ({{formatDate .Date}}){{end}}</li>
{{end}}</ul>
</body>
</html>{{end}}

{{define "entry.html"}}<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Document.DisplayTitle}}</title></head>
<body>
<h1>{{.Document.DisplayTitle}}</h1>
{{.Fragment}}
</body>
</html>{{end}}
`

func (api *serveAPI) ServeIndex(c *gin.Context) {
	api.mu.Lock()
	documents := append([]*document.Document(nil), api.store.Documents...)
	api.mu.Unlock()

	c.HTML(
		http.StatusOK,
		"index.html",
		gin.H{
			"Documents": documents,
		},
	)
}
