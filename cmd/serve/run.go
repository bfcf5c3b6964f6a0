package serve

import (
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/bgraf/figcap/document"
	"github.com/gin-gonic/gin"
	"github.com/goodsign/monday"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Options control the preview server.
type Options struct {
	Live   bool          // Re-read documents from disk on every request
	Locale monday.Locale // Locale for displayed dates
}

func Run(store *document.Store, address string, opts Options) error {
	return NewRouter(store, opts).Run(address)
}

// NewRouter returns the preview server.
func NewRouter(store *document.Store, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := newServeAPI(store, opts.Live)
	r.GET("/", api.ServeIndex)
	r.GET("/entry/:GUID", api.ServeEntry)
	r.GET("/entry/:GUID/figures", api.ServeFigures)

	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(template.FuncMap{
			"entryURL": func(doc *document.Document) string {
				return "/entry/" + doc.GUID.String()
			},
			"formatDate": func(t time.Time) string {
				return monday.Format(t, "Monday, 2 January 2006", opts.Locale)
			},
		}).Parse(templates),
	))

	return r
}

type serveAPI struct {
	mu    sync.Mutex
	store *document.Store
	live  bool
}

func newServeAPI(store *document.Store, live bool) *serveAPI {
	store.OrderDocuments()

	return &serveAPI{
		store: store,
		live:  live,
	}
}

func (api *serveAPI) documentByGUID(guid uuid.UUID) *document.Document {
	api.mu.Lock()
	defer api.mu.Unlock()

	if api.live {
		doc, err := api.store.ReloadByGUID(guid)
		if err != nil {
			klog.Error(err)
			return nil
		}

		return doc
	}

	return api.store.DocumentByGUID(guid)
}

func (api *serveAPI) documentFromParam(c *gin.Context) *document.Document {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		return nil
	}

	return api.documentByGUID(guid)
}

func (api *serveAPI) ServeEntry(c *gin.Context) {
	doc := api.documentFromParam(c)
	if doc == nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	// Extract body fragment
	fragment, err := doc.Body()
	if err != nil {
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.HTML(http.StatusOK, "entry.html", gin.H{
		"Document": doc,
		"Fragment": template.HTML(fragment),
	})
}

type figurePayload struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption"`
}

func (api *serveAPI) ServeFigures(c *gin.Context) {
	doc := api.documentFromParam(c)
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	figures := make([]figurePayload, 0)
	for _, f := range doc.Figures() {
		figures = append(figures, figurePayload(f))
	}

	c.JSON(http.StatusOK, figures)
}
