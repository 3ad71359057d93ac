// Package server exposes the catalog and overlay over a localhost HTTP
// API, mirroring the views of the original browser frontend: paper
// listing with filters and pagination, author groups, favorites, and
// overlay export/import.
package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/paperdeck/paperdeck/internal/index"
	"github.com/paperdeck/paperdeck/internal/overlay"
	"github.com/paperdeck/paperdeck/internal/query"
)

// Server serves browse and overlay endpoints over one catalog and one
// overlay store. All state mutation goes through the store; the
// catalog is read-only.
type Server struct {
	papers   []catalog.Paper
	store    *overlay.Store
	pageSize int
}

// New creates a Server.
func New(papers []catalog.Paper, store *overlay.Store, pageSize int) *Server {
	if pageSize < 1 {
		pageSize = 20
	}
	return &Server{papers: papers, store: store, pageSize: pageSize}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/papers", s.listPapers)
	r.GET("/paper", s.getPaper)
	r.GET("/authors", s.listAuthors)
	r.GET("/keywords", s.listKeywords)
	r.GET("/areas", s.listAreas)

	r.GET("/favorites/papers", s.favoritePapers)
	r.GET("/favorites/authors", s.favoriteAuthors)
	r.POST("/favorites/papers", s.toggleFavoritePaper)
	r.POST("/favorites/authors", s.toggleFavoriteAuthor)

	r.PUT("/notes/paper", s.setPaperNote)
	r.PUT("/notes/author", s.setAuthorComment)

	r.GET("/export", s.exportOverlay)
	r.POST("/import", s.importOverlay)

	return r
}

// paperView is one paper as presented to the frontend, with the
// derived tier and the user's favorite state attached.
type paperView struct {
	catalog.Paper
	Tier     string             `json:"tier"`
	Favorite bool               `json:"favorite"`
	Note     *overlay.PaperNote `json:"note,omitempty"`
}

func (s *Server) view(p catalog.Paper, o overlay.Overlay) paperView {
	v := paperView{Paper: p, Tier: p.Tier()}
	if note, ok := o.FavoritePapers[p.Title]; ok {
		v.Favorite = true
		v.Note = &note
	}
	return v
}

func (s *Server) views(papers []catalog.Paper, o overlay.Overlay) []paperView {
	out := make([]paperView, 0, len(papers))
	for _, p := range papers {
		out = append(out, s.view(p, o))
	}
	return out
}

func (s *Server) pageParams(c *gin.Context) (page, pageSize int) {
	page = intQuery(c, "page", 1)
	pageSize = intQuery(c, "page_size", s.pageSize)
	return page, pageSize
}

func (s *Server) listPapers(c *gin.Context) {
	filters := query.Filters{
		Keyword: c.Query("keyword"),
		Area:    c.Query("area"),
		Author:  c.Query("author"),
	}
	page, pageSize := s.pageParams(c)

	o := s.store.Load()
	filtered := query.Apply(s.papers, filters)
	pg := query.Paginate(s.views(filtered, o), pageSize, page)

	c.JSON(http.StatusOK, gin.H{
		"papers":      pg.Items,
		"total_count": pg.TotalCount,
		"page_count":  pg.PageCount,
		"page":        pg.Number,
	})
}

func (s *Server) getPaper(c *gin.Context) {
	title := c.Query("title")
	p := catalog.FindByTitle(s.papers, title)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown paper: " + title})
		return
	}
	c.JSON(http.StatusOK, s.view(*p, s.store.Load()))
}

// authorView is one author group as presented to the frontend.
type authorView struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	PaperCount int                 `json:"paper_count"`
	Favorite   bool                `json:"favorite"`
	Note       *overlay.AuthorNote `json:"note,omitempty"`
}

func (s *Server) listAuthors(c *gin.Context) {
	search := c.Query("search")
	page, pageSize := s.pageParams(c)

	idx := index.BuildAuthorIndex(s.papers)
	o := s.store.Load()

	var views []authorView
	for _, id := range index.SortedIDs(idx) {
		g := idx[id]
		if search != "" && !containsFold(g.Name, search) {
			continue
		}
		v := authorView{ID: id, Name: g.Name, PaperCount: len(g.Papers), Favorite: o.IsFavoriteAuthor(id)}
		if note, ok := o.AuthorComments[id]; ok {
			v.Note = &note
		}
		views = append(views, v)
	}

	pg := query.Paginate(views, pageSize, page)
	c.JSON(http.StatusOK, gin.H{
		"authors":     pg.Items,
		"total_count": pg.TotalCount,
		"page_count":  pg.PageCount,
		"page":        pg.Number,
	})
}

func (s *Server) listKeywords(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keywords": index.KeywordSet(s.papers)})
}

func (s *Server) listAreas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"areas": index.AreaSet(s.papers)})
}

func (s *Server) favoritePapers(c *gin.Context) {
	o := s.store.Load()
	favs := query.Apply(query.FavoritePapers(s.papers, o), query.Filters{})
	c.JSON(http.StatusOK, gin.H{"papers": s.views(favs, o)})
}

func (s *Server) favoriteAuthors(c *gin.Context) {
	o := s.store.Load()
	groups := query.FavoriteAuthorGroups(s.papers, o)

	type favAuthor struct {
		ID     string              `json:"id"`
		Name   string              `json:"name"`
		Papers []paperView         `json:"papers"`
		Note   *overlay.AuthorNote `json:"note,omitempty"`
	}
	out := make([]favAuthor, 0, len(groups))
	for _, g := range groups {
		fa := favAuthor{ID: g.ID, Name: g.Name, Papers: s.views(g.Papers, o)}
		if note, ok := o.AuthorComments[g.ID]; ok {
			fa.Note = &note
		}
		out = append(out, fa)
	}
	c.JSON(http.StatusOK, gin.H{"authors": out})
}

func (s *Server) toggleFavoritePaper(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if catalog.FindByTitle(s.papers, req.Title) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown paper: " + req.Title})
		return
	}

	_, fav, err := s.store.ToggleFavoritePaper(req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": req.Title, "favorite": fav})
}

func (s *Server) toggleFavoriteAuthor(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, fav, err := s.store.ToggleFavoriteAuthor(req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "favorite": fav})
}

func (s *Server) setPaperNote(c *gin.Context) {
	var req struct {
		Title    string  `json:"title" binding:"required"`
		Status   *string `json:"status"`
		Rating   *int    `json:"rating"`
		Comments *string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil {
		if err := overlay.ValidateStatus(*req.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Rating != nil {
		if err := overlay.ValidateRating(*req.Rating); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	note, err := s.store.SetPaperNote(req.Title, overlay.PaperPatch{
		Status:   req.Status,
		Rating:   req.Rating,
		Comments: req.Comments,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": req.Title, "note": note})
}

func (s *Server) setAuthorComment(c *gin.Context) {
	var req struct {
		ID       string `json:"id" binding:"required"`
		Comments string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := s.store.SetAuthorComment(req.ID, req.Comments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "note": note})
}

func (s *Server) exportOverlay(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+overlay.DefaultExportFilename+`"`)
	c.Header("Content-Type", "application/json; charset=utf-8")
	if err := s.store.Load().Export(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// importOverlay replaces the stored overlay wholesale with the posted
// document. A malformed document leaves the overlay unchanged.
func (s *Server) importOverlay(c *gin.Context) {
	o, err := overlay.Import(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.Replace(o); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"imported":         true,
		"favorite_papers":  len(o.FavoritePapers),
		"favorite_authors": len(o.FavoriteAuthors),
	})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
