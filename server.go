package main

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/salan223/portfolio/internal/gallery"
	"github.com/salan223/portfolio/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "gallery_session"

type server struct {
	sessions *session.Store
}

func newRouter(sessions *session.Store) *gin.Engine {
	s := &server{sessions: sessions}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", s.index)

	// Photography gallery fragments, swapped into #gallery by HTMX
	r.GET("/gallery", s.gallery)
	r.POST("/gallery/category", s.setCategory)
	r.POST("/gallery/open", s.open)
	r.POST("/gallery/advance", s.advance)
	r.POST("/gallery/close", s.close)
	r.POST("/gallery/key", s.key)

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Send me a message",
		})
	})
	r.POST("/contact", handleContact)

	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":  "Privacy Policy",
			"cookie": sessionCookie,
			"ttl":    sessions.TTL().String(),
		})
	})

	return r
}

func (s *server) index(c *gin.Context) {
	sess := s.visitor(c)
	var view galleryView
	sess.Do(func(g *gallery.Gallery, _ *gallery.Dispatcher) {
		view = newGalleryView(g)
	})

	c.HTML(http.StatusOK, "index.html", gin.H{
		"name":           OwnerName,
		"title":          OwnerTitle,
		"location":       Location,
		"education":      Education,
		"status":         Status,
		"phrases":        Phrases,
		"navigation":     Navigation,
		"tools":          Tools,
		"experience":     Experience,
		"projects":       Projects,
		"contactMethods": ContactMethods,
		"instagram":      InstagramURL,
		"gallery":        view,
	})
}

func (s *server) gallery(c *gin.Context) {
	s.update(c, func(*gallery.Gallery, *gallery.Dispatcher) error { return nil })
}

func (s *server) setCategory(c *gin.Context) {
	category, ok := gallery.ParseCategory(c.PostForm("category"))
	if !ok {
		badRequest(c, "Unknown category.")
		return
	}
	s.update(c, func(g *gallery.Gallery, _ *gallery.Dispatcher) error {
		g.SetCategory(category)
		return nil
	})
}

func (s *server) open(c *gin.Context) {
	index, err := strconv.Atoi(c.PostForm("index"))
	if err != nil {
		badRequest(c, "Invalid photo.")
		return
	}
	s.update(c, func(g *gallery.Gallery, _ *gallery.Dispatcher) error {
		return g.Open(index)
	})
}

func (s *server) advance(c *gin.Context) {
	direction, ok := gallery.ParseDirection(c.PostForm("direction"))
	if !ok {
		badRequest(c, "Invalid direction.")
		return
	}
	s.update(c, func(g *gallery.Gallery, _ *gallery.Dispatcher) error {
		g.Advance(direction)
		return nil
	})
}

func (s *server) close(c *gin.Context) {
	s.update(c, func(g *gallery.Gallery, _ *gallery.Dispatcher) error {
		g.Close()
		return nil
	})
}

// key routes a browser key press to whatever the visitor has bound. With the
// lightbox closed nothing is bound and the press is ignored.
func (s *server) key(c *gin.Context) {
	k, ok := gallery.ParseKey(c.PostForm("key"))
	if !ok {
		badRequest(c, "Unsupported key.")
		return
	}
	s.update(c, func(_ *gallery.Gallery, keys *gallery.Dispatcher) error {
		keys.Dispatch(k)
		return nil
	})
}

// update applies fn to the visitor's gallery and renders the result.
func (s *server) update(c *gin.Context, fn func(*gallery.Gallery, *gallery.Dispatcher) error) {
	sess := s.visitor(c)

	var (
		view galleryView
		err  error
	)
	sess.Do(func(g *gallery.Gallery, keys *gallery.Dispatcher) {
		if err = fn(g, keys); err != nil {
			return
		}
		view = newGalleryView(g)
		log.Debug().
			Str("session", sess.ID).
			Str("category", string(g.Category())).
			Stringer("lightbox", g.Lightbox()).
			Msg("gallery updated")
	})

	if errors.Is(err, gallery.ErrIndexOutOfRange) {
		badRequest(c, "That photo is not in the current view.")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("gallery update failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong."})
		return
	}
	c.HTML(http.StatusOK, "gallery", view)
}

// visitor returns the caller's gallery session, starting one if needed.
func (s *server) visitor(c *gin.Context) *session.Session {
	id, _ := c.Cookie(sessionCookie)
	sess, created := s.sessions.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

func badRequest(c *gin.Context, msg string) {
	c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": msg})
}

type categoryButton struct {
	Name   gallery.Category
	Active bool
}

type tile struct {
	Index int
	Photo gallery.Photo
}

// galleryView is what the gallery templates render.
type galleryView struct {
	Category   gallery.Category
	Categories []categoryButton
	Tiles      []tile
	Slide      *gallery.Slide
}

func newGalleryView(g *gallery.Gallery) galleryView {
	v := galleryView{Category: g.Category()}
	for _, c := range gallery.Categories() {
		v.Categories = append(v.Categories, categoryButton{Name: c, Active: c == g.Category()})
	}
	for i, p := range g.Photos() {
		v.Tiles = append(v.Tiles, tile{Index: i, Photo: p})
	}
	if slide, ok := g.Current(); ok {
		v.Slide = &slide
	}
	return v
}
