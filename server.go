package main

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// mailHandoffEvent is the HX-Trigger event that opens the mail client.
const mailHandoffEvent = "mailHandoff"

//go:embed templates/*.html
var templateFS embed.FS

// contactView is the state of the contact form as rendered. A fresh value
// is an empty form.
type contactView struct {
	Name    string
	Email   string
	Message string
	Invalid map[string]bool
	Error   string
}

type pageData struct {
	Profile
	Theme    Theme
	Dark     bool
	Nav      *NavOverlay
	NavItems []NavItem
	Contact  NavItem
	Year     int
	Form     contactView
	Title    string
	Message  string
}

type site struct {
	cfg     Config
	profile Profile
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func newRouter(cfg Config) *gin.Engine {
	s := &site{cfg: cfg, profile: newProfile(cfg)}

	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(clientHintsMiddleware())

	r.Static("/images", cfg.ImagesDir)

	r.GET("/", s.home)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/theme/toggle", s.toggleTheme)

	r.GET("/nav/open", s.navOverlay(true))
	r.GET("/nav/close", s.navOverlay(false))
	r.GET("/nav/go/:id", s.navActivate)

	// HTMX contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form.html", s.page(c, nil))
	})
	r.POST("/contact", s.submitContact)

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "Page not found")
	})

	return r
}

// clientHintsMiddleware asks browsers to send their color-scheme preference.
func clientHintsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Assets do not depend on the theme
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/images/") || strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}
		c.Header("Accept-CH", colorSchemeHint)
		c.Header("Critical-CH", colorSchemeHint)
		c.Writer.Header().Add("Vary", colorSchemeHint)
		c.Next()
	}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (s *site) themeStore(c *gin.Context) ThemeStore {
	store := newCookieStore(c.Writer, c.Request, s.cfg.ThemeCookieMaxAge, s.cfg.CookieSecure)
	return NewThemeStore(store, requestAmbientSignal(c.Request))
}

// page builds the render data. A nil cell resolves the theme without
// writing it back.
func (s *site) page(c *gin.Context, cell *ThemeCell) pageData {
	var dark bool
	if cell != nil {
		dark = cell.Value()
	} else {
		dark = s.themeStore(c).Initialize()
	}
	return pageData{
		Profile:  s.profile,
		Theme:    themeFor(dark),
		Dark:     dark,
		Nav:      &NavOverlay{},
		NavItems: NavItems,
		Contact:  ContactNavItem,
		Year:     time.Now().Year(),
	}
}

func (s *site) home(c *gin.Context) {
	cell := LoadThemeCell(s.themeStore(c))
	data := s.page(c, cell)
	if c.Query("menu") == "open" {
		data.Nav.Open()
	}
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *site) toggleTheme(c *gin.Context) {
	cell := NewThemeCell(s.themeStore(c))
	cell.Toggle()

	if isHTMX(c) {
		trigger, _ := json.Marshal(map[string]any{
			"themeChanged": map[string]string{"theme": string(cell.Theme())},
		})
		c.Header("HX-Trigger", string(trigger))
		c.HTML(http.StatusOK, "theme-toggle.html", s.page(c, cell))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *site) navOverlay(open bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isHTMX(c) {
			target := "/"
			if open {
				target = "/?menu=open"
			}
			c.Redirect(http.StatusSeeOther, target)
			return
		}
		data := s.page(c, nil)
		if open {
			data.Nav.Open()
		} else {
			data.Nav.Close()
		}
		c.HTML(http.StatusOK, "nav-overlay.html", data)
	}
}

func (s *site) navActivate(c *gin.Context) {
	nav := &NavOverlay{}
	nav.Open()
	item, ok := nav.Activate(c.Param("id"))
	if !ok {
		s.renderError(c, http.StatusNotFound, "Page not found")
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+item.Href())
}

// Handle contact form submission. Delivery is left to the visitor's mail
// client; nothing is sent from here.
func (s *site) submitContact(c *gin.Context) {
	var draft ContactFormDraft
	if err := c.ShouldBind(&draft); err != nil {
		data := s.page(c, nil)
		data.Form = contactView{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Message: c.PostForm("message"),
			Invalid: invalidContactFields(err),
			Error:   "Please fill in your name, email address and a message.",
		}
		// htmx only swaps 2xx responses
		if isHTMX(c) {
			c.HTML(http.StatusOK, "contact-form.html", data)
			return
		}
		c.HTML(http.StatusUnprocessableEntity, "index.html", data)
		return
	}

	mailto := BuildMailto(s.profile.Recipient, draft)
	if isHTMX(c) {
		// The empty form is swapped in, then the page listener follows the
		// handoff. HX-Redirect would skip the swap.
		trigger, _ := json.Marshal(map[string]any{
			mailHandoffEvent: map[string]string{"href": mailto},
		})
		c.Header("HX-Trigger", string(trigger))
		c.HTML(http.StatusOK, "contact-form.html", s.page(c, nil))
		return
	}
	c.Redirect(http.StatusSeeOther, mailto)
}

func (s *site) renderError(c *gin.Context, status int, message string) {
	data := s.page(c, nil)
	data.Title = http.StatusText(status)
	data.Message = message
	c.HTML(status, "error.html", data)
}
