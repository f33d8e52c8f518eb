package web

import (
	"github.com/gin-gonic/gin"

	"github.com/William-WYL/portfolio/internal/carousel"
	"github.com/William-WYL/portfolio/internal/contact"
	"github.com/William-WYL/portfolio/internal/content"
	"github.com/William-WYL/portfolio/internal/reveal"
	"github.com/William-WYL/portfolio/internal/session"
	"github.com/William-WYL/portfolio/internal/theme"
)

// pageData is the model of the whole page. Every view gets the theme from here.
type pageData struct {
	Theme    theme.Theme
	Catalog  content.Catalog
	Sections []sectionView
	Carousel carouselView
	Contact  contactView
	SplashMS int64
	Year     int
}

type sectionView struct {
	content.Section
	Visible bool
	Page    *pageData
}

type carouselView struct {
	Cards      []content.Certificate
	Page       int
	TotalPages int
	Pages      []int
	Compact    bool
	Expanded   *content.Certificate
	IntervalMS int64
}

type contactView struct {
	Form       contact.FormState
	Status     contact.Status
	Error      string
	Invalid    string
	Submitting bool
	Success    bool
	Failed     bool
}

func (s *Server) carouselFor(st session.State) *carousel.Carousel {
	return carousel.Restore(st.Carousel, len(s.deps.Catalog.Certificates),
		s.cfg.CarouselPageSize, s.cfg.CarouselInterval, s.now())
}

func (s *Server) boardFor(st session.State) *reveal.Board {
	b := content.NewBoard()
	b.Restore(st.Revealed)
	return b
}

func (s *Server) carouselView(c *carousel.Carousel) carouselView {
	certs := s.deps.Catalog.Certificates
	start, end := c.Window(len(certs))

	v := carouselView{
		Cards:      certs[start:end],
		Page:       c.Page(),
		TotalPages: c.TotalPages(),
		Compact:    c.Compact(),
		IntervalMS: s.cfg.CarouselInterval.Milliseconds(),
	}
	for i := 0; i < v.TotalPages; i++ {
		v.Pages = append(v.Pages, i)
	}
	if c.OverlayOpen() {
		if cert, ok := s.deps.Catalog.Certificate(c.Expanded()); ok {
			v.Expanded = &cert
		}
	}
	return v
}

func contactViewOf(snap contact.Snapshot) contactView {
	status := snap.Status
	if status == "" {
		status = contact.StatusIdle
	}
	return contactView{
		Form:       snap.Form,
		Status:     status,
		Error:      snap.Error,
		Submitting: status == contact.StatusSubmitting,
		Success:    status == contact.StatusSuccess,
		Failed:     status == contact.StatusError,
	}
}

// buildPage assembles the page model for the visitor.
func (s *Server) buildPage(c *gin.Context, st session.State) *pageData {
	p := &pageData{
		Theme:    theme.FromRequest(c.Request),
		Catalog:  s.deps.Catalog,
		Carousel: s.carouselView(s.carouselFor(st)),
		Contact:  contactViewOf(st.Contact),
		SplashMS: s.cfg.SplashDuration.Milliseconds(),
		Year:     s.now().Year(),
	}

	board := s.boardFor(st)
	for _, sec := range content.Sections() {
		p.Sections = append(p.Sections, sectionView{
			Section: sec,
			Visible: board.Visible(sec.ID),
			Page:    p,
		})
	}
	return p
}

func (p *pageData) section(id string) (sectionView, bool) {
	for _, sv := range p.Sections {
		if sv.ID == id {
			return sv, true
		}
	}
	return sectionView{}, false
}

// Section is the template-facing lookup of a section by id.
func (p *pageData) Section(id string) sectionView {
	sv, _ := p.section(id)
	return sv
}
