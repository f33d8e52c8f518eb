package web

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/William-WYL/portfolio/internal/carousel"
	"github.com/William-WYL/portfolio/internal/contact"
	"github.com/William-WYL/portfolio/internal/content"
	"github.com/William-WYL/portfolio/internal/session"
	"github.com/William-WYL/portfolio/internal/store"
	"github.com/William-WYL/portfolio/internal/theme"
)

// staleSubmission is how long a submission may sit in the submitting state before
// the session is considered abandoned mid-dispatch.
const staleSubmission = 2 * time.Minute

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (s *Server) getIndex(c *gin.Context) {
	c.Header("Accept-CH", theme.HintHeader)
	c.HTML(http.StatusOK, "index.html", s.buildPage(c, s.session(c)))
}

// postTheme is the single place the theme changes: it flips the stored preference.
func (s *Server) postTheme(c *gin.Context) {
	next := theme.FromRequest(c.Request).Toggle()
	http.SetCookie(c.Writer, theme.Cookie(next))

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) getSection(c *gin.Context) {
	id := c.Param("id")
	if _, ok := content.SectionByID(id); !ok {
		c.Status(http.StatusNotFound)
		return
	}

	ratio, err := strconv.ParseFloat(c.DefaultQuery("ratio", "0"), 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var visible bool
	st := s.updateSession(c, func(st *session.State) {
		board := s.boardFor(*st)
		visible = board.Observe(id, ratio)
		st.Revealed = board.Revealed()
	})
	if !visible {
		c.Status(http.StatusNoContent)
		return
	}

	page := s.buildPage(c, st)
	sv, _ := page.section(id)
	sv.Visible = true
	c.HTML(http.StatusOK, "section-"+id, sv)
}

// carouselAction runs fn against the visitor's carousel and renders the result.
// fn returns false when nothing changed, which answers 204 so HTMX keeps the DOM.
func (s *Server) carouselAction(c *gin.Context, fn func(cr *carousel.Carousel) (bool, error)) {
	var changed bool
	var actionErr error
	st := s.updateSession(c, func(st *session.State) {
		cr := s.carouselFor(*st)
		changed, actionErr = fn(cr)
		if actionErr == nil {
			st.Carousel = cr.State()
		}
	})

	if actionErr != nil {
		c.String(http.StatusBadRequest, actionErr.Error())
		return
	}
	if !changed {
		c.Status(http.StatusNoContent)
		return
	}
	s.renderCarousel(c, st)
}

func (s *Server) renderCarousel(c *gin.Context, st session.State) {
	page := s.buildPage(c, st)
	c.HTML(http.StatusOK, "certificates", page)
}

func (s *Server) getCertifications(c *gin.Context) {
	layout := c.Query("layout")
	if layout == "" {
		s.renderCarousel(c, s.session(c))
		return
	}

	st := s.updateSession(c, func(st *session.State) {
		cr := s.carouselFor(*st)
		cr.SetCompact(layout == "compact")
		st.Carousel = cr.State()
	})
	s.renderCarousel(c, st)
}

func (s *Server) postCertNext(c *gin.Context) {
	s.carouselAction(c, func(cr *carousel.Carousel) (bool, error) {
		cr.Next(s.now())
		return true, nil
	})
}

func (s *Server) postCertPrev(c *gin.Context) {
	s.carouselAction(c, func(cr *carousel.Carousel) (bool, error) {
		cr.Prev(s.now())
		return true, nil
	})
}

// postCertTick is the auto-advance timer firing in the browser.
func (s *Server) postCertTick(c *gin.Context) {
	s.carouselAction(c, func(cr *carousel.Carousel) (bool, error) {
		return cr.Tick(s.now()), nil
	})
}

func (s *Server) postCertJump(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid page index")
		return
	}
	s.carouselAction(c, func(cr *carousel.Carousel) (bool, error) {
		return true, cr.Jump(index, s.now())
	})
}

func (s *Server) postCertOpen(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	if _, ok := s.deps.Catalog.Certificate(id); !ok {
		c.Status(http.StatusNotFound)
		return
	}
	s.carouselAction(c, func(cr *carousel.Carousel) (bool, error) {
		cr.Open(id)
		return true, nil
	})
}

func (s *Server) postCertClose(c *gin.Context) {
	s.carouselAction(c, func(cr *carousel.Carousel) (bool, error) {
		cr.Close()
		return true, nil
	})
}

func (s *Server) getContactForm(c *gin.Context) {
	page := s.buildPage(c, s.session(c))
	c.HTML(http.StatusOK, "contact-form", page.Contact)
}

func (s *Server) postContact(c *gin.Context) {
	var form contact.FormState
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	st := s.session(c)
	snap := st.Contact
	if snap.Status == contact.StatusSubmitting && s.now().Sub(snap.StartedAt) > staleSubmission {
		snap.Status = contact.StatusIdle
	}

	flow := contact.RestoreFlow(s.deps.Relay, s.deps.Contact, snap)
	flow.Update(form)

	sent, err := flow.Begin()
	if err != nil {
		view := contactViewOf(snap)
		view.Form = form
		switch {
		case errors.Is(err, contact.ErrInFlight):
			c.HTML(http.StatusConflict, "contact-form", view)
		case errors.Is(err, contact.ErrInvalidForm):
			view.Invalid = strings.TrimSuffix(err.Error(), ": "+contact.ErrInvalidForm.Error())
			c.HTML(http.StatusUnprocessableEntity, "contact-form", view)
		default:
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}

	// Once begun, the submission is settled and recorded even if the visitor leaves.
	ctx := context.WithoutCancel(c.Request.Context())

	// Publish the submitting state before dispatching so a second submit is refused.
	s.updateSessionContext(ctx, c, func(st *session.State) { st.Contact = flow.Snapshot() })

	out := flow.Dispatch(ctx, sent)
	contact.LogOutcome(sent, out)
	flow.Finish(out)

	st = s.updateSessionContext(ctx, c, func(st *session.State) { st.Contact = flow.Snapshot() })
	s.logSubmission(ctx, st.ID, sent, flow.Snapshot())

	view := contactViewOf(st.Contact)
	c.HTML(http.StatusOK, "contact-form", view)
}

func (s *Server) logSubmission(ctx context.Context, sessionID string, form contact.FormState, snap contact.Snapshot) {
	if s.deps.DB == nil {
		return
	}
	_, err := s.deps.DB.RecordSubmission(ctx, store.Submission{
		SessionID:     sessionID,
		SenderName:    form.Name,
		SenderEmail:   form.Email,
		Subject:       form.Subject,
		Status:        string(snap.Status),
		InboxSent:     snap.InboxSent,
		AutoReplySent: snap.AutoReplySent,
		Error:         snap.Error,
		CreatedAt:     s.now(),
	})
	if err != nil {
		log.Printf("Error recording submission: %v", err)
	}
}

func (s *Server) getContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Catalog)
}

func (s *Server) getSections(c *gin.Context) {
	c.JSON(http.StatusOK, content.Sections())
}
