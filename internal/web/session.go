package web

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/William-WYL/portfolio/internal/session"
)

const sessionKey = "session"

// sessionMiddleware loads the visitor's state, starting a new session when the
// cookie is missing, malformed or expired.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var st session.State
		id, err := c.Cookie(session.CookieName)
		if err == nil && session.ValidID(id) {
			st, err = s.deps.Sessions.Load(ctx, id)
		}
		if err != nil || st.ID == "" {
			if err != nil && !errors.Is(err, session.ErrNotFound) && !errors.Is(err, http.ErrNoCookie) {
				log.Printf("Error loading session: %v", err)
			}
			st = session.New(s.now())
			if err := s.deps.Sessions.Save(ctx, st); err != nil {
				log.Printf("Error creating session: %v", err)
			}
		}

		cookie := session.Cookie(st.ID, s.cfg.SessionTTL)
		cookie.Secure = s.cfg.SecureCookies
		http.SetCookie(c.Writer, cookie)

		c.Set(sessionKey, st)
		c.Next()
	}
}

func (s *Server) session(c *gin.Context) session.State {
	st, _ := c.MustGet(sessionKey).(session.State)
	return st
}

// updateSession applies fn to the freshest stored copy of the visitor's state and
// saves it, so concurrent requests only overwrite the fields they touch.
func (s *Server) updateSession(c *gin.Context, fn func(st *session.State)) session.State {
	return s.updateSessionContext(c.Request.Context(), c, fn)
}

// updateSessionContext is updateSession with the store calls bound to ctx.
func (s *Server) updateSessionContext(ctx context.Context, c *gin.Context, fn func(st *session.State)) session.State {
	st := s.session(c)

	if fresh, err := s.deps.Sessions.Load(ctx, st.ID); err == nil {
		st = fresh
	}
	fn(&st)
	st.UpdatedAt = s.now()

	if err := s.deps.Sessions.Save(ctx, st); err != nil {
		log.Printf("Error saving session %s: %v", st.ID, err)
	}
	c.Set(sessionKey, st)
	return st
}
