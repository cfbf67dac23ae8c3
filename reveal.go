package main

import (
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/muthukumaran/portfolio/internal/reveal"
)

type revealEvent struct {
	name  string
	state reveal.State
}

// handleReveal streams the hero typewriter as server-sent events: a
// "name" event per name prefix, then a "role" event per role prefix.
// The role only starts once the name is complete. The stream ends after
// the role completes, and a client disconnect tears both reveals down.
func (s *server) handleReveal(c *gin.Context) {
	profile := s.site.Profile
	opts := []reveal.Option{reveal.WithPreDelay(s.cfg.RevealPreDelay)}
	name := reveal.New(s.clock, profile.Name, s.cfg.RevealSpeed, opts...)
	role := reveal.New(s.clock, profile.Role, s.cfg.RevealSpeed, opts...)
	defer name.Stop()
	defer role.Stop()

	// Each reveal publishes one state on enable plus one per rune, so
	// the buffer holds the whole run and listeners never wait on us.
	capacity := utf8.RuneCountInString(profile.Name) + utf8.RuneCountInString(profile.Role) + 2
	events := make(chan revealEvent, capacity)
	ctx := c.Request.Context()
	forward := func(event string) func(reveal.State) {
		return func(state reveal.State) {
			select {
			case events <- revealEvent{name: event, state: state}:
			case <-ctx.Done():
			}
		}
	}
	name.Subscribe(forward("name"))
	role.Subscribe(forward("role"))
	reveal.Chain(name, role)

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	name.SetEnabled(true)

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, gin.H{
				"text":     ev.state.Prefix(),
				"complete": ev.state.Complete(),
			})
			return !(ev.name == "role" && ev.state.Complete())
		case <-ctx.Done():
			return false
		}
	})
}
