package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muthukumaran/portfolio/internal/mailto"
)

// handleContact turns a submitted form into a mailto: navigation. HTMX
// requests get an HX-Redirect header, plain form posts a 303.
func (s *server) handleContact(c *gin.Context) {
	var values mailto.Values
	if err := c.ShouldBind(&values); err != nil {
		s.logger.Debug("contact form rejected", "error", err)
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": "Please enter your name and a valid email address.",
		})
		return
	}

	href := mailto.Build(s.site.Contact.Email, values)
	s.logger.Info("contact mailto built", "has_subject", values.Subject != "", "message_len", len(values.Message))

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", href)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, href)
}

// handleContactLink renders the "Open in Email App" link for the form's
// current, possibly incomplete, values.
func (s *server) handleContactLink(c *gin.Context) {
	values := mailto.Values{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Subject: c.Query("subject"),
		Message: c.Query("message"),
	}
	c.HTML(http.StatusOK, "contact-link.html", gin.H{
		"MailtoHref": mailto.Build(s.site.Contact.Email, values),
	})
}
