// Package mailto builds the contact form's mailto: link.
package mailto

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSubject is used when the form's subject is left blank.
const DefaultSubject = "Portfolio Contact"

// Values holds the contact form fields.
type Values struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// SubjectLine returns the subject, falling back to DefaultSubject.
func (v Values) SubjectLine() string {
	if v.Subject == "" {
		return DefaultSubject
	}
	return v.Subject
}

// Body returns the unencoded message body.
func Body(v Values) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", v.Name, v.Email, v.Message)
}

// Build returns mailto:<to>?subject=...&body=... with every
// interpolated field percent-encoded.
func Build(to string, v Values) string {
	return "mailto:" + to +
		"?subject=" + Escape(v.SubjectLine()) +
		"&body=" + Escape(Body(v))
}

// Escape percent-encodes s for use as a query component. Spaces become
// %20 rather than '+', which mail clients do not decode.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
