// Package content holds the site's declarative data: profile, skills,
// projects and contact details. The default site is embedded; a YAML
// file with the same shape can replace it.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid site content")

const (
	defaultProficiency = "Intermediate–Advanced"
	defaultFocus       = "UX, reliability, performance"
)

var defaultTech = []string{"React", "TypeScript", "Node", "MongoDB"}

type Site struct {
	Profile  Profile   `yaml:"profile"`
	Skills   []Skill   `yaml:"skills"`
	Projects []Project `yaml:"projects"`
	Contact  Contact   `yaml:"contact"`
}

type Profile struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Lead    string `yaml:"lead"`
	About   string `yaml:"about"` // Markdown
	Image   string `yaml:"image"`
	Socials []Link `yaml:"socials"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Skill struct {
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Proficiency string `yaml:"proficiency"`
}

// Monogram is the short label drawn in place of a logo.
func (s Skill) Monogram() string {
	var b strings.Builder
	for _, r := range s.Name {
		if r == '.' || r == ' ' {
			continue
		}
		b.WriteRune(r)
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"` // Markdown
	Image       string   `yaml:"image"`
	Tech        []string `yaml:"tech"`
	Focus       string   `yaml:"focus"`
	CaseStudy   string   `yaml:"case_study"`
}

type Contact struct {
	Email string `yaml:"email"`
	Lead  string `yaml:"lead"`
}

var (
	defaultOnce sync.Once
	defaultErr  error
	defaultVal  *Site
)

// Default returns the embedded site. Each call returns a fresh copy.
func Default() (*Site, error) {
	defaultOnce.Do(func() {
		defaultVal, defaultErr = Load(bytes.NewReader(defaultSite))
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultVal.clone(), nil
}

// LoadFile reads a site from a YAML file.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()

	site, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Load decodes a site from YAML, fills defaults and validates it.
// Unknown keys are rejected.
func Load(r io.Reader) (*Site, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var site Site
	if err := decoder.Decode(&site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	site.applyDefaults()
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) applyDefaults() {
	for i := range s.Skills {
		if s.Skills[i].Proficiency == "" {
			s.Skills[i].Proficiency = defaultProficiency
		}
	}
	for i := range s.Projects {
		p := &s.Projects[i]
		if len(p.Tech) == 0 {
			p.Tech = append([]string(nil), defaultTech...)
		}
		if p.Focus == "" {
			p.Focus = defaultFocus
		}
	}
}

// Validate reports the first missing or conflicting field.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Profile.Name) == "" {
		return fmt.Errorf("%w: profile.name is required", ErrInvalid)
	}
	if strings.TrimSpace(s.Contact.Email) == "" {
		return fmt.Errorf("%w: contact.email is required", ErrInvalid)
	}
	for i, link := range s.Profile.Socials {
		if link.Label == "" || link.URL == "" {
			return fmt.Errorf("%w: profile.socials[%d] needs label and url", ErrInvalid, i)
		}
	}
	for i, skill := range s.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			return fmt.Errorf("%w: skills[%d].name is required", ErrInvalid, i)
		}
	}
	seen := make(map[string]bool, len(s.Projects))
	for i, p := range s.Projects {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			return fmt.Errorf("%w: projects[%d].title is required", ErrInvalid, i)
		}
		if seen[title] {
			return fmt.Errorf("%w: duplicate project title %q", ErrInvalid, title)
		}
		seen[title] = true
	}
	return nil
}

func (s *Site) clone() *Site {
	c := *s
	c.Profile.Socials = append([]Link(nil), s.Profile.Socials...)
	c.Skills = append([]Skill(nil), s.Skills...)
	c.Projects = make([]Project, len(s.Projects))
	for i, p := range s.Projects {
		p.Tech = append([]string(nil), p.Tech...)
		c.Projects[i] = p
	}
	return &c
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown renders src to HTML. Raw HTML in src is dropped.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
