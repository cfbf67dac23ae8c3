package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/muthukumaran/portfolio/web"
)

// export writes a self-contained static copy of the site to dir. The
// page is rendered in static mode: the full name and role are shown
// without the streamed reveal, and the contact form builds its mailto:
// link in the browser.
func (s *server) export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	var page bytes.Buffer
	if err := s.templates.ExecuteTemplate(&page, "index.html", s.page(true)); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	if err := copyTree(filepath.Join(dir, "static"), web.Static()); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	images, err := os.Stat(s.cfg.ImagesDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Warn("images directory missing, exporting without images", "dir", s.cfg.ImagesDir)
	case err != nil:
		return fmt.Errorf("stat images: %w", err)
	case !images.IsDir():
		return fmt.Errorf("images path %s is not a directory", s.cfg.ImagesDir)
	default:
		if err := copyTree(filepath.Join(dir, "images"), os.DirFS(s.cfg.ImagesDir)); err != nil {
			return fmt.Errorf("copy images: %w", err)
		}
	}

	s.logger.Info("static site exported", "dir", dir)
	return nil
}

// copyTree copies every regular file in src into dst, overwriting
// existing files.
func copyTree(dst string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
