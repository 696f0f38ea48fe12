package webassets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DeferMarker separates the critical (above-the-fold) part of a stylesheet
// from the remainder that can load after first paint.
const DeferMarker = "/*! defer */"

type splitResult struct {
	modTime  time.Time
	critical string
	deferred string
}

// Inliner splits stylesheets at the defer marker and memoizes the result per
// file until the file's mtime changes.
type Inliner struct {
	dir string

	mu    sync.Mutex
	cache map[string]*splitResult
}

func NewInliner(dir string) *Inliner {
	return &Inliner{
		dir:   dir,
		cache: make(map[string]*splitResult),
	}
}

// Split returns the critical and deferred parts of the named stylesheet,
// reading and re-splitting only when the file changed on disk.
func (in *Inliner) Split(name string) (critical, deferred string, err error) {
	path := filepath.Join(in.dir, filepath.Clean(name))
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("stylesheet %s not readable: %w", name, err)
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if cached, ok := in.cache[name]; ok && cached.modTime.Equal(info.ModTime()) {
		return cached.critical, cached.deferred, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("stylesheet %s not readable: %w", name, err)
	}

	critical, deferred, found := strings.Cut(string(raw), DeferMarker)
	if !found {
		// No marker: the whole sheet is critical.
		deferred = ""
	}

	in.cache[name] = &splitResult{
		modTime:  info.ModTime(),
		critical: critical,
		deferred: deferred,
	}

	return critical, deferred, nil
}

// IndexHandler serves the storefront landing page with the critical part of
// the stylesheet inlined and the remainder loaded after paint.
func (in *Inliner) IndexHandler(stylesheet string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		critical, _, err := in.Split(stylesheet)
		if err != nil {
			slog.WarnContext(c.Context(), "failed to split stylesheet", "stylesheet", stylesheet, "error", err)
			critical = ""
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(renderIndex(critical))
	}
}

// DeferredCSSHandler serves the non-critical remainder of the stylesheet.
func (in *Inliner) DeferredCSSHandler(stylesheet string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, deferred, err := in.Split(stylesheet)
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
		return c.SendString(deferred)
	}
}

const indexTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Loja</title>
<style>%s</style>
<link rel="stylesheet" href="/assets/css/deferred.css" media="print" onload="this.media='all'">
<noscript><link rel="stylesheet" href="/assets/css/deferred.css"></noscript>
</head>
<body>
<div id="app"></div>
<script src="/assets/js/app.js" defer></script>
</body>
</html>
`

func renderIndex(criticalCSS string) string {
	return fmt.Sprintf(indexTemplate, criticalCSS)
}
