// Package web carries the HTML templates and static assets, compiled directly
// into the binary with go:embed. Embedding means the deployed artifact is a
// single self-contained executable — nothing to copy alongside it, no "file not
// found" surprises when the container's working directory isn't what you
// expected. This is the standard way Go web apps ship their frontend files.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// The go:embed directive below tells the compiler to bundle everything under
// templates/ and static/ into the content variable at build time.
// It must sit immediately above the variable declaration to take effect.
//
//go:embed templates static
var content embed.FS

// Templates returns the template files as an http.FileSystem rooted at
// templates/, the form the Fiber view engine consumes. With that root
// stripped, views are addressed by bare name: c.Render("index", ...) finds
// index.html.
func Templates() http.FileSystem {
	return http.FS(mustSub("templates"))
}

// Static returns the static assets (CSS, JS) as an http.FileSystem rooted at
// static/, ready to mount behind Fiber's filesystem middleware under /static.
func Static() http.FileSystem {
	return http.FS(mustSub("static"))
}

// mustSub re-roots the embedded filesystem at dir.
// A failure here means the directive above and the directory layout disagree —
// a build-time mistake, so panicking at startup is the right response.
func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
