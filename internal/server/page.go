// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"slices"
	"strings"

	"rsc.io/mdview"
)

// A pageData is the input to pageTemplate.
type pageData struct {
	Title       string
	Path        string
	FrontMatter []metaField
	Outline     []mdview.OutlineEntry
	Regions     []mdview.Region
	Body        template.HTML
	LiveReload  bool
}

type metaField struct {
	Key   string
	Value string
}

type indexData struct {
	Docs []string
}

func newPageData(name string, doc *mdview.Document, live bool) *pageData {
	d := &pageData{
		Title:      doc.FrontMatter.String("title"),
		Path:       name,
		Outline:    doc.Outline,
		Regions:    doc.Regions,
		Body:       template.HTML(doc.HTML), // produced by the renderer
		LiveReload: live,
	}
	if d.Title == "" {
		d.Title = path.Base(name)
	}
	for k, v := range doc.FrontMatter {
		d.FrontMatter = append(d.FrontMatter, metaField{k, fmt.Sprint(v)})
	}
	slices.SortFunc(d.FrontMatter, func(a, b metaField) int {
		return strings.Compare(a.Key, b.Key)
	})
	return d
}

// writePage executes t into a buffer first,
// so a template failure still produces a clean error response.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		s.error(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

var funcs = template.FuncMap{
	"indent": func(level int) int { return (level - 1) * 12 },
}

var pageTemplate = template.Must(template.New("page").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/highlight.css">
<style>
body { display: flex; margin: 0; font-family: sans-serif; }
nav.outline { width: 16rem; padding: 1rem; border-right: 1px solid #ddd; position: sticky; top: 0; height: 100vh; overflow-y: auto; }
nav.outline a { display: block; color: #333; text-decoration: none; margin: 0.2rem 0; }
main { flex: 1; padding: 1rem 2rem; max-width: 60rem; }
table.front-matter { border-collapse: collapse; margin-bottom: 1rem; font-size: 0.9rem; }
table.front-matter td { border: 1px solid #ddd; padding: 0.2rem 0.5rem; }
.markdown-code-block { border: 1px solid #ddd; border-radius: 6px; margin: 1rem 0; }
.markdown-code-header { display: flex; gap: 0.5rem; align-items: center; padding: 0.3rem 0.6rem; background: #f4f4f4; }
.markdown-code-dots span { display: inline-block; width: 0.6rem; height: 0.6rem; border-radius: 50%; background: #ccc; margin-right: 0.2rem; }
.markdown-code-copy { margin-left: auto; }
.markdown-code-block pre { margin: 0; padding: 0.6rem; overflow-x: auto; }
.markdown-blockquote { border-left: 4px solid #ddd; margin: 0; padding-left: 1rem; color: #555; white-space: pre-line; }
.markdown-table { border-collapse: collapse; }
.markdown-table th, .markdown-table td { border: 1px solid #ddd; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
<nav class="outline">
<a href="/">Index</a>
<hr>
{{range .Outline}}<a href="#{{.ID}}" data-heading-id="{{.ID}}" style="padding-left: {{indent .Level}}px">{{.Title}}</a>
{{end}}</nav>
<main>
{{with .FrontMatter}}<table class="front-matter">
{{range .}}<tr><td>{{.Key}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}{{.Body}}
</main>
<script>
const regions = {{.Regions}};
for (const r of regions || []) {
	const button = document.querySelector('[data-copy-target="' + r.id + '"]');
	if (!button) continue;
	button.addEventListener('click', () => {
		navigator.clipboard.writeText(r.text).then(() => {
			button.textContent = 'Copied';
			setTimeout(() => { button.textContent = 'Copy'; }, 1500);
		});
	});
}
{{if .LiveReload}}
(function() {
	const path = {{.Path}};
	const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/live');
	ws.onmessage = (ev) => {
		const msg = JSON.parse(ev.data);
		if (msg.type === 'reload' && msg.path === path) {
			location.reload();
		}
	};
})();
{{end}}
</script>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Documents</title>
</head>
<body>
<h1>Documents</h1>
<ul>
{{range .Docs}}<li><a href="/view/{{.}}">{{.}}</a></li>
{{else}}<li>No documents.</li>
{{end}}</ul>
</body>
</html>
`))
