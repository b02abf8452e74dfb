package handlers

import "html/template"

// Server-rendered pages for the UI. Kept deliberately small: the UI is a
// thin shell around the mapping service.

var pages = template.Must(template.New("pages").Parse(`
{{define "layout_head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>shortlink</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; padding: 0 1rem; }
input[type=text] { width: 100%; padding: .4rem; margin: .3rem 0 1rem; }
.error { color: #b00; }
code { background: #f4f4f4; padding: .1rem .3rem; }
</style>
</head>
<body>{{end}}

{{define "layout_foot"}}</body>
</html>{{end}}

{{define "welcome"}}{{template "layout_head"}}
<h1>shortlink</h1>
<p>A small URL shortener. Append a short code to this origin to be
redirected to the stored URL.</p>
<ul>
<li><a href="/short">Create a short link</a> (login required)</li>
<li><a href="/api-docs">API documentation</a></li>
</ul>
{{template "layout_foot"}}{{end}}

{{define "form"}}{{template "layout_head"}}
<h1>Create a short link</h1>
<form method="POST" action="/short">
<label for="url">URL to shorten</label>
<input type="text" id="url" name="url" placeholder="https://example.com/some/long/path">
<label for="custom_code">Custom code (optional)</label>
<input type="text" id="custom_code" name="custom_code" placeholder="leave empty to generate">
<button type="submit">Shorten</button>
</form>
<p>Programmatic access: see the <a href="/api-docs">API documentation</a>.</p>
{{template "layout_foot"}}{{end}}

{{define "success"}}{{template "layout_head"}}
<h1>Short link created</h1>
<p>Your short link: <a href="{{.ShortURL}}"><code>{{.ShortURL}}</code></a></p>
<p>It redirects to: <code>{{.OriginalURL}}</code></p>
<p><a href="/short">Create another</a></p>
{{template "layout_foot"}}{{end}}

{{define "notfound"}}{{template "layout_head"}}
<h1>Not found</h1>
<p>No short link exists for <code>{{.Code}}</code>.</p>
<p><a href="/">Back to start</a></p>
{{template "layout_foot"}}{{end}}
`))
