package site

import "html/template"

const pageTemplates = `
{{- define "head" -}}
<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.Stylesheet}}">
</head>
{{end -}}

{{- define "post" -}}
{{template "head" .}}<body>
  <nav class="site-nav"><a href="index.html">&larr; {{.SiteTitle}}</a></nav>
  <article class="post">
    <h1 class="post-title">{{.Title}}</h1>
    <p class="post-summary">{{.Summary}}</p>
    <div class="post-content">
{{.Content}}    </div>
  </article>
</body>
</html>
{{end -}}

{{- define "entry-link" -}}
  <div class="post">
    <h2 class="post-title"><a href="{{.Href}}">{{.Title}}</a></h2>
    <p class="post-summary">{{.Summary}}</p>
  </div>
{{end -}}

{{- define "entry-inline" -}}
  <div class="post">
    <h2 class="post-title toggle" onclick="toggleContent(this)">{{.Title}}</h2>
    <p class="post-summary">{{.Summary}}</p>
    <div class="post-content">
{{.Content}}      <p class="permalink"><a href="{{.Href}}">Permalink</a></p>
    </div>
  </div>
{{end -}}

{{- define "index" -}}
{{template "head" .}}<body>
  <h1>{{.Title}}</h1>
  <div id="posts-list" class="post-list">
{{.Entries}}  </div>
{{- if .Inline}}
  <script>
    function toggleContent(title) {
      title.parentElement.classList.toggle('expanded');
    }
  </script>
{{- end}}
</body>
</html>
{{end -}}
`

var templates = template.Must(template.New("site").Parse(pageTemplates))

const stylesheet = `body {
  font-family: Arial, sans-serif;
  max-width: 48rem;
  margin: 0 auto;
  padding: 1rem;
  line-height: 1.5;
}

.site-nav {
  margin-bottom: 1rem;
}

.post {
  margin-bottom: 2rem;
}

.post-title a,
.post-title.toggle {
  cursor: pointer;
  color: blue;
  text-decoration: underline;
}

.post-summary {
  font-style: italic;
}

.post-content {
  padding: 10px 0;
}

.post-list .post-content {
  display: none;
}

.post-list .post.expanded .post-content {
  display: block;
}

table {
  border-collapse: collapse;
}

th,
td {
  border: 1px solid #ccc;
  padding: 0.25rem 0.5rem;
}

pre {
  overflow-x: auto;
  background: #f6f8fa;
  padding: 0.5rem;
}
`
