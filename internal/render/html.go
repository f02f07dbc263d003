package render

import (
	"fmt"
	"html/template"
	"io"
	"regexp"

	"github.com/jask/pospreview/internal/view"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HTML writes root as a standalone document.
func HTML(w io.Writer, root view.Node) error {
	return pageTemplate.Execute(w, root)
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"fill":    fill,
	"accent":  accent,
	"columns": columns,
	"tone":    toneClass,
}).Parse(pageHTML + nodeHTML))

// fill returns the background declaration for st. Colors that are not
// "#rrggbb" are dropped so data can never inject CSS.
func fill(st view.Style) template.CSS {
	if !hexColor.MatchString(st.Background) {
		return ""
	}
	if hexColor.MatchString(st.BackgroundEnd) {
		return template.CSS(fmt.Sprintf("background: linear-gradient(135deg, %s 0%%, %s 100%%);", st.Background, st.BackgroundEnd))
	}
	return template.CSS("background: " + st.Background + ";")
}

func accent(st view.Style) template.CSS {
	if !hexColor.MatchString(st.Accent) {
		return ""
	}
	return template.CSS("--accent: " + st.Accent + ";")
}

func columns(n int) template.CSS {
	if n <= 0 {
		return ""
	}
	return template.CSS(fmt.Sprintf("grid-template-columns: repeat(%d, minmax(0, 1fr));", n))
}

func toneClass(st view.Style) string {
	if st.Tone == view.ToneNeutral {
		return ""
	}
	return "tone-" + string(st.Tone)
}

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { --accent: #1976d2; --success: #2e7d32; --error: #c62828; --info: #0288d1; --muted: #757575; }
body { margin: 0; font-family: system-ui, sans-serif; background: #f5f5f5; color: #212121; }
main { max-width: 1100px; margin: 0 auto; padding: 24px; display: flex; flex-direction: column; gap: 24px; }
header, footer { border-radius: 8px; padding: 32px; }
header h1 { margin: 0 0 8px; }
.centered { text-align: center; }
.logo { display: inline-block; width: 96px; height: 96px; line-height: 96px; border-radius: 50%; font-size: 32px; font-weight: 700; color: #fff; margin-bottom: 16px; }
.banner { display: flex; gap: 12px; align-items: flex-start; padding: 16px; border-radius: 8px; border: 1px solid currentColor; }
.banner h2 { margin: 0 0 4px; font-size: 1.1rem; }
.row { display: grid; gap: 24px; }
.card { border-radius: 8px; padding: 24px; box-shadow: 0 1px 3px rgba(0, 0, 0, .12); }
.card > h2 { margin-top: 0; }
.box { border-radius: 8px; padding: 16px; margin-top: 16px; }
.box > h3 { margin-top: 0; }
.grid { display: grid; gap: 8px; grid-auto-flow: row; }
.grid.inline { display: flex; flex-wrap: wrap; }
.chip { padding: 6px 12px; border-radius: 16px; border: 1px solid #e0e0e0; }
.status-list, .steps { list-style: none; padding: 0; margin: 0; }
.status { display: flex; gap: 12px; padding: 8px 0; }
.status .icon { font-size: 1.2rem; }
.status p { margin: 2px 0 0; color: var(--muted); }
pre { color: #fff; padding: 16px; border-radius: 4px; overflow-x: auto; }
code { font-family: ui-monospace, monospace; }
.steps li { padding: 4px 0; }
.note { border-left: 4px solid var(--info); padding: 8px 12px; background: #e1f5fe; }
.buttons { display: flex; flex-wrap: wrap; gap: 12px; margin-top: 16px; }
.button { padding: 8px 16px; border-radius: 4px; border: 1px solid var(--accent); color: var(--accent); background: #fff; font: inherit; }
.button.primary { background: var(--accent); color: #fff; }
.tone-brand { color: var(--accent); }
.tone-success { color: var(--success); }
.tone-error { color: var(--error); }
.tone-info { color: var(--info); }
.tone-muted { color: var(--muted); }
.tone-inverse { color: #fff; }
</style>
</head>
<body>
<main id="{{.ID}}" style="{{accent .Style}}">
{{range .Children}}{{template "node" .}}
{{end}}</main>
</body>
</html>
`

const nodeHTML = `{{- define "children"}}{{range .Children}}{{template "node" .}}{{end}}{{end}}
{{- define "runs"}}{{if .Children}}{{range .Children}}{{if eq .Kind "code_span"}}<code>{{.Text}}</code>{{else if eq .Kind "link"}}<a href="{{.Href}}" target="_blank" rel="noopener">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}}{{else}}{{.Text}}{{end}}{{end}}
{{- define "node"}}
{{- if eq .Kind "header"}}<header id="{{.ID}}" class="{{tone .Style}}{{if .Style.Centered}} centered{{end}}" style="{{fill .Style}}">
{{- range .Children}}{{if eq .Kind "logo"}}{{template "node" .}}{{end}}{{end}}<h1 dir="auto">{{.Title}}</h1>
{{- range .Children}}{{if ne .Kind "logo"}}{{template "node" .}}{{end}}{{end}}</header>
{{- else if eq .Kind "logo"}}<div id="{{.ID}}" class="logo" style="{{fill .Style}}">{{.Text}}</div>
{{- else if eq .Kind "banner"}}<section id="{{.ID}}" class="banner {{tone .Style}}" role="status"><span class="icon">{{.Icon}}</span><div><h2 dir="auto">{{.Title}}</h2><p dir="auto">{{.Text}}</p></div></section>
{{- else if eq .Kind "row"}}<div id="{{.ID}}" class="row" style="{{columns .Columns}}">{{template "children" .}}</div>
{{- else if eq .Kind "card"}}<section id="{{.ID}}" class="card" style="{{fill .Style}}"><h2 class="{{tone .Style}}" dir="auto">{{.Title}}</h2>{{template "children" .}}</section>
{{- else if eq .Kind "box"}}<div id="{{.ID}}" class="box" style="{{fill .Style}}"><h3 dir="auto">{{.Title}}</h3>{{template "children" .}}</div>
{{- else if eq .Kind "heading"}}<h3 id="{{.ID}}" dir="auto">{{.Text}}</h3>
{{- else if eq .Kind "text"}}<p id="{{.ID}}" class="{{tone .Style}}" dir="auto">{{if .Style.Emphasis}}<strong>{{.Text}}</strong>{{else}}{{.Text}}{{end}}</p>
{{- else if eq .Kind "footer"}}<footer id="{{.ID}}" class="{{tone .Style}}{{if .Style.Centered}} centered{{end}}" style="{{fill .Style}}">{{template "children" .}}</footer>
{{- else if eq .Kind "list"}}<ul id="{{.ID}}">{{range .Children}}<li id="{{.ID}}" dir="auto">{{.Text}}</li>{{end}}</ul>
{{- else if eq .Kind "status_list"}}<ul id="{{.ID}}" class="status-list">{{range .Children}}<li id="{{.ID}}" class="status"><span class="icon {{tone .Style}}">{{.Icon}}</span><div><strong>{{.Title}}</strong><p>{{.Text}}</p></div></li>{{end}}</ul>
{{- else if eq .Kind "grid"}}<div id="{{.ID}}" class="grid{{if not .Columns}} inline{{end}}" style="{{columns .Columns}}">{{range .Children}}<span id="{{.ID}}" class="chip" style="{{fill .Style}}" dir="auto">{{.Text}}</span>{{end}}</div>
{{- else if eq .Kind "code"}}<pre id="{{.ID}}" style="{{fill .Style}}"><code>{{range $i, $l := .Children}}{{if $i}}
{{end}}{{$l.Text}}{{end}}</code></pre>
{{- else if eq .Kind "steps"}}<ol id="{{.ID}}" class="steps">{{range .Children}}<li id="{{.ID}}"><strong>{{.Index}}.</strong> {{template "runs" .}}</li>{{end}}</ol>
{{- else if eq .Kind "note"}}<div id="{{.ID}}" class="note" role="note"><strong>{{.Icon}} {{.Title}}</strong> {{template "runs" .}}</div>
{{- else if eq .Kind "buttons"}}<div id="{{.ID}}" class="buttons">{{range .Children}}<button id="{{.ID}}" type="button" class="button{{if .Style.Emphasis}} primary{{end}}">{{.Icon}} {{.Text}}</button>{{end}}</div>
{{- else}}<div id="{{.ID}}">{{template "runs" .}}</div>
{{- end}}
{{- end}}`
