package server

import (
	"html/template"

	"value-arena/internal/catalog"
)

var funcs = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"rowClass": func(i int) string {
		if i%2 == 0 {
			return "row-even"
		}
		return "row-odd"
	},
}

// navLink is a navigation destination with its highlight state resolved.
type navLink struct {
	Label  string
	Href   string
	Active bool
}

// navigation marks the item whose href equals current. Matching is exact:
// "/battle/" does not activate "/battle".
func navigation(items []catalog.Link, current string) []navLink {
	links := make([]navLink, 0, len(items))
	for _, item := range items {
		links = append(links, navLink{
			Label:  item.Label,
			Href:   item.Href,
			Active: item.Href == current,
		})
	}
	return links
}

type pageData struct {
	Title  string
	Site   catalog.Site
	Nav    []navLink
	Recent []catalog.Link
	Page   any
}

var layoutTmpl = template.Must(template.New("layout").Funcs(funcs).Parse(layoutHTML))

// pageTemplate clones the layout and adds the page's "content" block.
func pageTemplate(name, content string) *template.Template {
	return template.Must(template.Must(layoutTmpl.Clone()).New(name).Parse(content))
}

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>{{.Title}}</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="description" content="{{.Site.Tagline}}">
    <link rel="icon" href="data:image/svg+xml,<svg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22><text y=%22.9em%22 font-size=%2290%22>⚖️</text></svg>">
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Plus Jakarta Sans', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #f8fafc;
            color: #0f172a;
            -webkit-font-smoothing: antialiased;
        }

        a {
            color: inherit;
            text-decoration: none;
        }

        button, input {
            font: inherit;
        }

        .shell {
            display: flex;
            min-height: 100vh;
        }

        .sidebar {
            display: none;
            flex: none;
            flex-direction: column;
            width: 16rem;
            padding: 1.5rem 1.25rem;
            border-right: 1px solid #e2e8f0;
            background: rgba(255, 255, 255, 0.9);
        }

        .brand {
            display: flex;
            align-items: center;
            justify-content: space-between;
        }

        .brand-name {
            display: flex;
            flex-direction: column;
        }

        .brand-name strong {
            font-size: 1.125rem;
        }

        .eyebrow {
            font-size: 0.75rem;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.3em;
            color: #94a3b8;
        }

        .pill-button {
            border: 1px solid #e2e8f0;
            border-radius: 9999px;
            background: none;
            padding: 0.25rem 0.75rem;
            font-size: 0.75rem;
            font-weight: 600;
            color: #475569;
        }

        .sidebar nav {
            display: flex;
            flex-direction: column;
            gap: 2rem;
            margin-top: 2rem;
            font-size: 0.875rem;
        }

        .nav-group {
            display: flex;
            flex-direction: column;
            gap: 0.25rem;
        }

        .nav-link {
            border-radius: 1rem;
            padding: 0.5rem 0.75rem;
            font-weight: 600;
            color: #475569;
        }

        .nav-link:hover {
            background: #f1f5f9;
        }

        .nav-link.active {
            background: rgba(15, 23, 42, 0.9);
            color: #fff;
        }

        .thread {
            display: flex;
            align-items: center;
            justify-content: space-between;
            border: 1px solid #e2e8f0;
            border-radius: 1rem;
            padding: 0.5rem 0.75rem;
            color: #334155;
        }

        .thread:hover {
            border-color: #0f172a;
            color: #0f172a;
        }

        .thread .arrow {
            font-size: 0.75rem;
            color: #94a3b8;
        }

        .sidebar-note {
            margin-top: auto;
            border: 1px solid #e2e8f0;
            border-radius: 1rem;
            padding: 1rem 0.75rem;
            font-size: 0.75rem;
            color: #64748b;
        }

        .sidebar-note strong {
            display: block;
            color: #0f172a;
            margin-bottom: 0.25rem;
        }

        .frame {
            display: flex;
            flex: 1;
            flex-direction: column;
            min-height: 100vh;
        }

        .topbar {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 1rem;
            border-bottom: 1px solid #e2e8f0;
            background: rgba(255, 255, 255, 0.8);
            font-size: 0.875rem;
            font-weight: 600;
            color: #475569;
        }

        .topbar-links {
            display: flex;
            gap: 0.5rem;
        }

        .topbar-links a {
            border: 1px solid #e2e8f0;
            border-radius: 9999px;
            padding: 0.25rem 0.75rem;
        }

        .topbar-links a.active {
            border-color: #0f172a;
            color: #0f172a;
        }

        main {
            flex: 1;
            overflow-y: auto;
        }

        .page {
            display: flex;
            flex-direction: column;
            gap: 3rem;
            width: 100%;
            max-width: 72rem;
            margin: 0 auto;
            padding: 2.5rem 1rem;
        }

        .muted {
            font-size: 0.875rem;
            color: #64748b;
        }

        .card {
            border: 1px solid #e2e8f0;
            border-radius: 1.5rem;
            background: rgba(255, 255, 255, 0.9);
            padding: 1.5rem;
        }

        .button-dark {
            display: inline-flex;
            align-items: center;
            border: none;
            border-radius: 9999px;
            background: #0f172a;
            padding: 0.5rem 1.25rem;
            font-size: 0.875rem;
            font-weight: 600;
            color: #fff;
        }

        .button-dark:hover {
            background: #334155;
        }

        @media (min-width: 1024px) {
            .sidebar {
                display: flex;
            }

            .topbar {
                display: none;
            }

            .page {
                padding: 2.5rem 3rem;
            }
        }
{{block "styles" .}}{{end}}
    </style>
</head>
<body>
    <div class="shell">
        <aside class="sidebar">
            <div class="brand">
                <div class="brand-name">
                    <span class="eyebrow">Value</span>
                    <strong>Arena</strong>
                </div>
                <button type="button" class="pill-button">Login</button>
            </div>

            <nav>
                <div class="nav-group">
                    <p class="eyebrow">Main</p>
                    {{range .Nav}}
                    <a href="{{.Href}}" class="nav-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
                    {{end}}
                </div>

                <div class="nav-group">
                    <p class="eyebrow">Today</p>
                    {{range .Recent}}
                    <a href="{{.Href}}" class="thread">
                        <span>{{.Label}}</span>
                        <span class="arrow">→</span>
                    </a>
                    {{end}}
                </div>
            </nav>

            <div class="sidebar-note">
                <strong>Take your chats anywhere</strong>
                Create an account to save EigenBench battles and ratings across devices.
            </div>
        </aside>

        <div class="frame">
            <div class="topbar">
                <span>{{.Site.Name}}</span>
                <div class="topbar-links">
                    {{range .Nav}}
                    <a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
                    {{end}}
                </div>
            </div>
            <main>{{template "content" .Page}}</main>
        </div>
    </div>
</body>
</html>
`
