package server

import (
	"net/http"

	"value-arena/internal/catalog"
)

type leaderboardPage struct {
	PaperURL   string
	Categories []catalog.Category
}

var leaderboardTmpl = pageTemplate("leaderboard", leaderboardHTML)

func (s *site) leaderboardPage() leaderboardPage {
	return leaderboardPage{
		PaperURL:   s.catalog.Site.PaperURL,
		Categories: s.catalog.Leaderboard,
	}
}

func (s *site) handleAPILeaderboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.catalog.Leaderboard)
}

const leaderboardHTML = `
{{define "styles"}}
        .hero {
            display: flex;
            flex-direction: column;
            gap: 1rem;
        }

        .hero h1 {
            font-size: 2.25rem;
            font-weight: 600;
            line-height: 1.15;
        }

        .hero .lede {
            max-width: 48rem;
            font-size: 1.125rem;
            line-height: 1.75rem;
            color: #475569;
        }

        .hero-actions {
            display: flex;
            flex-wrap: wrap;
            align-items: center;
            gap: 0.75rem;
            font-size: 0.875rem;
            color: #64748b;
        }

        .chip {
            border-radius: 9999px;
            background: #fff;
            padding: 0.5rem 1rem;
            font-weight: 500;
            color: #475569;
        }

        .paper-link {
            font-weight: 500;
            color: #2563eb;
        }

        .paper-link:hover {
            color: #3b82f6;
        }

        .section-head {
            display: flex;
            flex-wrap: wrap;
            align-items: flex-end;
            justify-content: space-between;
            gap: 0.5rem;
            margin-bottom: 1.5rem;
        }

        .section-head h2 {
            font-size: 1.5rem;
            font-weight: 600;
        }

        .category-grid {
            display: grid;
            gap: 1rem;
        }

        .category h3 {
            font-size: 1rem;
            font-weight: 600;
        }

        .category table {
            width: 100%;
            margin-top: 1rem;
            border-collapse: collapse;
            text-align: left;
            font-size: 0.875rem;
        }

        .category th {
            padding: 0.5rem;
            font-weight: 500;
            color: #64748b;
        }

        .category td {
            padding: 0.5rem;
            color: #334155;
        }

        .category .num {
            text-align: right;
            font-weight: 600;
        }

        .row-even {
            background: rgba(248, 250, 252, 0.6);
        }

        .row-odd {
            background: #fff;
        }

        .position {
            display: inline-block;
            width: 1.5rem;
            font-size: 0.75rem;
            font-weight: 600;
            color: #94a3b8;
        }

        .model {
            font-weight: 500;
            color: #0f172a;
        }

        .cta {
            display: flex;
            flex-wrap: wrap;
            align-items: center;
            justify-content: space-between;
            gap: 1rem;
            border-style: dashed;
        }

        .cta h3 {
            font-size: 1.5rem;
            font-weight: 600;
        }

        .cta-link {
            border: 1px solid #0f172a;
            border-radius: 1rem;
            padding: 0.75rem 1.25rem;
            font-size: 0.875rem;
            font-weight: 600;
        }

        .cta-link:hover {
            background: #0f172a;
            color: #fff;
        }

        @media (min-width: 1024px) {
            .category-grid {
                grid-template-columns: repeat(3, 1fr);
            }
        }
{{end}}
{{define "content"}}
<div class="page">
    <header class="hero">
        <p class="eyebrow">EigenBench</p>
        <h1>Compare frontier models on the values they express.</h1>
        <p class="lede">
            We rebuilt the EigenBench paper into an interactive leaderboard so you can inspect how
            kindness, conservatism, or ecological care show up across models. Jump into the live battle
            view whenever you want to gather fresh human ratings.
        </p>
        <div class="hero-actions">
            <span class="chip">Built for qualitative value audits</span>
            <a href="{{.PaperURL}}" target="_blank" rel="noreferrer" class="paper-link">Read the EigenBench paper →</a>
            <a href="/battle" class="button-dark">Launch a Battle</a>
        </div>
    </header>

    <section>
        <div class="section-head">
            <div>
                <h2>EigenBench snapshots</h2>
                <p class="muted">Survey averages and Elo ratings straight from the original release.</p>
            </div>
            <p class="muted">Updated quarterly · static preview</p>
        </div>
        <div class="category-grid">
            {{range .Categories}}
            <article class="card category" data-category="{{.Title}}">
                <h3>{{.Title}}</h3>
                <p class="muted">{{.Description}}</p>
                <table>
                    <thead>
                        <tr>
                            <th>Model</th>
                            <th class="num">Survey</th>
                            <th class="num">EigenBench Elo</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range $i, $row := .Rows}}
                        <tr class="{{rowClass $i}}" data-position="{{inc $i}}">
                            <td><span class="position">{{inc $i}}</span> <span class="model">{{$row.Model}}</span></td>
                            <td class="num survey">{{$row.Survey}}</td>
                            <td class="num elo">{{$row.Elo}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </article>
            {{end}}
        </div>
    </section>

    <section class="card cta">
        <div>
            <p class="eyebrow">Ready to rate?</p>
            <h3>Spin up a value battle.</h3>
            <p class="muted">
                Ask the community which answer leans toward your target value, then fold the vote into
                EigenBench stats.
            </p>
        </div>
        <a href="/battle" class="cta-link">Open battle workspace →</a>
    </section>
</div>
{{end}}
`
