package server

import (
	"fmt"
	"html/template"
	"net/http"

	"value-arena/internal/catalog"
	"value-arena/internal/markup"
)

type battlePanel struct {
	Side  string
	Label string
	Model string
	Tone  string
	Body  template.HTML
}

type battlePage struct {
	Lens                string
	Prompt              string
	Badges              []string
	Panels              []battlePanel
	Choices             []catalog.RatingChoice
	FollowUpPlaceholder string
}

var battleTmpl = pageTemplate("battle", battleHTML)

// newBattlePage renders each response's Markdown once; the result is reused
// by every request.
func newBattlePage(b catalog.Battle, md *markup.Renderer) (battlePage, error) {
	sides := []string{"left", "right"}
	panels := make([]battlePanel, 0, len(b.Responses))
	for i, resp := range b.Responses {
		body, err := md.HTML(resp.Content)
		if err != nil {
			return battlePage{}, fmt.Errorf("%s: %w", resp.Label, err)
		}
		panels = append(panels, battlePanel{
			Side:  sides[i%len(sides)],
			Label: resp.Label,
			Model: resp.Model,
			Tone:  resp.Tone,
			Body:  body,
		})
	}

	return battlePage{
		Lens:                b.Lens,
		Prompt:              b.Prompt,
		Badges:              b.Badges,
		Panels:              panels,
		Choices:             b.RatingChoices,
		FollowUpPlaceholder: b.FollowUpPlaceholder,
	}, nil
}

func (s *site) handleAPIBattle(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.catalog.Battle)
}

const battleHTML = `
{{define "styles"}}
        .page {
            gap: 1.5rem;
        }

        .battle-head {
            display: flex;
            flex-wrap: wrap;
            align-items: center;
            justify-content: space-between;
            gap: 1rem;
        }

        .battle-head h1 {
            font-size: 1.5rem;
            font-weight: 600;
        }

        .prompt-row {
            display: flex;
            flex: 1;
            align-items: center;
            gap: 0.5rem;
            min-width: 280px;
        }

        .text-input {
            flex: 1;
            border: 1px solid #e2e8f0;
            border-radius: 1rem;
            background: #fff;
            padding: 0.5rem 1rem;
            font-size: 0.875rem;
            color: #334155;
        }

        .text-input:focus {
            border-color: #0f172a;
            outline: none;
        }

        .ghost-button {
            border: 1px solid #e2e8f0;
            border-radius: 1rem;
            background: none;
            padding: 0.5rem 1rem;
            font-size: 0.875rem;
            font-weight: 600;
            color: #334155;
            cursor: pointer;
        }

        .ghost-button:hover {
            border-color: #0f172a;
        }

        .lens-bar {
            display: flex;
            flex-wrap: wrap;
            align-items: center;
            justify-content: space-between;
            gap: 0.75rem;
            border: 1px solid #f1f5f9;
            border-radius: 1.5rem;
            background: rgba(255, 255, 255, 0.8);
            padding: 0.75rem 1rem;
            font-size: 0.875rem;
            color: #475569;
        }

        .lens-bar strong {
            color: #0f172a;
        }

        .tag {
            display: inline-flex;
            align-items: center;
            gap: 0.25rem;
            border-radius: 9999px;
            background: #f1f5f9;
            padding: 0.25rem 0.75rem;
            font-size: 0.75rem;
            font-weight: 600;
            color: #64748b;
        }

        .panels {
            display: grid;
            gap: 1rem;
        }

        .panel {
            display: flex;
            flex-direction: column;
            gap: 1rem;
            border: 1px solid #f1f5f9;
            border-radius: 1.5rem;
            background: #fff;
            padding: 1.5rem;
        }

        .panel-head {
            display: flex;
            align-items: flex-start;
            justify-content: space-between;
            gap: 0.75rem;
        }

        .panel-label {
            font-size: 0.875rem;
            font-weight: 600;
            color: #64748b;
        }

        .panel-model {
            font-size: 1.25rem;
            font-weight: 600;
        }

        .tone {
            border: 1px solid #e2e8f0;
            border-radius: 9999px;
            background: #f8fafc;
            padding: 0.25rem 0.75rem;
            font-size: 0.75rem;
            font-weight: 600;
            color: #475569;
        }

        .markdown-body {
            color: #1e293b;
            line-height: 1.6;
        }

        .markdown-body p,
        .markdown-body ol,
        .markdown-body ul {
            margin-bottom: 0.75rem;
        }

        .markdown-body ol,
        .markdown-body ul {
            padding-left: 1.25rem;
        }

        .panel-actions {
            display: flex;
            justify-content: flex-end;
            gap: 0.5rem;
        }

        .panel-actions button {
            border: 1px solid transparent;
            border-radius: 9999px;
            background: none;
            padding: 0.25rem 0.75rem;
            font-size: 0.75rem;
            color: #94a3b8;
        }

        .ratings {
            display: flex;
            flex-wrap: wrap;
            justify-content: center;
            gap: 0.75rem;
            border: 1px solid #f1f5f9;
            border-radius: 1.5rem;
            background: rgba(255, 255, 255, 0.7);
            padding: 1rem;
        }

        .rating {
            display: flex;
            flex-direction: column;
            border: 1px solid #e2e8f0;
            border-radius: 1rem;
            background: rgba(15, 23, 42, 0.05);
            padding: 0.75rem 1rem;
            font-size: 0.875rem;
            font-weight: 600;
            color: #0f172a;
            cursor: pointer;
        }

        .rating:hover {
            background: #0f172a;
            color: #fff;
        }

        .rating .hint {
            font-size: 0.75rem;
            font-weight: 400;
            color: #64748b;
        }

        .follow-up {
            display: flex;
            flex-direction: column;
            gap: 0.75rem;
        }

        .follow-up-row {
            display: flex;
            flex-wrap: wrap;
            gap: 0.75rem;
        }

        .footer-row {
            display: flex;
            align-items: center;
            justify-content: space-between;
            font-size: 0.75rem;
            color: #64748b;
        }

        @media (min-width: 1024px) {
            .panels {
                grid-template-columns: repeat(2, 1fr);
            }
        }
{{end}}
{{define "content"}}
<div class="page">
    <div class="battle-head">
        <div>
            <p class="eyebrow">Battle</p>
            <h1>Value vote workspace</h1>
        </div>
        <div class="prompt-row">
            <input type="text" class="text-input prompt" value="{{.Prompt}}">
            <button type="button" class="ghost-button shuffle">Shuffle</button>
        </div>
    </div>

    <div class="lens-bar">
        <div>
            <span class="tag">Lens</span>
            <strong>{{.Lens}}</strong>
        </div>
        <div>
            {{range .Badges}}<span class="tag badge">{{.}}</span> {{end}}
        </div>
    </div>

    <div class="panels">
        {{range .Panels}}
        <article class="panel" data-side="{{.Side}}">
            <div class="panel-head">
                <div>
                    <p class="panel-label">{{.Label}}</p>
                    <p class="panel-model">{{.Model}}</p>
                </div>
                <span class="tone">{{.Tone}}</span>
            </div>
            <div class="markdown-body">{{.Body}}</div>
            <div class="panel-actions">
                <button type="button">Copy</button>
                <button type="button">Expand</button>
            </div>
        </article>
        {{end}}
    </div>

    <div class="ratings">
        {{range .Choices}}
        <button type="button" class="rating">
            {{.Label}}
            <span class="hint">{{.Hint}}</span>
        </button>
        {{end}}
    </div>

    <div class="card follow-up">
        <label class="eyebrow" for="follow-up">Ask follow-up</label>
        <div class="follow-up-row">
            <input id="follow-up" type="text" class="text-input" placeholder="{{.FollowUpPlaceholder}}">
            <button type="button" class="button-dark send">Send</button>
        </div>
        <p class="muted">
            Prompts are broadcast to all raters currently in queue. Votes roll into EigenBench after
            each battle concludes.
        </p>
    </div>

    <div class="footer-row">
        <a href="/">← Back to leaderboard</a>
        <p>Inputs are reviewed for value-safety before going live.</p>
    </div>
</div>
{{end}}
`
