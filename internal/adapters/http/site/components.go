package site

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/nba"
	"github.com/okian/explorer/internal/domain/pokemon"
)

const style = `body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:60rem;color:#222}
nav a{margin-right:1rem}
table{border-collapse:collapse;margin:1rem 0}
th,td{border:1px solid #ccc;padding:.3rem .6rem;text-align:right}
th:first-child,td:first-child{text-align:left}
.error{color:#a00}
.muted{color:#777}`

// writer accumulates the first write error so components read linearly.
type writer struct {
	w   io.Writer
	err error
}

func (p *writer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *writer) text(s string) { p.raw(templ.EscapeString(s)) }

func (p *writer) textf(format string, args ...any) { p.text(fmt.Sprintf(format, args...)) }

func (p *writer) render(ctx context.Context, c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

// layout wraps body in the shared page chrome.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw(`<!doctype html><html><head><meta charset="utf-8"><title>`)
		p.text(title)
		p.raw(`</title><style>` + style + `</style></head><body>`)
		p.raw(`<nav><a href="/">Explorer</a><a href="/pokemon">Pokémon</a><a href="/nba/standings">NBA standings</a><a href="/api-docs">API</a></nav><h1>`)
		p.text(title)
		p.raw(`</h1>`)
		p.render(ctx, body)
		p.raw(`</body></html>`)
		return p.err
	})
}

func indexPage() templ.Component {
	return layout("Explorer", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw(`<p>Browse Pokémon species and NBA seasons.</p>`)
		p.render(ctx, pokemonForm(""))
		p.render(ctx, seasonForm(0))
		return p.err
	}))
}

func pokemonForm(name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw(`<form action="/pokemon" method="get"><label>Species <input name="name" value="`)
		p.text(name)
		p.raw(`" placeholder="pikachu or 25"></label> <button type="submit">Look up</button></form>`)
		return p.err
	})
}

func seasonForm(season int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw(`<form action="/nba/standings" method="get"><label>Season <input name="season" type="number" value="`)
		if season > 0 {
			p.text(strconv.Itoa(season))
		}
		p.raw(`"></label> <button type="submit">Standings</button></form>`)
		return p.err
	})
}

func errorBlock(err error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw(`<p class="error">`)
		p.text(err.Error())
		p.raw(`</p>`)
		return p.err
	})
}

// pokemonView is the data behind the species page.
type pokemonView struct {
	Query     string
	Profile   *pokemon.Profile
	Evolution *service.Evolution
	Err       error
	EvoErr    error
}

func pokemonPage(v pokemonView) templ.Component {
	title := "Pokémon"
	if v.Profile != nil {
		title = v.Profile.Record.Name
	}
	return layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.render(ctx, pokemonForm(v.Query))
		if v.Err != nil {
			p.render(ctx, errorBlock(v.Err))
			return p.err
		}
		if v.Profile != nil {
			p.render(ctx, profileBlock(*v.Profile))
		}
		if v.EvoErr != nil {
			p.render(ctx, errorBlock(v.EvoErr))
		}
		if v.Evolution != nil {
			p.render(ctx, evolutionBlock(*v.Evolution))
		}
		return p.err
	}))
}

func profileBlock(prof pokemon.Profile) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &writer{w: w}
		rec := prof.Record
		if rec.Sprite != "" {
			p.raw(`<img alt="sprite" src="`)
			p.text(string(templ.URL(rec.Sprite)))
			p.raw(`">`)
		}
		p.raw(`<p>`)
		p.textf("#%d, height %d, weight %d", rec.ID, rec.Height, rec.Weight)
		p.raw(`</p><table><tr><th>Stat</th><th>Base</th></tr>`)
		for _, s := range prof.FocusStats {
			p.raw(`<tr><td>`)
			p.text(s.Name)
			p.raw(`</td><td>`)
			p.text(strconv.Itoa(s.Value))
			p.raw(`</td></tr>`)
		}
		p.raw(`</table><p>Moves: `)
		for i, m := range prof.Moves {
			if i > 0 {
				p.raw(`, `)
			}
			p.text(m)
		}
		p.raw(` <span class="muted">`)
		p.textf("(%d of %d)", len(prof.Moves), prof.TotalMoves)
		p.raw(`</span></p>`)
		return p.err
	})
}

func evolutionBlock(evo service.Evolution) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw(`<h2>Evolution</h2><table><tr><th>Species</th>`)
		for _, c := range evo.Table.Columns {
			p.raw(`<th>`)
			p.text(c)
			p.raw(`</th>`)
		}
		p.raw(`</tr>`)
		for _, row := range evo.Table.Rows {
			p.raw(`<tr><td><a href="/pokemon?name=`)
			p.text(row.Name)
			p.raw(`">`)
			p.text(row.Name)
			p.raw(`</a></td>`)
			for _, c := range evo.Table.Columns {
				p.raw(`<td>`)
				p.text(row.Cell(c))
				p.raw(`</td>`)
			}
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)
		if len(evo.Table.Skipped) > 0 {
			p.raw(`<p class="muted">Unavailable: `)
			p.text(strings.Join(evo.Table.Skipped, ", "))
			p.raw(`</p>`)
		}
		if evo.Chain.Truncated {
			p.raw(`<p class="muted">Chain truncated.</p>`)
		}
		for _, b := range evo.Branches {
			p.raw(`<p class="muted">Also: `)
			p.text(strings.Join(b, " → "))
			p.raw(`</p>`)
		}
		return p.err
	})
}

// standingsView is the data behind the standings page.
type standingsView struct {
	Season    int
	Standings []nba.Standing
	Err       error
}

func standingsPage(v standingsView) templ.Component {
	return layout(fmt.Sprintf("NBA standings %d", v.Season), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.render(ctx, seasonForm(v.Season))
		if v.Err != nil {
			p.render(ctx, errorBlock(v.Err))
			return p.err
		}
		p.raw(`<table><tr><th>Team</th><th>Conference</th><th>Rank</th><th>W</th><th>L</th><th>Pct</th><th>GB</th></tr>`)
		for _, s := range v.Standings {
			p.raw(`<tr><td>`)
			p.text(s.TeamName)
			p.raw(`</td><td>`)
			p.text(s.Conference)
			p.raw(`</td><td>`)
			p.text(strconv.Itoa(s.ConferenceRank))
			p.raw(`</td><td>`)
			p.text(strconv.Itoa(s.Wins))
			p.raw(`</td><td>`)
			p.text(strconv.Itoa(s.Losses))
			p.raw(`</td><td>`)
			p.text(s.WinPercentage)
			p.raw(`</td><td>`)
			p.text(s.GamesBehind)
			p.raw(`</td></tr>`)
		}
		p.raw(`</table>`)
		return p.err
	}))
}
