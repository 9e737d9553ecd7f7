package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/pokemon"
)

func (r *Registry) registerPokemonCommands() {
	r.Register(&Command{
		Name:        "pokemon",
		ShortName:   "p",
		Group:       "Pokémon",
		Description: "Show a species profile",
		Usage:       "pokemon <name|id> [focus=hp,attack,speed] [moves=5]",
		Handler:     r.pokemonHandler,
	})
	r.Register(&Command{
		Name:        "evolution",
		ShortName:   "e",
		Group:       "Pokémon",
		Description: "Compare stats along an evolution line",
		Usage:       "evolution <name|id>",
		Handler:     r.evolutionHandler,
	})
	r.Register(&Command{
		Name:        "locations",
		ShortName:   "l",
		Group:       "Pokémon",
		Description: "List encounter areas with map coordinates",
		Usage:       "locations <name|id>",
		Handler:     r.locationsHandler,
	})
}

func species(a args) (string, error) {
	name := a.first()
	if name == "" {
		return "", fmt.Errorf("%w: species name or id required", ErrUsage)
	}
	return name, nil
}

func (r *Registry) pokemonHandler(ctx context.Context, a args) error {
	name, err := species(a)
	if err != nil {
		return err
	}
	moves, err := a.num("moves", -1)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	prof, err := s.Profile(ctx, service.ProfileQuery{Pokemon: name, Focus: a.list("focus"), MaxMoves: moves})
	if err != nil {
		return err
	}

	rec := prof.Record
	r.p.title(fmt.Sprintf("#%d %s", rec.ID, rec.Name))
	r.p.line("Types: %s  Abilities: %s", strings.Join(rec.Types, ", "), strings.Join(rec.Abilities, ", "))
	r.p.line("Height: %d  Weight: %d  Base experience: %d", rec.Height, rec.Weight, rec.BaseExperience)
	rows := make([][]string, 0, len(prof.FocusStats))
	for _, st := range prof.FocusStats {
		rows = append(rows, []string{st.Name, strconv.Itoa(st.Value)})
	}
	r.p.table([]string{"Stat", "Base"}, rows)
	r.p.line("Moves (%d of %d): %s", len(prof.Moves), prof.TotalMoves, strings.Join(prof.Moves, ", "))
	return nil
}

func (r *Registry) evolutionHandler(ctx context.Context, a args) error {
	name, err := species(a)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	evo, err := s.Evolution(ctx, service.PokemonQuery{Pokemon: name})
	if err != nil && !errors.Is(err, pokemon.ErrNoData) {
		return err
	}

	r.p.title("Evolution line: " + strings.Join(evo.Chain.Names, " → "))
	if len(evo.Table.Rows) > 0 {
		header := append([]string{"Species"}, evo.Table.Columns...)
		rows := make([][]string, 0, len(evo.Table.Rows))
		for _, row := range evo.Table.Rows {
			line := []string{row.Name}
			for _, c := range evo.Table.Columns {
				line = append(line, row.Cell(c))
			}
			rows = append(rows, line)
		}
		r.p.table(header, rows)
	}
	if len(evo.Table.Skipped) > 0 {
		r.p.note("Unavailable: " + strings.Join(evo.Table.Skipped, ", "))
	}
	if evo.Chain.Truncated {
		r.p.note(fmt.Sprintf("Chain truncated after %d species", len(evo.Chain.Names)))
	}
	for _, b := range evo.Branches {
		r.p.note("Also evolves: " + strings.Join(b, " → "))
	}
	return err
}

func (r *Registry) locationsHandler(ctx context.Context, a args) error {
	name, err := species(a)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	locs, err := s.Locations(ctx, service.PokemonQuery{Pokemon: name})
	if err != nil {
		return err
	}
	r.p.title("Encounter areas for " + locs.Species)
	rows := make([][]string, 0, len(locs.Locations))
	for _, l := range locs.Locations {
		rows = append(rows, []string{l.Area, strconv.Itoa(l.Lat), strconv.Itoa(l.Lon)})
	}
	r.p.table([]string{"Area", "Lat", "Lon"}, rows)
	return nil
}
