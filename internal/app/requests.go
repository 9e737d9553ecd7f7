package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProfileQuery asks for one species' profile.
type ProfileQuery struct {
	Pokemon  string   `json:"pokemon" validate:"required"`
	Focus    []string `json:"focus" validate:"omitempty,dive,oneof=hp attack defense special-attack special-defense speed"`
	MaxMoves int      `json:"max_moves" validate:"omitempty,min=1,max=100"`
}

// PokemonQuery names one species.
type PokemonQuery struct {
	Pokemon string `json:"pokemon" validate:"required"`
}

// TeamQuery names one team by name, nickname, code or ID.
type TeamQuery struct {
	Team string `json:"team" validate:"required"`
}

// GamesQuery selects a team's games for a season, optionally on one day.
type GamesQuery struct {
	Team   string `json:"team" validate:"required"`
	Season int    `json:"season" validate:"omitempty,min=1946,max=2100"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// LeadersQuery ranks a team's players by a statistic.
type LeadersQuery struct {
	Team     string `json:"team" validate:"required"`
	Season   int    `json:"season" validate:"omitempty,min=1946,max=2100"`
	Category string `json:"category"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=15"`
}

// StandingsQuery selects a season's standings.
type StandingsQuery struct {
	Season int `json:"season" validate:"omitempty,min=1946,max=2100"`
}

// PlayerQuery searches players by name or lists a team's roster.
type PlayerQuery struct {
	Search string `json:"search" validate:"required_without=Team,omitempty,min=2"`
	Team   string `json:"team"`
	Season int    `json:"season" validate:"omitempty,min=1946,max=2100"`
}

// PlayerStatsQuery selects one player's per-game statistics.
type PlayerStatsQuery struct {
	PlayerID int `json:"player_id" validate:"required,min=1"`
	Season   int `json:"season" validate:"omitempty,min=1946,max=2100"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateQuery checks q's tags and reports every violation in one
// ErrInvalidQuery.
func (s *Service) validateQuery(q any) error {
	err := s.validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalidQuery, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}

// invalid marks err as a caller mistake.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
}
