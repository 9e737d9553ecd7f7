package console

import (
	"fmt"
	"strconv"
	"strings"
)

// args splits a command line into positional arguments and key=value options.
type args struct {
	pos  []string
	opts map[string]string
}

// tokenize splits on whitespace; double quotes group words.
func tokenize(line string) ([]string, error) {
	var (
		out    []string
		cur    strings.Builder
		quoted bool
		has    bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			has = true
		case !quoted && (r == ' ' || r == '\t'):
			if has {
				out = append(out, cur.String())
				cur.Reset()
				has = false
			}
		default:
			cur.WriteRune(r)
			has = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote", ErrUsage)
	}
	if has {
		out = append(out, cur.String())
	}
	return out, nil
}

func parseArgs(tokens []string) args {
	a := args{opts: map[string]string{}}
	for _, t := range tokens {
		if k, v, ok := strings.Cut(t, "="); ok && k != "" {
			a.opts[strings.ToLower(k)] = v
			continue
		}
		a.pos = append(a.pos, t)
	}
	return a
}

func (a args) first() string {
	if len(a.pos) == 0 {
		return ""
	}
	return a.pos[0]
}

// str returns option key, falling back to positional index i.
func (a args) str(key string, i int) string {
	if v, ok := a.opts[key]; ok {
		return v
	}
	if i >= 0 && i < len(a.pos) {
		return a.pos[i]
	}
	return ""
}

// num is str parsed as an integer; empty yields zero.
func (a args) num(key string, i int) (int, error) {
	raw := a.str(key, i)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrUsage, key, raw)
	}
	return n, nil
}

func (a args) list(key string) []string {
	raw, ok := a.opts[key]
	if !ok || raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
