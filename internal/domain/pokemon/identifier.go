package pokemon

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds for numeric species IDs accepted from users.
const (
	MinID = 1
	MaxID = 1010
)

// Identifier is a validated species name or numeric ID.
type Identifier struct {
	name string
	id   int
}

// ParseIdentifier normalizes user input. Digits are treated as an ID and must
// fall in [MinID, MaxID]; anything else must be a lowercase token of letters,
// digits and inner hyphens, as upstream names are.
func ParseIdentifier(raw string) (Identifier, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Identifier{}, ErrEmptyIdentifier
	}
	if isDigits(s) {
		id, err := strconv.Atoi(s)
		if err != nil {
			return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
		}
		return IdentifierFromID(id)
	}
	if !isNameToken(s) {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return Identifier{name: s}, nil
}

// IdentifierFromID validates a numeric ID.
func IdentifierFromID(id int) (Identifier, error) {
	if id < MinID || id > MaxID {
		return Identifier{}, fmt.Errorf("%w: id %d outside [%d, %d]", ErrInvalidIdentifier, id, MinID, MaxID)
	}
	return Identifier{id: id}, nil
}

// NameIdentifier builds an identifier for a species name that came from upstream
// data, such as a chain link. Names that are empty or not a valid token yield
// the zero Identifier.
func NameIdentifier(name string) Identifier {
	s := strings.ToLower(strings.TrimSpace(name))
	if !isNameToken(s) {
		return Identifier{}
	}
	return Identifier{name: s}
}

// Key is the normalized token used in request paths and memo keys.
func (i Identifier) Key() string {
	if i.name != "" {
		return i.name
	}
	if i.id > 0 {
		return strconv.Itoa(i.id)
	}
	return ""
}

// IsZero reports whether the identifier is unset.
func (i Identifier) IsZero() bool { return i.Key() == "" }

// IsID reports whether the identifier is numeric.
func (i Identifier) IsID() bool { return i.name == "" && i.id > 0 }

func (i Identifier) String() string { return i.Key() }

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isNameToken accepts [a-z0-9] runs joined by single hyphens.
func isNameToken(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
