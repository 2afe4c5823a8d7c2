package zoo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oliverbestmann/anyanimal"
)

var ErrUnknownKind = errors.New("unknown kind of animal")

// Kind identifies one of the animals of the zoo.
type Kind string

const (
	KindLion     Kind = "lion"
	KindZebra    Kind = "zebra"
	KindElephant Kind = "elephant"
	KindPenguin  Kind = "penguin"
)

// Kinds lists all known kinds.
var Kinds = []Kind{KindLion, KindZebra, KindElephant, KindPenguin}

// ParseKind parses a kind, ignoring case and surrounding whitespace.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))

	switch kind {
	case KindLion, KindZebra, KindElephant, KindPenguin:
		return kind, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
}

// Append places a new animal of the given kind at the end of the roster.
func Append(r *anyanimal.Roster, kind Kind) error {
	switch kind {
	case KindLion:
		return anyanimal.Append(r, NewLion())
	case KindZebra:
		return anyanimal.Append(r, NewZebra())
	case KindElephant:
		return anyanimal.Append(r, NewElephant())
	case KindPenguin:
		return anyanimal.Append(r, NewPenguin())
	}

	return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
