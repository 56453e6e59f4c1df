package choice

import (
	"strconv"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

const (
	idSeparator = "|"
	idSegments  = 5
)

// ID is the decoded form of a decision identifier
type ID struct {
	Type      Type
	Source    Source
	SourceKey string
	Level     int
	Group     string
}

// String encodes the identifier without validating its fields
func (id ID) String() string {
	return strings.Join([]string{
		string(id.Type),
		string(id.Source),
		id.SourceKey,
		strconv.Itoa(id.Level),
		id.Group,
	}, idSeparator)
}

// EncodeID joins the five identifying fields of a decision. Slugs use ':'
// so the separator is '|'; a field containing '|' is rejected.
func EncodeID(t Type, source Source, sourceKey string, level int, group string) (string, error) {
	id := ID{Type: t, Source: source, SourceKey: sourceKey, Level: level, Group: group}
	for _, field := range []string{string(t), string(source), sourceKey, group} {
		if strings.Contains(field, idSeparator) {
			return "", errors.MalformedIdentifier(id.String(), "field "+strconv.Quote(field)+" contains the separator")
		}
	}
	return id.String(), nil
}

// DecodeID splits an identifier produced by EncodeID
func DecodeID(raw string) (ID, error) {
	parts := strings.Split(raw, idSeparator)
	if len(parts) != idSegments {
		return ID{}, errors.MalformedIdentifier(raw, "expected "+strconv.Itoa(idSegments)+" segments, got "+strconv.Itoa(len(parts)))
	}

	level, err := strconv.Atoi(parts[3])
	if err != nil {
		return ID{}, errors.MalformedIdentifier(raw, "level segment is not an integer")
	}

	return ID{
		Type:      Type(parts[0]),
		Source:    Source(parts[1]),
		SourceKey: parts[2],
		Level:     level,
		Group:     parts[4],
	}, nil
}
