package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

func TestChoiceErrorKinds(t *testing.T) {
	const id = "expertise|class|phb:rogue|6|expertise_6"

	malformed := errors.MalformedIdentifier("a|b", "expected 5 segments, got 2")
	assert.Equal(t, errors.CodeInvalidArgument, malformed.Code)
	assert.True(t, errors.IsMalformedIdentifier(malformed))
	assert.False(t, errors.IsInvalidSelection(malformed))

	invalid := errors.InvalidSelection(id, []string{"stealth"}, "expected 2 selections, got 1")
	assert.Equal(t, errors.CodeInvalidArgument, invalid.Code)
	assert.True(t, errors.IsInvalidSelection(invalid))
	assert.Equal(t, id, invalid.Meta[errors.MetaChoiceID])
	assert.Equal(t, "[stealth]", invalid.Meta[errors.MetaValue])
	assert.Equal(t, "expected 2 selections, got 1", invalid.Message)

	notUndoable := errors.ChoiceNotUndoable(id, "character has advanced past level 6")
	assert.Equal(t, errors.CodeFailedPrecondition, notUndoable.Code)
	assert.True(t, errors.IsChoiceNotUndoable(notUndoable))
	assert.True(t, errors.IsFailedPrecondition(notUndoable))

	notFound := errors.ChoiceNotFound(id, "choice not found")
	assert.True(t, errors.IsNotFound(notFound))
	assert.True(t, errors.IsChoiceNotFound(notFound))

	assert.Equal(t, errors.Kind(""), errors.GetKind(errors.NotFound("plain")))
}
