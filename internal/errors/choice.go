package errors

import "fmt"

// Kind distinguishes the choice-engine failures that share a transport code.
// It is stored in Meta under MetaKind.
type Kind string

// Choice engine error kinds
const (
	KindMalformedIdentifier Kind = "malformed_identifier"
	KindInvalidSelection    Kind = "invalid_selection"
	KindChoiceNotUndoable   Kind = "choice_not_undoable"
	KindChoiceNotFound      Kind = "choice_not_found"
)

// Metadata keys used by choice errors
const (
	MetaKind     = "kind"
	MetaChoiceID = "choice_id"
	MetaValue    = "value"
	MetaReason   = "reason"
)

// MalformedIdentifier reports a choice id that cannot be decoded.
func MalformedIdentifier(choiceID, reason string) *Error {
	return Newf(CodeInvalidArgument, "malformed choice id %q: %s", choiceID, reason).
		WithMeta(MetaKind, KindMalformedIdentifier).
		WithMeta(MetaChoiceID, choiceID).
		WithMeta(MetaReason, reason)
}

// InvalidSelection reports a selection rejected by a handler. value is the
// offending input rendered for display.
func InvalidSelection(choiceID string, value interface{}, reason string) *Error {
	return New(CodeInvalidArgument, reason).
		WithMeta(MetaKind, KindInvalidSelection).
		WithMeta(MetaChoiceID, choiceID).
		WithMeta(MetaValue, fmt.Sprint(value)).
		WithMeta(MetaReason, reason)
}

// ChoiceNotUndoable reports an undo on a permanent choice or outside its window.
func ChoiceNotUndoable(choiceID, reason string) *Error {
	return New(CodeFailedPrecondition, reason).
		WithMeta(MetaKind, KindChoiceNotUndoable).
		WithMeta(MetaChoiceID, choiceID).
		WithMeta(MetaReason, reason)
}

// ChoiceNotFound reports a well-formed id that does not match a current choice.
func ChoiceNotFound(choiceID, reason string) *Error {
	return New(CodeNotFound, reason).
		WithMeta(MetaKind, KindChoiceNotFound).
		WithMeta(MetaChoiceID, choiceID)
}

// GetKind returns the choice error kind carried by err, if any.
func GetKind(err error) Kind {
	if kind, ok := GetMeta(err)[MetaKind].(Kind); ok {
		return kind
	}
	if kind, ok := GetMeta(err)[MetaKind].(string); ok {
		return Kind(kind)
	}
	return ""
}

// IsMalformedIdentifier checks if an error is a malformed choice id error
func IsMalformedIdentifier(err error) bool {
	return GetKind(err) == KindMalformedIdentifier
}

// IsInvalidSelection checks if an error is an invalid selection error
func IsInvalidSelection(err error) bool {
	return GetKind(err) == KindInvalidSelection
}

// IsChoiceNotUndoable checks if an error is a not undoable error
func IsChoiceNotUndoable(err error) bool {
	return GetKind(err) == KindChoiceNotUndoable
}

// IsChoiceNotFound checks if an error is a choice not found error
func IsChoiceNotFound(err error) bool {
	return GetKind(err) == KindChoiceNotFound
}
