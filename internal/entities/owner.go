package entities

import "fmt"

// OwnerKind names the kind of entity that granted a character row
type OwnerKind string

// Owner kinds
const (
	OwnerKindRace       OwnerKind = "race"
	OwnerKindBackground OwnerKind = "background"
	OwnerKindClass      OwnerKind = "class"
	OwnerKindSubclass   OwnerKind = "subclass"
	OwnerKindFeat       OwnerKind = "feat"
	OwnerKindItem       OwnerKind = "item"
)

// Valid reports whether k is a known owner kind
func (k OwnerKind) Valid() bool {
	switch k {
	case OwnerKindRace, OwnerKindBackground, OwnerKindClass,
		OwnerKindSubclass, OwnerKindFeat, OwnerKindItem:
		return true
	}
	return false
}

// OwnerRef points at the reference entity that owns a modifier, counter or
// character row.
type OwnerRef struct {
	Kind OwnerKind `json:"kind"`
	Key  string    `json:"key"`
}

// Owner builds an OwnerRef
func Owner(kind OwnerKind, key string) OwnerRef {
	return OwnerRef{Kind: kind, Key: key}
}

// IsZero reports whether the reference is unset
func (o OwnerRef) IsZero() bool {
	return o.Kind == "" && o.Key == ""
}

// String renders the reference as kind:key
func (o OwnerRef) String() string {
	return fmt.Sprintf("%s:%s", o.Kind, o.Key)
}
