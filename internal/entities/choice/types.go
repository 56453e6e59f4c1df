// Package choice defines the decision descriptor exchanged between the
// choice engine and its callers, and the identifier codec that names a
// decision instance.
package choice

// Type is a decision family
type Type string

// Decision types
const (
	TypeAbilityScore    Type = "ability_score"
	TypeASIOrFeat       Type = "asi_or_feat"
	TypeEquipment       Type = "equipment"
	TypeEquipmentMode   Type = "equipment_mode"
	TypeExpertise       Type = "expertise"
	TypeFeat            Type = "feat"
	TypeFightingStyle   Type = "fighting_style"
	TypeHitPoints       Type = "hit_points"
	TypeLanguage        Type = "language"
	TypeOptionalFeature Type = "optional_feature"
	TypeProficiency     Type = "proficiency"
	TypeSize            Type = "size"
	TypeSpell           Type = "spell"
	TypeSubclass        Type = "subclass"
	TypeSubclassVariant Type = "subclass_variant"
)

// Types returns every decision type in the order decisions should be
// resolved. Later types may depend on state written by earlier ones:
// equipment_mode before equipment, subclass before subclass_variant and
// optional_feature, asi_or_feat before spell.
func Types() []Type {
	return []Type{
		TypeSize,
		TypeAbilityScore,
		TypeProficiency,
		TypeLanguage,
		TypeFeat,
		TypeSubclass,
		TypeSubclassVariant,
		TypeFightingStyle,
		TypeExpertise,
		TypeOptionalFeature,
		TypeASIOrFeat,
		TypeSpell,
		TypeHitPoints,
		TypeEquipmentMode,
		TypeEquipment,
	}
}

// Valid reports whether t is a known decision type
func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// Source is the provenance tag of a decision
type Source string

// Decision sources
const (
	SourceRace            Source = "race"
	SourceBackground      Source = "background"
	SourceClass           Source = "class"
	SourceSubclass        Source = "subclass"
	SourceSubclassFeature Source = "subclass_feature"
	SourceFeat            Source = "feat"
	SourceLevelUp         Source = "level_up"
)

// Spell decision subtypes
const (
	SubtypeCantrip     = "cantrip"
	SubtypeSpellsKnown = "spells_known"
)
