package choice

// Selection is the caller's answer to a decision. Most decisions only use
// Selected; the other fields are read by the decision types that need them.
type Selection struct {
	Selected []string `json:"selected,omitempty"`

	// Type discriminates asi_or_feat resolutions: "asi" or "feat".
	Type string `json:"type,omitempty"`
	// FeatSlug names the feat for asi_or_feat and feat decisions.
	FeatSlug string `json:"feat_slug,omitempty"`
	// Increases maps ability codes to points for an ability score improvement.
	Increases map[string]int `json:"increases,omitempty"`
	// GoldAmount overrides the average starting wealth for equipment_mode.
	GoldAmount *int `json:"gold_amount,omitempty"`
	// VariantChoices picks subclass variants alongside a subclass.
	VariantChoices map[string]string `json:"variant_choices,omitempty"`
	// ItemSelections picks concrete items for category lines of an
	// equipment option, keyed by the line index.
	ItemSelections map[string]string `json:"item_selections,omitempty"`
}

// First returns the first selected key, or ""
func (s *Selection) First() string {
	if s == nil || len(s.Selected) == 0 {
		return ""
	}
	return s.Selected[0]
}
