package choice

// Decision describes one pending or resolved decision instance. It is never
// stored; handlers derive it from the character on every call.
type Decision struct {
	ID              string         `json:"id"`
	Type            Type           `json:"type"`
	Subtype         string         `json:"subtype,omitempty"`
	Source          Source         `json:"source"`
	SourceName      string         `json:"source_name"`
	LevelGranted    int            `json:"level_granted"`
	Required        bool           `json:"required"`
	Quantity        int            `json:"quantity"`
	Remaining       int            `json:"remaining"`
	Selected        []string       `json:"selected"`
	Options         []Option       `json:"options"`
	OptionsEndpoint string         `json:"options_endpoint,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// Option is one inline choice. Key is the stable value sent back in a
// Selection.
type Option struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Items       []OptionItem   `json:"items,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// OptionItem is a concrete item inside an equipment option
type OptionItem struct {
	Slug       string     `json:"slug,omitempty"`
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	IsPack     bool       `json:"is_pack,omitempty"`
	Contents   []PackLine `json:"contents,omitempty"`
	IsCategory bool       `json:"is_category,omitempty"`
	Category   string     `json:"category,omitempty"`
}

// PackLine is one entry of a pack shown inside an option
type PackLine struct {
	Slug     string `json:"slug"`
	Quantity int    `json:"quantity"`
}

// SetSelected records the current selection and recomputes Remaining
func (d *Decision) SetSelected(selected []string) {
	if selected == nil {
		selected = []string{}
	}
	d.Selected = selected
	d.Remaining = d.Quantity - len(selected)
	if d.Remaining < 0 {
		d.Remaining = 0
	}
}

// Pending reports whether picks remain
func (d *Decision) Pending() bool {
	return d.Remaining > 0
}

// HasOption reports whether key is one of the inline options
func (d *Decision) HasOption(key string) bool {
	for _, opt := range d.Options {
		if opt.Key == key {
			return true
		}
	}
	return false
}

// Option returns the inline option with key, or nil
func (d *Decision) Option(key string) *Option {
	for i := range d.Options {
		if d.Options[i].Key == key {
			return &d.Options[i]
		}
	}
	return nil
}

// Summary counts pending decisions for a character
type Summary struct {
	TotalPending    int            `json:"total_pending"`
	RequiredPending int            `json:"required_pending"`
	OptionalPending int            `json:"optional_pending"`
	ByType          map[Type]int   `json:"by_type"`
	BySource        map[Source]int `json:"by_source"`
}

// Summarize counts the pending decisions in decisions
func Summarize(decisions []*Decision) *Summary {
	summary := &Summary{
		ByType:   make(map[Type]int),
		BySource: make(map[Source]int),
	}
	for _, d := range decisions {
		if !d.Pending() {
			continue
		}
		summary.TotalPending++
		if d.Required {
			summary.RequiredPending++
		} else {
			summary.OptionalPending++
		}
		summary.ByType[d.Type]++
		summary.BySource[d.Source]++
	}
	return summary
}
