package handlers

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
)

// LanguageHandler resolves language picks granted by the race, the
// background and feats.
type LanguageHandler struct {
	base
}

type languageSource struct {
	source  choice.Source
	owner   entities.OwnerRef
	name    string
	level   int
	choices []entities.LanguageChoice
}

// Type implements Handler
func (h *LanguageHandler) Type() choice.Type { return choice.TypeLanguage }

func (h *LanguageHandler) sources(ctx context.Context, char *entities.Character) ([]languageSource, error) {
	var out []languageSource

	races, err := h.races(ctx, char)
	if err != nil {
		return nil, err
	}
	for _, race := range races {
		out = append(out, languageSource{
			source:  choice.SourceRace,
			owner:   entities.Owner(entities.OwnerKindRace, race.Slug),
			name:    race.Name,
			level:   1,
			choices: race.LanguageChoices,
		})
	}

	bg, err := h.background(ctx, char)
	if err != nil {
		return nil, err
	}
	if bg != nil {
		out = append(out, languageSource{
			source:  choice.SourceBackground,
			owner:   entities.Owner(entities.OwnerKindBackground, bg.Slug),
			name:    bg.Name,
			level:   1,
			choices: bg.LanguageChoices,
		})
	}

	for _, cf := range char.Feats {
		feat, err := h.catalog.GetFeat(ctx, cf.Slug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load feat %s", cf.Slug)
		}
		out = append(out, languageSource{
			source:  choice.SourceFeat,
			owner:   entities.Owner(entities.OwnerKindFeat, feat.Slug),
			name:    feat.Name,
			level:   max(1, cf.LevelAcquired),
			choices: feat.LanguageChoices,
		})
	}
	return out, nil
}

// Enumerate implements Handler
func (h *LanguageHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	sources, err := h.sources(ctx, char)
	if err != nil {
		return nil, err
	}

	known := make([]string, 0, len(char.Languages))
	for _, lang := range char.Languages {
		known = append(known, lang.Slug)
	}

	var out []*choice.Decision
	for _, src := range sources {
		for _, lc := range src.choices {
			d, err := newDecision(choice.TypeLanguage, src.source, src.owner.Key, src.level, lc.Group)
			if err != nil {
				return nil, err
			}
			d.SourceName = src.name
			d.Quantity = lc.Quantity
			d.Metadata["known_languages"] = known

			selected := []string{}
			mine := make(map[string]bool)
			for _, lang := range char.Languages {
				if lang.Source == src.owner && lang.ChoiceGroup == lc.Group {
					selected = append(selected, lang.Slug)
					mine[lang.Slug] = true
				}
			}

			languages, err := h.options(ctx, lc)
			if err != nil {
				return nil, err
			}
			d.Options = make([]choice.Option, 0, len(languages))
			for _, lang := range languages {
				if char.KnowsLanguage(lang.Slug) && !mine[lang.Slug] {
					continue
				}
				d.Options = append(d.Options, choice.Option{Key: lang.Slug, Name: lang.Name})
			}
			d.SetSelected(selected)
			out = append(out, d)
		}
	}
	return out, nil
}

func (h *LanguageHandler) options(ctx context.Context, lc entities.LanguageChoice) ([]*entities.Language, error) {
	if len(lc.Options) == 0 {
		languages, err := h.catalog.ListLanguages(ctx, catalog.ListLanguagesInput{LearnableOnly: true})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list languages")
		}
		return languages, nil
	}

	out := make([]*entities.Language, 0, len(lc.Options))
	for _, slug := range lc.Options {
		lang, err := h.catalog.GetLanguage(ctx, slug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load language %s", slug)
		}
		out = append(out, lang)
	}
	return out, nil
}

// Resolve implements Handler
func (h *LanguageHandler) Resolve(_ context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, false)
	if err != nil {
		return err
	}

	owner := ownerFor(d.Source, sourceKey(d))
	grp := group(d)
	h.clear(char, owner, grp)

	for _, key := range keys {
		char.Languages = append(char.Languages, &entities.CharacterLanguage{
			ID:          h.ids.Generate(),
			Slug:        key,
			Source:      owner,
			ChoiceGroup: grp,
		})
	}
	return nil
}

// CanUndo implements Handler
func (h *LanguageHandler) CanUndo(_ *entities.Character, _ *choice.Decision) bool { return true }

// Undo implements Handler
func (h *LanguageHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	h.clear(char, ownerFor(d.Source, sourceKey(d)), group(d))
	return nil
}

func (h *LanguageHandler) clear(char *entities.Character, owner entities.OwnerRef, grp string) {
	char.Languages = removeWhere(char.Languages, func(l *entities.CharacterLanguage) bool {
		return l.Source == owner && l.ChoiceGroup == grp
	})
}
