// Package external imports reference data from the D&D 5e API
package external

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// maxClassLevel is the highest class level fetched for spell progression
const maxClassLevel = 20

// Client defines the interface for external API interactions
type Client interface {
	// ImportCatalog fetches the selected reference data and converts it into
	// catalog entities. Slugs are prefixed with "srd:".
	ImportCatalog(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// ImportInput selects the sections to import
type ImportInput struct {
	Races   bool
	Classes bool
	Spells  bool
}

// ImportOutput holds the converted reference data
type ImportOutput struct {
	Data *entities.CatalogData
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Detail lookups are cached for CacheTTL
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) ImportCatalog(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data := &entities.CatalogData{}

	if input.Races {
		races, err := c.importRaces(ctx)
		if err != nil {
			return nil, err
		}
		data.Races = races
		data.Languages = languagesOf(races)
	}

	if input.Classes {
		classes, err := c.importClasses(ctx)
		if err != nil {
			return nil, err
		}
		data.Classes = classes
	}

	if input.Spells {
		spells, err := c.importSpells(ctx)
		if err != nil {
			return nil, err
		}
		data.Spells = spells
	}

	slog.InfoContext(ctx, "imported catalog",
		"races", len(data.Races),
		"classes", len(data.Classes),
		"spells", len(data.Spells),
		"languages", len(data.Languages))

	return &ImportOutput{Data: data}, nil
}

func (c *client) importRaces(ctx context.Context) ([]*entities.Race, error) {
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list races from D&D 5e API")
	}
	slog.DebugContext(ctx, "got race references", "count", len(refs))

	return fetchAll(refs, func(ref *apientities.ReferenceItem) (*entities.Race, error) {
		race, err := c.dnd5eClient.GetRace(ref.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get race %s", ref.Key)
		}
		return convertRace(race), nil
	})
}

func (c *client) importClasses(ctx context.Context) ([]*entities.Class, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classes from D&D 5e API")
	}
	slog.DebugContext(ctx, "got class references", "count", len(refs))

	return fetchAll(refs, func(ref *apientities.ReferenceItem) (*entities.Class, error) {
		class, err := c.dnd5eClient.GetClass(ref.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get class %s", ref.Key)
		}

		levels := make([]*apientities.Level, 0, maxClassLevel)
		for level := 1; level <= maxClassLevel; level++ {
			lvl, err := c.dnd5eClient.GetClassLevel(ref.Key, level)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to get class level %d for %s", level, ref.Key)
			}
			levels = append(levels, lvl)
		}

		return convertClass(class, levels), nil
	})
}

func (c *client) importSpells(ctx context.Context) ([]*entities.Spell, error) {
	refs, err := c.dnd5eClient.ListSpells(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells from D&D 5e API")
	}
	slog.DebugContext(ctx, "got spell references", "count", len(refs))

	return fetchAll(refs, func(ref *apientities.ReferenceItem) (*entities.Spell, error) {
		spell, err := c.dnd5eClient.GetSpell(ref.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get spell %s", ref.Key)
		}
		return convertSpell(spell), nil
	})
}

// fetchAll loads the details of every reference concurrently and keeps the
// reference order. The first error wins.
func fetchAll[T any](refs []*apientities.ReferenceItem, fetch func(*apientities.ReferenceItem) (T, error)) ([]T, error) {
	results := make([]T, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, ref *apientities.ReferenceItem) {
			defer wg.Done()

			result, err := fetch(ref)
			if err != nil {
				slog.Error("failed to load reference details", "key", ref.Key, "error", err.Error())
				errChan <- err
				return
			}
			results[idx] = result
		}(i, ref)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// languagesOf collects the languages spoken or offered by races
func languagesOf(races []*entities.Race) []*entities.Language {
	seen := make(map[string]bool)
	var out []*entities.Language
	add := func(slug string) {
		if slug == "" || seen[slug] {
			return
		}
		seen[slug] = true
		out = append(out, &entities.Language{
			Slug:      slug,
			Name:      languageName(slug),
			Learnable: true,
		})
	}

	for _, race := range races {
		for _, slug := range race.Languages {
			add(slug)
		}
		for _, lc := range race.LanguageChoices {
			for _, slug := range lc.Options {
				add(slug)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

func languageName(slug string) string {
	key := trimSource(slug)
	if key == "" {
		return slug
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
