// Package choices routes choice operations to the handler that owns each
// decision type and runs every mutation inside one character transaction.
package choices

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/metrics"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/choices/handlers"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/services/choices"
)

// Config holds the dependencies for the choice orchestrator
type Config struct {
	CharacterRepo character.Repository
	// Handlers in registration order. Every choice.Type needs exactly one.
	Handlers []handlers.Handler
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if len(c.Handlers) == 0 {
		vb.RequiredField("Handlers")
	}

	return vb.Build()
}

// Orchestrator implements the choices.Service interface
type Orchestrator struct {
	characterRepo character.Repository
	handlers      []handlers.Handler
	byType        map[choice.Type]handlers.Handler
}

// Ensure Orchestrator implements choices.Service
var _ choices.Service = (*Orchestrator)(nil)

// New creates a new choice orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	byType := make(map[choice.Type]handlers.Handler, len(cfg.Handlers))
	for i, h := range cfg.Handlers {
		if h == nil {
			return nil, errors.InvalidArgumentf("handler %d is nil", i)
		}
		t := h.Type()
		if !t.Valid() {
			return nil, errors.InvalidArgumentf("handler %d has unknown type %q", i, t)
		}
		if _, exists := byType[t]; exists {
			return nil, errors.AlreadyExistsf("handler for %s is registered twice", t)
		}
		byType[t] = h
	}

	var missing []string
	for _, t := range choice.Types() {
		if _, ok := byType[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		return nil, errors.InvalidArgumentf("no handler registered for %s", strings.Join(missing, ", "))
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		handlers:      cfg.Handlers,
		byType:        byType,
	}, nil
}

// RegisteredTypes returns the decision types in registration order
func (o *Orchestrator) RegisteredTypes() []choice.Type {
	types := make([]choice.Type, 0, len(o.handlers))
	for _, h := range o.handlers {
		types = append(types, h.Type())
	}
	return types
}

// ListChoices returns the character's pending decisions in registration order
func (o *Orchestrator) ListChoices(
	ctx context.Context,
	input *choices.ListChoicesInput,
) (_ *choices.ListChoicesOutput, err error) {
	start := time.Now()
	var decisionType string
	defer func() {
		metrics.RecordOperation(metrics.OperationList, decisionType, time.Since(start), err)
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	decisionType = string(input.Type)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if input.Type != "" && !input.Type.Valid() {
		vb.InvalidField("type", "unknown choice type")
	}
	if input.EquipmentMode != "" {
		errors.ValidateEnum("equipmentMode", input.EquipmentMode,
			[]string{handlers.EquipmentModeEquipment, handlers.EquipmentModeGold}, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	pending := make([]*choice.Decision, 0)
	for _, h := range o.handlers {
		t := h.Type()
		if input.Type != "" && t != input.Type {
			continue
		}
		if t == choice.TypeEquipment && input.EquipmentMode == handlers.EquipmentModeGold {
			continue
		}

		decisions, err := h.Enumerate(ctx, char)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to enumerate %s choices", t)
		}

		count := 0
		for _, d := range decisions {
			if d.Pending() {
				pending = append(pending, d)
				count++
			}
		}
		metrics.RecordPending(string(t), count)
	}

	slog.DebugContext(ctx, "listed pending choices",
		"character_id", input.CharacterID,
		"type", decisionType,
		"count", len(pending))

	return &choices.ListChoicesOutput{Choices: pending}, nil
}

// GetChoice returns one decision, pending or resolved
func (o *Orchestrator) GetChoice(
	ctx context.Context,
	input *choices.GetChoiceInput,
) (_ *choices.GetChoiceOutput, err error) {
	start := time.Now()
	var decisionType string
	defer func() {
		metrics.RecordOperation(metrics.OperationGet, decisionType, time.Since(start), err)
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateChoiceRef(input.CharacterID, input.ChoiceID); err != nil {
		return nil, err
	}

	h, err := o.handlerFor(input.ChoiceID)
	if err != nil {
		return nil, err
	}
	decisionType = string(h.Type())

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	d, err := locate(ctx, h, char, input.ChoiceID)
	if err != nil {
		return nil, err
	}

	return &choices.GetChoiceOutput{Choice: d}, nil
}

// GetSummary counts the character's pending decisions
func (o *Orchestrator) GetSummary(
	ctx context.Context,
	input *choices.GetSummaryInput,
) (_ *choices.GetSummaryOutput, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordOperation(metrics.OperationSummary, "", time.Since(start), err)
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	var all []*choice.Decision
	for _, h := range o.handlers {
		decisions, err := h.Enumerate(ctx, char)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to enumerate %s choices", h.Type())
		}
		all = append(all, decisions...)
	}

	return &choices.GetSummaryOutput{Summary: choice.Summarize(all)}, nil
}

// ResolveChoice applies a selection and saves the character atomically
func (o *Orchestrator) ResolveChoice(
	ctx context.Context,
	input *choices.ResolveChoiceInput,
) (_ *choices.ResolveChoiceOutput, err error) {
	start := time.Now()
	var decisionType string
	defer func() {
		metrics.RecordOperation(metrics.OperationResolve, decisionType, time.Since(start), err)
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateChoiceRef(input.CharacterID, input.ChoiceID); err != nil {
		return nil, err
	}
	if input.Selection == nil {
		return nil, errors.InvalidSelection(input.ChoiceID, nil, "selection is required")
	}

	h, err := o.handlerFor(input.ChoiceID)
	if err != nil {
		return nil, err
	}
	decisionType = string(h.Type())

	var resolved *choice.Decision
	out, err := o.characterRepo.Transact(ctx, character.TransactInput{
		ID: input.CharacterID,
		Fn: func(ctx context.Context, char *entities.Character) error {
			d, err := locate(ctx, h, char, input.ChoiceID)
			if err != nil {
				return err
			}
			if err := h.Resolve(ctx, char, d, input.Selection); err != nil {
				return err
			}
			resolved, err = find(ctx, h, char, input.ChoiceID)
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "choice resolved",
		"character_id", input.CharacterID,
		"choice_id", input.ChoiceID,
		"type", decisionType,
		"attempts", out.Attempts)

	return &choices.ResolveChoiceOutput{
		Choice:    resolved,
		Character: out.Character,
	}, nil
}

// CanUndo reports whether a decision's resolution can still be reversed
func (o *Orchestrator) CanUndo(
	ctx context.Context,
	input *choices.CanUndoInput,
) (_ *choices.CanUndoOutput, err error) {
	start := time.Now()
	var decisionType string
	defer func() {
		metrics.RecordOperation(metrics.OperationCanUndo, decisionType, time.Since(start), err)
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateChoiceRef(input.CharacterID, input.ChoiceID); err != nil {
		return nil, err
	}

	h, err := o.handlerFor(input.ChoiceID)
	if err != nil {
		return nil, err
	}
	decisionType = string(h.Type())

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	d, err := locate(ctx, h, char, input.ChoiceID)
	if err != nil {
		return nil, err
	}

	return &choices.CanUndoOutput{CanUndo: h.CanUndo(char, d)}, nil
}

// UndoChoice reverses a decision's resolution and saves the character atomically
func (o *Orchestrator) UndoChoice(
	ctx context.Context,
	input *choices.UndoChoiceInput,
) (_ *choices.UndoChoiceOutput, err error) {
	start := time.Now()
	var decisionType string
	defer func() {
		metrics.RecordOperation(metrics.OperationUndo, decisionType, time.Since(start), err)
	}()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateChoiceRef(input.CharacterID, input.ChoiceID); err != nil {
		return nil, err
	}

	h, err := o.handlerFor(input.ChoiceID)
	if err != nil {
		return nil, err
	}
	decisionType = string(h.Type())

	var reverted *choice.Decision
	out, err := o.characterRepo.Transact(ctx, character.TransactInput{
		ID: input.CharacterID,
		Fn: func(ctx context.Context, char *entities.Character) error {
			d, err := locate(ctx, h, char, input.ChoiceID)
			if err != nil {
				return err
			}
			if !h.CanUndo(char, d) {
				return errors.ChoiceNotUndoable(input.ChoiceID, "choice can no longer be undone")
			}
			if err := h.Undo(ctx, char, d); err != nil {
				return err
			}
			reverted, err = find(ctx, h, char, input.ChoiceID)
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "choice undone",
		"character_id", input.CharacterID,
		"choice_id", input.ChoiceID,
		"type", decisionType,
		"attempts", out.Attempts)

	return &choices.UndoChoiceOutput{
		Choice:    reverted,
		Character: out.Character,
	}, nil
}

func (o *Orchestrator) load(ctx context.Context, characterID string) (*entities.Character, error) {
	out, err := o.characterRepo.Get(ctx, character.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}
	return out.Character, nil
}

// handlerFor decodes a choice id and returns the handler owning its type
func (o *Orchestrator) handlerFor(choiceID string) (handlers.Handler, error) {
	id, err := choice.DecodeID(choiceID)
	if err != nil {
		return nil, err
	}
	h, ok := o.byType[id.Type]
	if !ok {
		return nil, errors.ChoiceNotFound(choiceID, "unknown choice type")
	}
	return h, nil
}

// locate finds choiceID among the handler's current decisions
func locate(ctx context.Context, h handlers.Handler, char *entities.Character, choiceID string) (*choice.Decision, error) {
	d, err := find(ctx, h, char, choiceID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.ChoiceNotFound(choiceID, "choice is not available for this character")
	}
	return d, nil
}

// find is locate without the not-found error. A resolution may make its own
// decision disappear, so callers re-deriving after a write use find.
func find(ctx context.Context, h handlers.Handler, char *entities.Character, choiceID string) (*choice.Decision, error) {
	decisions, err := h.Enumerate(ctx, char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to enumerate %s choices", h.Type())
	}
	for _, d := range decisions {
		if d.ID == choiceID {
			return d, nil
		}
	}
	return nil, nil
}

func validateChoiceRef(characterID, choiceID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	errors.ValidateRequired("choiceID", choiceID, vb)
	return vb.Build()
}
