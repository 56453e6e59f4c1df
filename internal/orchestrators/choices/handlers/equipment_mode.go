package handlers

import (
	"context"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// Equipment modes
const (
	EquipmentModeEquipment = "equipment"
	EquipmentModeGold      = "gold"
)

const (
	startingEquipmentGroup = "starting_equipment"
	goldItemSlug           = "phb:gold-gp"
	metaGoldAmount         = "gold_amount"
	metaStartingWealth     = "starting_wealth"
)

// EquipmentModeHandler lets a first level character take the class's
// starting equipment or its starting wealth in gold. The choice is recorded
// as a zero quantity marker row in the inventory.
type EquipmentModeHandler struct {
	base
}

// Type implements Handler
func (h *EquipmentModeHandler) Type() choice.Type { return choice.TypeEquipmentMode }

// startingClass returns the primary class while the character is first
// level and the class offers both equipment and gold.
func (b *base) startingClass(ctx context.Context, char *entities.Character) (*entities.Class, error) {
	primary := char.PrimaryClass()
	if primary == nil || char.TotalLevel() != 1 {
		return nil, nil
	}
	return b.class(ctx, primary.ClassSlug)
}

// Enumerate implements Handler
func (h *EquipmentModeHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	cls, err := h.startingClass(ctx, char)
	if err != nil || cls == nil {
		return nil, err
	}
	if cls.StartingWealth == nil || len(cls.EquipmentChoices) == 0 {
		return nil, nil
	}

	d, err := newDecision(choice.TypeEquipmentMode, choice.SourceClass, cls.Slug, 1, startingEquipmentGroup)
	if err != nil {
		return nil, err
	}
	d.SourceName = cls.Name
	d.Metadata[metaStartingWealth] = map[string]any{
		"formula": cls.StartingWealth.Formula,
		"average": cls.StartingWealth.Average,
	}
	d.Options = []choice.Option{
		{Key: EquipmentModeEquipment, Name: "Starting Equipment", Description: "Take the class starting equipment"},
		{
			Key:         EquipmentModeGold,
			Name:        "Starting Gold",
			Description: "Take " + cls.StartingWealth.Formula + " gp instead",
			Metadata:    map[string]any{metaGoldAmount: cls.StartingWealth.Average},
		},
	}

	owner := entities.Owner(entities.OwnerKindClass, cls.Slug)
	for _, row := range char.Inventory {
		if row.Source != owner {
			continue
		}
		if isModeMarker(row) {
			d.SetSelected([]string{row.Metadata.Mode})
		}
		if isStartingGold(row) {
			d.Metadata[metaGoldAmount] = row.Quantity
		}
	}
	return []*choice.Decision{d}, nil
}

func isModeMarker(row *entities.InventoryItem) bool {
	return row.Metadata.Marker && row.Metadata.Origin == entities.InventoryOriginEquipmentMode
}

func isStartingGold(row *entities.InventoryItem) bool {
	return row.Metadata.Origin == entities.InventoryOriginStartingWealth
}

// Resolve implements Handler
func (h *EquipmentModeHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}
	mode := keys[0]

	amount := 0
	if mode == EquipmentModeGold {
		if sel.GoldAmount != nil {
			amount = *sel.GoldAmount
		} else {
			amount = intValue(d.Option(EquipmentModeGold).Metadata[metaGoldAmount])
		}
		if amount <= 0 {
			return errors.InvalidSelection(d.ID, amount, "Gold amount must be greater than zero")
		}
		if _, err := h.catalog.GetItem(ctx, goldItemSlug); err != nil {
			return errors.Wrapf(err, "failed to load %s", goldItemSlug)
		}
	}

	owner := entities.Owner(entities.OwnerKindClass, sourceKey(d))
	h.clear(char, owner)

	char.Inventory = append(char.Inventory, &entities.InventoryItem{
		ID:       h.ids.Generate(),
		Quantity: 0,
		Source:   owner,
		Metadata: entities.InventoryMetadata{
			Origin:      entities.InventoryOriginEquipmentMode,
			ChoiceGroup: startingEquipmentGroup,
			Mode:        mode,
			Marker:      true,
		},
	})
	if mode == EquipmentModeGold {
		char.Inventory = append(char.Inventory, &entities.InventoryItem{
			ID:       h.ids.Generate(),
			ItemSlug: goldItemSlug,
			Quantity: amount,
			Source:   owner,
			Metadata: entities.InventoryMetadata{
				Origin:      entities.InventoryOriginStartingWealth,
				ChoiceGroup: startingEquipmentGroup,
			},
		})
	}
	return nil
}

// CanUndo implements Handler
func (h *EquipmentModeHandler) CanUndo(char *entities.Character, _ *choice.Decision) bool {
	return char.TotalLevel() == 1
}

// Undo implements Handler
func (h *EquipmentModeHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "starting equipment can only be changed at first level")
	}
	h.clear(char, entities.Owner(entities.OwnerKindClass, sourceKey(d)))
	return nil
}

func (h *EquipmentModeHandler) clear(char *entities.Character, owner entities.OwnerRef) {
	char.Inventory = removeWhere(char.Inventory, func(row *entities.InventoryItem) bool {
		return row.Source == owner && (isModeMarker(row) || isStartingGold(row))
	})
}
