package handlers

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// EquipmentHandler resolves the lettered starting equipment bundles of the
// primary class. It does not look at the equipment mode marker: callers
// that took gold pass the mode when listing so these are hidden.
type EquipmentHandler struct {
	base
}

// Type implements Handler
func (h *EquipmentHandler) Type() choice.Type { return choice.TypeEquipment }

// optionLetter maps option 1 to "a", 2 to "b" and so on
func optionLetter(n int) string {
	return string(rune('a' + n - 1))
}

// equipmentGroups groups a class's equipment choices in first-seen order,
// each sorted by option number.
func equipmentGroups(cls *entities.Class) ([]string, map[string][]entities.EquipmentChoice) {
	var order []string
	groups := make(map[string][]entities.EquipmentChoice)
	for _, ec := range cls.EquipmentChoices {
		if _, ok := groups[ec.Group]; !ok {
			order = append(order, ec.Group)
		}
		groups[ec.Group] = append(groups[ec.Group], ec)
	}
	for _, options := range groups {
		sort.SliceStable(options, func(i, j int) bool { return options[i].Option < options[j].Option })
	}
	return order, groups
}

// Enumerate implements Handler
func (h *EquipmentHandler) Enumerate(ctx context.Context, char *entities.Character) ([]*choice.Decision, error) {
	cls, err := h.startingClass(ctx, char)
	if err != nil || cls == nil {
		return nil, err
	}

	owner := entities.Owner(entities.OwnerKindClass, cls.Slug)
	order, groups := equipmentGroups(cls)

	var out []*choice.Decision
	for _, grp := range order {
		d, err := newDecision(choice.TypeEquipment, choice.SourceClass, cls.Slug, 1, grp)
		if err != nil {
			return nil, err
		}
		d.SourceName = cls.Name
		d.Metadata["class_slug"] = cls.Slug

		for _, ec := range groups[grp] {
			opt, err := h.option(ctx, ec)
			if err != nil {
				return nil, err
			}
			d.Options = append(d.Options, opt)
		}

		for _, row := range char.Inventory {
			if row.Source == owner &&
				row.Metadata.Origin == entities.InventoryOriginStartingEquipment &&
				row.Metadata.ChoiceGroup == grp {
				d.SetSelected([]string{row.Metadata.SelectedOption})
				break
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (h *EquipmentHandler) option(ctx context.Context, ec entities.EquipmentChoice) (choice.Option, error) {
	opt := choice.Option{
		Key:         optionLetter(ec.Option),
		Name:        fmt.Sprintf("Option %s", optionLetter(ec.Option)),
		Description: ec.Description,
	}
	for _, line := range ec.Items {
		if line.Category != "" {
			opt.Items = append(opt.Items, choice.OptionItem{
				Name:       line.Category,
				Quantity:   line.Quantity,
				IsCategory: true,
				Category:   line.Category,
			})
			continue
		}
		item, err := h.catalog.GetItem(ctx, line.Item)
		if err != nil {
			return choice.Option{}, errors.Wrapf(err, "failed to load item %s", line.Item)
		}
		oi := choice.OptionItem{Slug: item.Slug, Name: item.Name, Quantity: line.Quantity, IsPack: item.IsPack}
		for _, content := range item.Contents {
			oi.Contents = append(oi.Contents, choice.PackLine{Slug: content.Item, Quantity: content.Quantity})
		}
		opt.Items = append(opt.Items, oi)
	}
	return opt, nil
}

// Resolve implements Handler
func (h *EquipmentHandler) Resolve(ctx context.Context, char *entities.Character, d *choice.Decision, sel *choice.Selection) error {
	keys, err := pick(d, sel, true)
	if err != nil {
		return err
	}
	opt := d.Option(keys[0])

	type grant struct {
		slug     string
		quantity int
	}
	var grants []grant
	for i, line := range opt.Items {
		slug, quantity := line.Slug, line.Quantity
		if line.IsCategory {
			chosen := sel.ItemSelections[strconv.Itoa(i)]
			if chosen == "" {
				return errors.InvalidSelection(d.ID, i,
					fmt.Sprintf("item_selections[%d] must name a %s item", i, line.Category))
			}
			item, err := h.catalog.GetItem(ctx, chosen)
			if err != nil {
				if errors.IsNotFound(err) {
					return errors.InvalidSelection(d.ID, chosen, fmt.Sprintf("item %s does not exist", chosen))
				}
				return errors.Wrapf(err, "failed to load item %s", chosen)
			}
			if item.Category != line.Category {
				return errors.InvalidSelection(d.ID, chosen, fmt.Sprintf("%s is not a %s item", item.Name, line.Category))
			}
			slug = item.Slug
		}
		if line.IsPack {
			for _, content := range line.Contents {
				grants = append(grants, grant{slug: content.Slug, quantity: content.Quantity * quantity})
			}
			continue
		}
		grants = append(grants, grant{slug: slug, quantity: quantity})
	}

	owner := entities.Owner(entities.OwnerKindClass, sourceKey(d))
	grp := group(d)
	h.clear(char, owner, grp)

	for _, g := range grants {
		char.Inventory = append(char.Inventory, &entities.InventoryItem{
			ID:       h.ids.Generate(),
			ItemSlug: g.slug,
			Quantity: g.quantity,
			Source:   owner,
			Metadata: entities.InventoryMetadata{
				Origin:         entities.InventoryOriginStartingEquipment,
				ChoiceGroup:    grp,
				SelectedOption: opt.Key,
			},
		})
	}
	return nil
}

// CanUndo implements Handler
func (h *EquipmentHandler) CanUndo(char *entities.Character, _ *choice.Decision) bool {
	return char.TotalLevel() == 1
}

// Undo implements Handler
func (h *EquipmentHandler) Undo(_ context.Context, char *entities.Character, d *choice.Decision) error {
	if !h.CanUndo(char, d) {
		return notUndoable(d, "starting equipment can only be changed at first level")
	}
	h.clear(char, entities.Owner(entities.OwnerKindClass, sourceKey(d)), group(d))
	return nil
}

func (h *EquipmentHandler) clear(char *entities.Character, owner entities.OwnerRef, grp string) {
	char.Inventory = removeWhere(char.Inventory, func(row *entities.InventoryItem) bool {
		return row.Source == owner &&
			row.Metadata.Origin == entities.InventoryOriginStartingEquipment &&
			row.Metadata.ChoiceGroup == grp
	})
}
