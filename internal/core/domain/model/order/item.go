package order

import (
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrDuplicateOptionSelection is returned when two choices are selected for
// the same option within one item.
var ErrDuplicateOptionSelection = errs.NewValueIsInvalidError(
	"an option may carry at most one selected choice per item",
)

// Selection is one customization picked for an item: a choice on an option
// axis of the item's dish. Validity of the pairing against the catalog is the
// order builder's concern; the selection itself only carries the references.
type Selection struct {
	optionID kernel.UUID
	choiceID kernel.UUID
}

// NewSelection creates a Selection after validating both references.
func NewSelection(optionID, choiceID kernel.UUID) (Selection, error) {
	if err := optionID.Validate(); err != nil {
		return Selection{}, err
	}
	if err := choiceID.Validate(); err != nil {
		return Selection{}, err
	}
	return Selection{optionID: optionID, choiceID: choiceID}, nil
}

// OptionID returns the option axis this selection belongs to.
func (s Selection) OptionID() kernel.UUID {
	return s.optionID
}

// ChoiceID returns the selected choice on the option axis.
func (s Selection) ChoiceID() kernel.UUID {
	return s.choiceID
}

// Item is one line of an order: a dish, a count, and the selected
// customizations. Items exist only inside an Order.
type Item struct {
	dishID     kernel.UUID
	count      int
	selections []Selection
}

// NewItem creates an Item. A zero count defaults to 1 (count is optional on
// the wire); negative counts are invalid. Option ids must be pairwise
// distinct across the item's selections.
func NewItem(dishID kernel.UUID, count int, selections []Selection) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	if count < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"count",
			fmt.Errorf("%d is not a valid item count", count),
		)
	}
	if count == 0 {
		count = 1
	}

	seen := make(map[kernel.UUID]bool, len(selections))
	for _, sel := range selections {
		if seen[sel.optionID] {
			return Item{}, ErrDuplicateOptionSelection
		}
		seen[sel.optionID] = true
	}

	return Item{dishID: dishID, count: count, selections: selections}, nil
}

// DishID returns the catalog dish this item orders.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Count returns how many units of the dish are ordered; always >= 1.
func (i Item) Count() int {
	return i.count
}

// Selections returns the item's option-choice selections.
func (i Item) Selections() []Selection {
	return i.selections
}
