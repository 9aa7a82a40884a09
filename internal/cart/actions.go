package cart

import "storefront/internal/model"

// actionKind tags the cart state transitions.
type actionKind int

const (
	// actionAdd merges quantity into an existing line item or appends a
	// new one.
	actionAdd actionKind = iota

	// actionSetQuantity sets an absolute quantity; zero or less removes
	// the line item. Unknown products are a no-op.
	actionSetQuantity

	// actionClear empties the cart.
	actionClear
)

// action is one cart state transition.
type action struct {
	kind     actionKind
	product  model.Product
	quantity int
}

// reduce applies an action to a line-item slice and returns the new
// slice. It is pure: the input slice is never modified.
func reduce(items []model.CartItem, act action) []model.CartItem {
	switch act.kind {
	case actionAdd:
		next := model.CloneItems(items)
		for i := range next {
			if next[i].Product.ID == act.product.ID {
				next[i].Quantity += act.quantity
				return next
			}
		}
		return append(next, model.CartItem{Product: act.product, Quantity: act.quantity})

	case actionSetQuantity:
		next := make([]model.CartItem, 0, len(items))
		for _, item := range items {
			if item.Product.ID == act.product.ID {
				if act.quantity > 0 {
					item.Quantity = act.quantity
					next = append(next, item)
				}
				continue
			}
			next = append(next, item)
		}
		return next

	case actionClear:
		return []model.CartItem{}

	default:
		return model.CloneItems(items)
	}
}
