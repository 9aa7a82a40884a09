package model

// CartItem is a single line in the cart. Quantity is always >= 1; a
// product appears in at most one line item per cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line item.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartState is a snapshot of the cart: the line items plus the derived
// ItemCount and Total. The derived fields are recomputed from Items and
// never set independently.
type CartState struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     float64    `json:"total"`
}

// NewCartState builds a snapshot from the given line items, computing
// the derived fields.
func NewCartState(items []CartItem) CartState {
	state := CartState{Items: items}
	for _, item := range items {
		state.ItemCount += item.Quantity
		state.Total += item.Subtotal()
	}
	return state
}

// CloneItems returns a deep copy of a line-item slice so that holders of
// the copy are isolated from later cart mutations.
func CloneItems(items []CartItem) []CartItem {
	if len(items) == 0 {
		return []CartItem{}
	}
	cloned := make([]CartItem, len(items))
	copy(cloned, items)
	return cloned
}
