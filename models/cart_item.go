package models

// CartItem lives only between "add to cart" and checkout. The Product field
// is a value copy, never a pointer: once an item lands inside an Order the
// snapshot must not follow later edits to the catalog.
type CartItem struct {
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
	Notes          string  `json:"notes,omitempty"`
	SelectedOption string  `json:"selectedOption,omitempty"`
}
