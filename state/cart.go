package state

import "github.com/cosmodumplings/cosmo-pos/models"

// Cart operations. The cart belongs to this terminal's session only; it is
// never written to the remote store.

func (a *AppState) Cart() []models.CartItem {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.CartItem(nil), a.cart...)
}

func (a *AppState) CartCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	count := 0
	for _, item := range a.cart {
		count += item.Quantity
	}
	return count
}

// AddToCart merges into an existing line only when both the product and the
// selected option match; the same product with a different option is a
// separate line.
func (a *AppState) AddToCart(product models.Product, quantity int, notes, selectedOption string) {
	if quantity < 1 {
		quantity = 1
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.cart {
		if a.cart[i].Product.ID == product.ID && a.cart[i].SelectedOption == selectedOption {
			a.cart[i].Quantity += quantity
			if notes != "" {
				a.cart[i].Notes = notes
			}
			return
		}
	}

	a.cart = append(a.cart, models.CartItem{
		Product:        product,
		Quantity:       quantity,
		Notes:          notes,
		SelectedOption: selectedOption,
	})
}

// AdjustCartQuantity applies a +/- delta to a line, clamped at 1. Dropping a
// line is an explicit remove, never a decrement to zero.
func (a *AppState) AdjustCartQuantity(index, delta int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.cart) {
		return false
	}
	newQty := a.cart[index].Quantity + delta
	if newQty < 1 {
		newQty = 1
	}
	a.cart[index].Quantity = newQty
	return true
}

func (a *AppState) SetCartNote(index int, note string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.cart) {
		return false
	}
	a.cart[index].Notes = note
	return true
}

func (a *AppState) RemoveCartItem(index int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.cart) {
		return false
	}
	a.cart = append(a.cart[:index], a.cart[index+1:]...)
	return true
}

func (a *AppState) ClearCart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = nil
}
