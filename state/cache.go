// Package state owns the terminal's in-memory mirror of the remote
// collections plus the session cart and the connectivity flag. Everything is
// kept behind one struct passed to the controllers; there are no package
// globals. Realtime events and HTTP handlers mutate the same cache, so all
// access goes through the mutex.
package state

import (
	"sync"

	"github.com/cosmodumplings/cosmo-pos/models"
)

type AppState struct {
	mu sync.RWMutex

	products   []models.Product
	users      []models.User
	customers  []models.Customer
	orders     []models.Order
	categories []models.CategoryItem
	statuses   []models.OrderStatus
	screens    []models.KitchenScreen

	cart      []models.CartItem
	connected bool
}

func NewAppState() *AppState {
	return &AppState{}
}

func (a *AppState) Connected() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.connected
}

func (a *AppState) SetConnected(connected bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.connected = connected
}

// Snapshot getters copy the backing slice so callers can range freely while
// realtime events keep landing.

func (a *AppState) Products() []models.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Product(nil), a.products...)
}

func (a *AppState) Users() []models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.User(nil), a.users...)
}

func (a *AppState) Customers() []models.Customer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Customer(nil), a.customers...)
}

func (a *AppState) Orders() []models.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Order(nil), a.orders...)
}

func (a *AppState) Categories() []models.CategoryItem {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.CategoryItem(nil), a.categories...)
}

func (a *AppState) OrderStatuses() []models.OrderStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.OrderStatus(nil), a.statuses...)
}

func (a *AppState) KitchenScreens() []models.KitchenScreen {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.KitchenScreen(nil), a.screens...)
}

func (a *AppState) SetProducts(products []models.Product) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.products = products
}

func (a *AppState) SetUsers(users []models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.users = users
}

func (a *AppState) SetCustomers(customers []models.Customer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.customers = customers
}

func (a *AppState) SetOrders(orders []models.Order) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orders = orders
}

func (a *AppState) SetCategories(categories []models.CategoryItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.categories = categories
}

func (a *AppState) SetOrderStatuses(statuses []models.OrderStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.statuses = statuses
}

func (a *AppState) SetKitchenScreens(screens []models.KitchenScreen) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screens = screens
}

func (a *AppState) ProductByID(id string) (models.Product, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (a *AppState) UserByID(id string) (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, u := range a.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser appends a user unless the id is already present. Users have no
// realtime channel, so this is only called for local admin actions.
func (a *AppState) AddUser(user models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if u.ID == user.ID {
			return
		}
	}
	a.users = append(a.users, user)
}

func (a *AppState) RemoveUser(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.users {
		if a.users[i].ID == id {
			a.users = append(a.users[:i], a.users[i+1:]...)
			return
		}
	}
}

// PrependOrder records a freshly placed order at the head of history. The
// duplicate check covers the window where the realtime insert event for our
// own write beats this local insert.
func (a *AppState) PrependOrder(order models.Order) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, o := range a.orders {
		if o.ID == order.ID {
			return
		}
	}
	a.orders = append([]models.Order{order}, a.orders...)
}

// SetOrderStatus rewrites one order's status label in the cache.
func (a *AppState) SetOrderStatus(orderID, status string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.orders {
		if a.orders[i].ID == orderID {
			a.orders[i].Status = status
			return true
		}
	}
	return false
}

func (a *AppState) OrderByID(id string) (models.Order, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, o := range a.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// DecrementStock applies the optimistic stock adjustment for a checkout and
// returns the updated product rows so the caller can push them to the remote
// store. Stock never goes below zero.
func (a *AppState) DecrementStock(quantities map[string]int) []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	updated := make([]models.Product, 0, len(quantities))
	for i := range a.products {
		qty, ok := quantities[a.products[i].ID]
		if !ok || qty <= 0 {
			continue
		}
		newStock := a.products[i].Stock - qty
		if newStock < 0 {
			newStock = 0
		}
		a.products[i].Stock = newStock
		updated = append(updated, a.products[i])
	}
	return updated
}
