package state

import (
	"sort"
	"strconv"

	"github.com/cosmodumplings/cosmo-pos/models"
)

type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

type Collection string

const (
	CollectionProducts       Collection = "products"
	CollectionOrders         Collection = "orders"
	CollectionOrderStatuses  Collection = "order_statuses"
	CollectionCategories     Collection = "categories"
	CollectionKitchenScreens Collection = "kitchen_screens"
)

// Event is one realtime change notification. Exactly one entity pointer is
// set for inserts and updates; deletes carry only the id.
type Event struct {
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	ID         string     `json:"id"`

	Product  *models.Product       `json:"product,omitempty"`
	Order    *models.Order         `json:"order,omitempty"`
	Status   *models.OrderStatus   `json:"orderStatus,omitempty"`
	Category *models.CategoryItem  `json:"category,omitempty"`
	Screen   *models.KitchenScreen `json:"kitchenScreen,omitempty"`
}

// Apply merges one event into the cache. Every branch is idempotent and
// tolerant of out-of-order arrival: an insert for a known id is dropped (the
// optimistic local write already added it), an update or delete for an
// unknown id is a no-op rather than queued.
func (a *AppState) Apply(event Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch event.Collection {
	case CollectionProducts:
		a.applyProduct(event)
	case CollectionOrders:
		a.applyOrder(event)
	case CollectionOrderStatuses:
		a.applyStatus(event)
	case CollectionCategories:
		a.applyCategory(event)
	case CollectionKitchenScreens:
		a.applyScreen(event)
	}
}

func (a *AppState) applyProduct(event Event) {
	switch event.Action {
	case ActionInsert:
		if event.Product == nil {
			return
		}
		for _, p := range a.products {
			if p.ID == event.Product.ID {
				return
			}
		}
		a.products = append(a.products, *event.Product)
	case ActionUpdate:
		if event.Product == nil {
			return
		}
		for i := range a.products {
			if a.products[i].ID == event.Product.ID {
				a.products[i] = *event.Product
				return
			}
		}
	case ActionDelete:
		for i := range a.products {
			if a.products[i].ID == event.ID {
				a.products = append(a.products[:i], a.products[i+1:]...)
				return
			}
		}
	}
}

func (a *AppState) applyOrder(event Event) {
	switch event.Action {
	case ActionInsert:
		if event.Order == nil {
			return
		}
		for _, o := range a.orders {
			if o.ID == event.Order.ID {
				return
			}
		}
		// Newest first, matching history display order.
		a.orders = append([]models.Order{*event.Order}, a.orders...)
	case ActionUpdate:
		if event.Order == nil {
			return
		}
		for i := range a.orders {
			if a.orders[i].ID == event.Order.ID {
				a.orders[i] = *event.Order
				return
			}
		}
	case ActionDelete:
		for i := range a.orders {
			if a.orders[i].ID == event.ID {
				a.orders = append(a.orders[:i], a.orders[i+1:]...)
				return
			}
		}
	}
}

func (a *AppState) applyStatus(event Event) {
	switch event.Action {
	case ActionInsert:
		if event.Status == nil {
			return
		}
		for _, s := range a.statuses {
			if s.ID == event.Status.ID {
				return
			}
		}
		a.statuses = append(a.statuses, *event.Status)
	case ActionUpdate:
		if event.Status == nil {
			return
		}
		for i := range a.statuses {
			if a.statuses[i].ID == event.Status.ID {
				a.statuses[i] = *event.Status
				return
			}
		}
	case ActionDelete:
		for i := range a.statuses {
			if formatUint(a.statuses[i].ID) == event.ID {
				a.statuses = append(a.statuses[:i], a.statuses[i+1:]...)
				return
			}
		}
	}
}

func (a *AppState) applyCategory(event Event) {
	switch event.Action {
	case ActionInsert:
		if event.Category == nil {
			return
		}
		for _, c := range a.categories {
			if c.ID == event.Category.ID {
				return
			}
		}
		a.categories = append(a.categories, *event.Category)
		sort.SliceStable(a.categories, func(i, j int) bool {
			return a.categories[i].Name < a.categories[j].Name
		})
	case ActionUpdate:
		if event.Category == nil {
			return
		}
		for i := range a.categories {
			if a.categories[i].ID == event.Category.ID {
				a.categories[i] = *event.Category
				return
			}
		}
	case ActionDelete:
		for i := range a.categories {
			if formatUint(a.categories[i].ID) == event.ID {
				a.categories = append(a.categories[:i], a.categories[i+1:]...)
				return
			}
		}
	}
}

func (a *AppState) applyScreen(event Event) {
	switch event.Action {
	case ActionInsert:
		if event.Screen == nil {
			return
		}
		for _, s := range a.screens {
			if s.ID == event.Screen.ID {
				return
			}
		}
		a.screens = append(a.screens, *event.Screen)
	case ActionUpdate:
		if event.Screen == nil {
			return
		}
		for i := range a.screens {
			if a.screens[i].ID == event.Screen.ID {
				a.screens[i] = *event.Screen
				return
			}
		}
	case ActionDelete:
		for i := range a.screens {
			if formatUint(a.screens[i].ID) == event.ID {
				a.screens = append(a.screens[:i], a.screens[i+1:]...)
				return
			}
		}
	}
}

func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
