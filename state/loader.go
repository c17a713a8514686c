package state

import (
	"sync"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/seed"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// Fetcher is the read half of the remote store. nil results mean
// "unreachable", not "empty".
type Fetcher interface {
	ListProducts() []models.Product
	ListUsers() []models.User
	ListCustomers() []models.Customer
	ListOrders() []models.Order
	ListKitchenScreens() []models.KitchenScreen
	ListOrderStatuses() []models.OrderStatus
	ListCategories() []models.CategoryItem
}

// Loader seeds the cache at startup and on manual refresh.
type Loader struct {
	Remote Fetcher
	State  *AppState
}

func NewLoader(remote Fetcher, st *AppState) *Loader {
	return &Loader{Remote: remote, State: st}
}

// LoadAll fetches all seven collections in parallel and adopts each result
// independently, substituting the static seed for anything unreachable or
// empty. The products fetch doubles as the connectivity check: the connected
// flag is true only when products came back non-nil and non-empty. Orders
// are the one exception to blanket seeding; a reachable-but-empty history is
// legitimate and must not be masked by demo data.
//
// A panic inside any fetch is recovered on its own goroutine (it would kill
// the process otherwise) and downgrades the whole load to the full seed
// fallback with connected=false.
func (l *Loader) LoadAll() {
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		panicked   bool
		products   []models.Product
		users      []models.User
		customers  []models.Customer
		orders     []models.Order
		screens    []models.KitchenScreen
		statuses   []models.OrderStatus
		categories []models.CategoryItem
	)

	fetch := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					utils.ErrorLogger.Printf("%s fetch panicked: %v", name, r)
					mu.Lock()
					panicked = true
					mu.Unlock()
				}
			}()
			fn()
		}()
	}

	fetch("products", func() { products = l.Remote.ListProducts() })
	fetch("users", func() { users = l.Remote.ListUsers() })
	fetch("customers", func() { customers = l.Remote.ListCustomers() })
	fetch("orders", func() { orders = l.Remote.ListOrders() })
	fetch("kitchen screens", func() { screens = l.Remote.ListKitchenScreens() })
	fetch("order statuses", func() { statuses = l.Remote.ListOrderStatuses() })
	fetch("categories", func() { categories = l.Remote.ListCategories() })
	wg.Wait()

	if panicked {
		l.seedAll()
		return
	}

	connected := len(products) > 0

	if connected {
		l.State.SetProducts(products)
	} else {
		l.State.SetProducts(seed.Products())
	}

	if len(users) > 0 {
		l.State.SetUsers(users)
	} else {
		l.State.SetUsers(seed.Users())
	}

	if len(customers) > 0 {
		l.State.SetCustomers(customers)
	} else {
		l.State.SetCustomers(seed.Customers())
	}

	if len(orders) > 0 {
		l.State.SetOrders(orders)
	} else if !connected {
		l.State.SetOrders(seed.Orders())
	}

	if len(screens) > 0 {
		l.State.SetKitchenScreens(screens)
	} else {
		l.State.SetKitchenScreens(seed.KitchenScreens())
	}

	if len(statuses) > 0 {
		l.State.SetOrderStatuses(statuses)
	} else {
		l.State.SetOrderStatuses(seed.OrderStatuses())
	}

	if len(categories) > 0 {
		l.State.SetCategories(categories)
	} else {
		l.State.SetCategories(seed.Categories())
	}

	l.State.SetConnected(connected)

	if connected {
		utils.InfoLogger.Printf("remote store reachable, loaded %d products, %d orders", len(products), len(orders))
	} else {
		utils.InfoLogger.Printf("remote store unreachable, running on seed data")
	}
}

// seedAll resets every collection to the static seed, discarding whatever the
// other fetches returned: a partial load after a panic is not trustworthy.
func (l *Loader) seedAll() {
	utils.ErrorLogger.Printf("load failed, falling back to seed data")
	l.State.SetConnected(false)
	l.State.SetProducts(seed.Products())
	l.State.SetUsers(seed.Users())
	l.State.SetCustomers(seed.Customers())
	l.State.SetOrders(seed.Orders())
	l.State.SetCategories(seed.Categories())
	l.State.SetOrderStatuses(seed.OrderStatuses())
	l.State.SetKitchenScreens(seed.KitchenScreens())
}
