package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/seed"
)

// stubFetcher returns canned results per collection; nil mimics an
// unreachable backend.
type stubFetcher struct {
	products   []models.Product
	users      []models.User
	customers  []models.Customer
	orders     []models.Order
	screens    []models.KitchenScreen
	statuses   []models.OrderStatus
	categories []models.CategoryItem
}

func (f stubFetcher) ListProducts() []models.Product             { return f.products }
func (f stubFetcher) ListUsers() []models.User                   { return f.users }
func (f stubFetcher) ListCustomers() []models.Customer           { return f.customers }
func (f stubFetcher) ListOrders() []models.Order                 { return f.orders }
func (f stubFetcher) ListKitchenScreens() []models.KitchenScreen { return f.screens }
func (f stubFetcher) ListOrderStatuses() []models.OrderStatus    { return f.statuses }
func (f stubFetcher) ListCategories() []models.CategoryItem      { return f.categories }

func TestLoadAllFallsBackToSeedWhenUnreachable(t *testing.T) {
	st := NewAppState()
	NewLoader(stubFetcher{}, st).LoadAll()

	assert.False(t, st.Connected())
	assert.NotEmpty(t, st.Products())
	assert.NotEmpty(t, st.Users())
	assert.NotEmpty(t, st.Customers())
	assert.NotEmpty(t, st.Orders())
	assert.NotEmpty(t, st.Categories())
	assert.NotEmpty(t, st.OrderStatuses())
	assert.NotEmpty(t, st.KitchenScreens())
}

func TestLoadAllConnectedWithEmptyHistory(t *testing.T) {
	st := NewAppState()
	remote := stubFetcher{
		products:   []models.Product{{ID: "p1", Name: "Dumplings"}},
		users:      seed.Users(),
		customers:  seed.Customers(),
		orders:     []models.Order{},
		screens:    seed.KitchenScreens(),
		statuses:   seed.OrderStatuses(),
		categories: seed.Categories(),
	}
	NewLoader(remote, st).LoadAll()

	assert.True(t, st.Connected())
	assert.Len(t, st.Products(), 1)
	// A reachable but empty history stays empty, never demo data.
	assert.Empty(t, st.Orders())
}

func TestLoadAllSeedsPerCollection(t *testing.T) {
	st := NewAppState()
	remote := stubFetcher{
		products: []models.Product{{ID: "p1"}},
		// users, customers, statuses, categories, screens unreachable
	}
	NewLoader(remote, st).LoadAll()

	assert.True(t, st.Connected())
	assert.Len(t, st.Products(), 1)
	assert.Equal(t, len(seed.Users()), len(st.Users()))
	assert.Equal(t, len(seed.OrderStatuses()), len(st.OrderStatuses()))
	assert.Equal(t, len(seed.Categories()), len(st.Categories()))
	assert.Equal(t, len(seed.KitchenScreens()), len(st.KitchenScreens()))
}

func TestLoadAllEmptyProductsMeansDisconnected(t *testing.T) {
	st := NewAppState()
	remote := stubFetcher{
		products: []models.Product{},
		orders:   []models.Order{{ID: "ORD-1"}},
	}
	NewLoader(remote, st).LoadAll()

	// The connected flag keys off products alone.
	assert.False(t, st.Connected())
	assert.NotEmpty(t, st.Products())
	// Orders that did come back are kept even while flagged disconnected.
	assert.Len(t, st.Orders(), 1)
}

// panicFetcher serves every collection except users, which blows up the way a
// broken backend driver would.
type panicFetcher struct {
	stubFetcher
}

func (f panicFetcher) ListUsers() []models.User {
	panic("backend driver blew up")
}

func TestLoadAllSurvivesFetchPanic(t *testing.T) {
	st := NewAppState()
	remote := panicFetcher{stubFetcher{
		products: []models.Product{{ID: "p1", Name: "Dumplings"}},
		orders:   []models.Order{{ID: "ORD-1"}},
	}}

	// Must not kill the process, and a partial load is discarded wholesale:
	// every collection resets to seed and the terminal reports disconnected.
	NewLoader(remote, st).LoadAll()

	assert.False(t, st.Connected())
	assert.Equal(t, len(seed.Products()), len(st.Products()))
	assert.Equal(t, len(seed.Users()), len(st.Users()))
	assert.Equal(t, len(seed.Customers()), len(st.Customers()))
	assert.Equal(t, len(seed.Orders()), len(st.Orders()))
	assert.Equal(t, len(seed.Categories()), len(st.Categories()))
	assert.Equal(t, len(seed.OrderStatuses()), len(st.OrderStatuses()))
	assert.Equal(t, len(seed.KitchenScreens()), len(st.KitchenScreens()))

	// The fetched product list did not survive the fallback.
	_, ok := st.ProductByID("p1")
	assert.False(t, ok)
}

func TestLoadAllRefreshReplacesState(t *testing.T) {
	st := NewAppState()
	NewLoader(stubFetcher{}, st).LoadAll()
	assert.False(t, st.Connected())

	remote := stubFetcher{products: []models.Product{{ID: "live-1"}}}
	NewLoader(remote, st).LoadAll()

	assert.True(t, st.Connected())
	assert.Len(t, st.Products(), 1)
	assert.Equal(t, "live-1", st.Products()[0].ID)
}
