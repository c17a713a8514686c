package store

import (
	"sort"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/seed"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// All list calls share one contract: a nil result means the collection is
// unreachable, a non-nil empty slice means the collection is really empty.

func (s *RemoteStore) ListProducts() []models.Product {
	if s.offline() {
		return nil
	}
	products := make([]models.Product, 0)
	if err := s.DB.Find(&products).Error; err != nil {
		logDBError("Products", err)
		return nil
	}
	return products
}

func (s *RemoteStore) ListUsers() []models.User {
	if s.offline() {
		return nil
	}
	users := make([]models.User, 0)
	if err := s.DB.Find(&users).Error; err != nil {
		logDBError("Users", err)
		return nil
	}
	return users
}

func (s *RemoteStore) ListCustomers() []models.Customer {
	if s.offline() {
		return nil
	}
	customers := make([]models.Customer, 0)
	if err := s.DB.Find(&customers).Error; err != nil {
		logDBError("Customers", err)
		return nil
	}
	return customers
}

// ListOrders asks the backend for newest-first ordering; if the sorted query
// fails it retries unsorted and sorts locally so history still renders.
func (s *RemoteStore) ListOrders() []models.Order {
	if s.offline() {
		return nil
	}
	orders := make([]models.Order, 0)
	if err := s.DB.Order("created_at DESC").Find(&orders).Error; err != nil {
		logDBError("Orders (sorted)", err)

		orders = make([]models.Order, 0)
		if err := s.DB.Find(&orders).Error; err != nil {
			logDBError("Orders", err)
			return nil
		}
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		})
	}
	return orders
}

func (s *RemoteStore) ListKitchenScreens() []models.KitchenScreen {
	if s.offline() {
		return nil
	}
	screens := make([]models.KitchenScreen, 0)
	if err := s.DB.Find(&screens).Error; err != nil {
		logDBError("Kitchen Screens", err)
		return nil
	}
	return screens
}

// ListOrderStatuses serves the built-in status set when the table has not
// been provisioned, so checkout and the kitchen display are never blocked by
// missing schema.
func (s *RemoteStore) ListOrderStatuses() []models.OrderStatus {
	if s.offline() {
		return nil
	}
	statuses := make([]models.OrderStatus, 0)
	if err := s.DB.Order("id ASC").Find(&statuses).Error; err != nil {
		if isMissingTable(err) {
			utils.InfoLogger.Printf("Order Statuses table missing, returning defaults")
			return seed.OrderStatuses()
		}
		logDBError("Order Statuses", err)
		return nil
	}
	return statuses
}

// ListCategories mirrors ListOrderStatuses: defaults instead of failure when
// the table is missing.
func (s *RemoteStore) ListCategories() []models.CategoryItem {
	if s.offline() {
		return nil
	}
	categories := make([]models.CategoryItem, 0)
	if err := s.DB.Order("name ASC").Find(&categories).Error; err != nil {
		if isMissingTable(err) {
			utils.InfoLogger.Printf("Categories table missing, returning defaults")
			return seed.Categories()
		}
		logDBError("Categories", err)
		return nil
	}
	return categories
}
