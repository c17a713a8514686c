package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/seed"
)

func setupStoreDB(t *testing.T, migrate bool) *RemoteStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	if migrate {
		err = db.AutoMigrate(
			&models.Product{},
			&models.User{},
			&models.Customer{},
			&models.Order{},
			&models.OrderStatus{},
			&models.CategoryItem{},
			&models.KitchenScreen{},
		)
		assert.NoError(t, err)
	}
	return NewRemoteStore(db)
}

func TestListEmptyTableIsNonNil(t *testing.T) {
	s := setupStoreDB(t, true)

	products := s.ListProducts()
	assert.NotNil(t, products)
	assert.Empty(t, products)

	orders := s.ListOrders()
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestListMissingTableReturnsNil(t *testing.T) {
	s := setupStoreDB(t, false)

	assert.Nil(t, s.ListProducts())
	assert.Nil(t, s.ListUsers())
	assert.Nil(t, s.ListOrders())
}

func TestListOrderStatusesMissingTableServesDefaults(t *testing.T) {
	s := setupStoreDB(t, false)

	statuses := s.ListOrderStatuses()
	assert.Equal(t, seed.OrderStatuses(), statuses)

	categories := s.ListCategories()
	assert.Equal(t, seed.Categories(), categories)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := setupStoreDB(t, true)

	old := models.Order{ID: "ORD-1", PaymentMethod: models.PaymentCard, Type: models.OrderTypeTakeaway, Date: "2024-01-01 09:00", Status: "Completed"}
	recent := models.Order{ID: "ORD-2", PaymentMethod: models.PaymentCash, Type: models.OrderTypeTakeaway, Date: "2024-01-02 09:00", Status: "Pending"}
	assert.NotNil(t, s.AddOrder(old))
	assert.NotNil(t, s.AddOrder(recent))

	// Force distinct created_at values.
	assert.NoError(t, s.DB.Model(&models.Order{}).Where("id = ?", "ORD-1").
		Update("created_at", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)).Error)
	assert.NoError(t, s.DB.Model(&models.Order{}).Where("id = ?", "ORD-2").
		Update("created_at", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)).Error)

	orders := s.ListOrders()
	assert.Len(t, orders, 2)
	assert.Equal(t, "ORD-2", orders[0].ID)
}

func TestAddOrderStripsUnknownOpenDrawerColumn(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	// An orders table from before the open_drawer migration.
	assert.NoError(t, db.Exec(`CREATE TABLE orders (
		id varchar(36) PRIMARY KEY,
		items text,
		total real,
		payment_method text,
		type text,
		table_number integer,
		date text,
		status text,
		order_by text,
		tendered real,
		"change" real,
		created_at datetime
	)`).Error)

	s := NewRemoteStore(db)
	saved := s.AddOrder(models.Order{
		ID:            "ORD-OLD",
		PaymentMethod: models.PaymentCash,
		Type:          models.OrderTypeTakeaway,
		Date:          "2024-01-01 10:00",
		Status:        "Pending",
		OpenDrawer:    true,
	})
	assert.NotNil(t, saved)

	var count int64
	assert.NoError(t, db.Table("orders").Where("id = ?", "ORD-OLD").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := setupStoreDB(t, true)

	assert.NotNil(t, s.AddOrder(models.Order{ID: "ORD-1", PaymentMethod: models.PaymentCard, Type: models.OrderTypeTakeaway, Date: "2024-01-01 09:00", Status: "Pending"}))
	assert.True(t, s.UpdateOrderStatus("ORD-1", "Preparing"))

	orders := s.ListOrders()
	assert.Equal(t, "Preparing", orders[0].Status)
}

func TestCategoryRoundTrip(t *testing.T) {
	s := setupStoreDB(t, true)

	saved := s.AddCategory("Specials")
	assert.NotNil(t, saved)
	assert.NotZero(t, saved.ID)

	categories := s.ListCategories()
	assert.Len(t, categories, 1)
	assert.Equal(t, "Specials", categories[0].Name)

	assert.True(t, s.DeleteCategory(saved.ID))
	assert.Empty(t, s.ListCategories())
}

func TestOfflineStoreDegrades(t *testing.T) {
	s := NewRemoteStore(nil)

	assert.Nil(t, s.ListProducts())
	assert.Nil(t, s.ListOrderStatuses())
	assert.Nil(t, s.AddOrder(models.Order{ID: "ORD-1"}))
	assert.False(t, s.UpdateOrderStatus("ORD-1", "Preparing"))
	assert.False(t, s.DeleteProduct("p1"))
}
