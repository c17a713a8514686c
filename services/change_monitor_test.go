package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cosmodumplings/cosmo-pos/kds"
	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/state"
)

func setupMonitorDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named shared-cache DB: the monitor reads rows on a second connection
	// while its journal transaction is open, which a plain :memory: database
	// cannot serve.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderStatus{},
		&models.CategoryItem{},
		&models.KitchenScreen{},
		&models.DBChange{},
	)
	assert.NoError(t, err)
	return db
}

// journal appends the row a SQL trigger would write in production.
func journal(t *testing.T, db *gorm.DB, table, recordID, action string) {
	t.Helper()
	err := db.Create(&models.DBChange{
		TableName:  table,
		RecordID:   recordID,
		ActionType: action,
		ChangedAt:  time.Now(),
	}).Error
	assert.NoError(t, err)
}

func TestChangeMonitorAppliesInsert(t *testing.T) {
	db := setupMonitorDB(t)
	st := state.NewAppState()

	monitor := NewChangeMonitor(db, st, kds.NewHub())
	monitor.Interval = 20 * time.Millisecond
	monitor.Start()
	defer monitor.Stop()

	product := models.Product{ID: "p-realtime", Name: "Soup Dumplings", Price: 90, Category: "Dumplings", Stock: 10}
	assert.NoError(t, db.Create(&product).Error)
	journal(t, db, "products", product.ID, "INSERT")

	assert.Eventually(t, func() bool {
		_, ok := st.ProductByID("p-realtime")
		return ok
	}, 2*time.Second, 20*time.Millisecond)
}

func TestChangeMonitorAppliesUpdateAndDelete(t *testing.T) {
	db := setupMonitorDB(t)
	st := state.NewAppState()
	st.SetOrders([]models.Order{{ID: "ORD-500", Status: "Pending"}})

	monitor := NewChangeMonitor(db, st, kds.NewHub())
	monitor.Interval = 20 * time.Millisecond
	monitor.Start()
	defer monitor.Stop()

	order := models.Order{ID: "ORD-500", Status: "Preparing", PaymentMethod: models.PaymentCard, Type: models.OrderTypeTakeaway, Date: "2024-01-01 10:00"}
	assert.NoError(t, db.Create(&order).Error)
	journal(t, db, "orders", order.ID, "UPDATE")

	assert.Eventually(t, func() bool {
		o, ok := st.OrderByID("ORD-500")
		return ok && o.Status == "Preparing"
	}, 2*time.Second, 20*time.Millisecond)

	journal(t, db, "orders", "ORD-500", "DELETE")
	assert.Eventually(t, func() bool {
		_, ok := st.OrderByID("ORD-500")
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}

func TestChangeMonitorMarksProcessed(t *testing.T) {
	db := setupMonitorDB(t)
	st := state.NewAppState()

	monitor := NewChangeMonitor(db, st, kds.NewHub())
	monitor.Interval = 20 * time.Millisecond
	monitor.Start()
	defer monitor.Stop()

	status := models.OrderStatus{Label: "On Hold", Color: "bg-purple-100"}
	assert.NoError(t, db.Create(&status).Error)
	journal(t, db, "order_statuses", strconv.FormatUint(uint64(status.ID), 10), "INSERT")

	assert.Eventually(t, func() bool {
		var pending int64
		db.Model(&models.DBChange{}).Where("processed = ?", false).Count(&pending)
		return pending == 0
	}, 2*time.Second, 20*time.Millisecond)

	found := false
	for _, s := range st.OrderStatuses() {
		if s.Label == "On Hold" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestChangeMonitorIgnoresVanishedRows(t *testing.T) {
	db := setupMonitorDB(t)
	st := state.NewAppState()

	monitor := NewChangeMonitor(db, st, kds.NewHub())
	monitor.Interval = 20 * time.Millisecond
	monitor.Start()
	defer monitor.Stop()

	// Journal entry without a backing row, as when a row is inserted and
	// deleted between polls.
	journal(t, db, "products", "gone", "INSERT")

	assert.Eventually(t, func() bool {
		var pending int64
		db.Model(&models.DBChange{}).Where("processed = ?", false).Count(&pending)
		return pending == 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Empty(t, st.Products())
}
