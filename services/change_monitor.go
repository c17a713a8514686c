package services

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/cosmodumplings/cosmo-pos/kds"
	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// ChangeMonitor is the realtime subscription side of the remote store. SQL
// triggers append a row to db_changes for every insert/update/delete on the
// five watched tables; the monitor polls that journal, turns rows into typed
// events on a single queue, and the dispatch loop is the sole consumer that
// applies them to the cache and re-broadcasts over the hub. Event ordering
// across tables is not guaranteed and the reconciliation layer does not
// assume it.
type ChangeMonitor struct {
	DB       *gorm.DB
	State    *state.AppState
	Hub      *kds.Hub
	Interval time.Duration

	Events   chan state.Event
	stopChan chan struct{}
}

func NewChangeMonitor(db *gorm.DB, st *state.AppState, hub *kds.Hub) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		State:    st,
		Hub:      hub,
		Interval: 1 * time.Second,
		Events:   make(chan state.Event, 64),
		stopChan: make(chan struct{}),
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.stopChan:
				return
			}
		}
	}()

	go cm.dispatch()
}

// Stop releases the poll and dispatch loops. Required on shutdown so the
// subscriptions do not leak.
func (cm *ChangeMonitor) Stop() {
	close(cm.stopChan)
}

func (cm *ChangeMonitor) dispatch() {
	for {
		select {
		case event := <-cm.Events:
			cm.State.Apply(event)
			if cm.Hub != nil {
				cm.Hub.BroadcastEvent(event)
			}
		case <-cm.stopChan:
			return
		}
	}
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []models.DBChange

	tx := cm.DB.Begin()
	if tx.Error != nil {
		utils.ErrorLogger.Printf("error starting change poll: %v", tx.Error)
		return
	}

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		utils.ErrorLogger.Printf("error fetching changes: %v", err)
		return
	}

	for _, change := range changes {
		if event := cm.buildEvent(change); event != nil {
			select {
			case cm.Events <- *event:
			case <-cm.stopChan:
				tx.Rollback()
				return
			}
		}

		if err := tx.Model(&models.DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			utils.ErrorLogger.Printf("error marking change %d processed: %v", change.ID, err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.ErrorLogger.Printf("error committing change poll: %v", err)
		tx.Rollback()
		return
	}

	if len(changes) > 0 {
		utils.InfoLogger.Printf("processed %d remote changes", len(changes))
	}
}

// buildEvent loads the changed row and wraps it as a reconciliation event.
// Deletes carry only the id. A row that vanished between the journal write
// and the poll yields nil and the journal entry is still marked processed.
func (cm *ChangeMonitor) buildEvent(change models.DBChange) *state.Event {
	event := state.Event{
		Action: state.Action(change.ActionType),
		ID:     change.RecordID,
	}

	switch change.TableName {
	case "products":
		event.Collection = state.CollectionProducts
		if event.Action != state.ActionDelete {
			var product models.Product
			if err := cm.DB.First(&product, "id = ?", change.RecordID).Error; err != nil {
				utils.ErrorLogger.Printf("error fetching changed product %s: %v", change.RecordID, err)
				return nil
			}
			event.Product = &product
		}
	case "orders":
		event.Collection = state.CollectionOrders
		if event.Action != state.ActionDelete {
			var order models.Order
			if err := cm.DB.First(&order, "id = ?", change.RecordID).Error; err != nil {
				utils.ErrorLogger.Printf("error fetching changed order %s: %v", change.RecordID, err)
				return nil
			}
			event.Order = &order
		}
	case "order_statuses":
		event.Collection = state.CollectionOrderStatuses
		if event.Action != state.ActionDelete {
			id, err := strconv.ParseUint(change.RecordID, 10, 64)
			if err != nil {
				return nil
			}
			var status models.OrderStatus
			if err := cm.DB.First(&status, uint(id)).Error; err != nil {
				utils.ErrorLogger.Printf("error fetching changed status %s: %v", change.RecordID, err)
				return nil
			}
			event.Status = &status
		}
	case "categories":
		event.Collection = state.CollectionCategories
		if event.Action != state.ActionDelete {
			id, err := strconv.ParseUint(change.RecordID, 10, 64)
			if err != nil {
				return nil
			}
			var category models.CategoryItem
			if err := cm.DB.First(&category, uint(id)).Error; err != nil {
				utils.ErrorLogger.Printf("error fetching changed category %s: %v", change.RecordID, err)
				return nil
			}
			event.Category = &category
		}
	case "kitchen_screens":
		event.Collection = state.CollectionKitchenScreens
		if event.Action != state.ActionDelete {
			id, err := strconv.ParseUint(change.RecordID, 10, 64)
			if err != nil {
				return nil
			}
			var screen models.KitchenScreen
			if err := cm.DB.First(&screen, uint(id)).Error; err != nil {
				utils.ErrorLogger.Printf("error fetching changed screen %s: %v", change.RecordID, err)
				return nil
			}
			event.Screen = &screen
		}
	default:
		return nil
	}

	return &event
}
