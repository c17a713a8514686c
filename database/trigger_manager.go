package database

import (
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/cosmodumplings/cosmo-pos/utils"
)

// ExecuteTriggers installs the change-journal triggers for the five watched
// tables. These are the realtime "subscriptions": once installed, every
// remote mutation lands in db_changes for the monitor to pick up. Local
// sqlite mode has no other terminals to hear from, so it is skipped.
func ExecuteTriggers(db *gorm.DB) error {
	if db.Dialector.Name() != "mysql" {
		utils.InfoLogger.Printf("skipping trigger install on %s", db.Dialector.Name())
		return nil
	}

	triggerSQL, err := os.ReadFile("database/migrations/triggers.sql")
	if err != nil {
		return err
	}

	for _, block := range strings.Split(string(triggerSQL), "DELIMITER") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		for _, stmt := range strings.Split(block, "//") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" || stmt == ";" {
				continue
			}

			if err := db.Exec(stmt).Error; err != nil {
				utils.ErrorLogger.Printf("error executing trigger statement: %v", err)
				continue
			}
		}
	}

	var triggers []struct {
		Trigger string
		Event   string
		Table   string
		Timing  string
	}

	db.Raw(`
        SELECT
            TRIGGER_NAME as trigger_name,
            EVENT_MANIPULATION as event_type,
            EVENT_OBJECT_TABLE as table_name,
            ACTION_TIMING as timing
        FROM information_schema.triggers
        WHERE TRIGGER_SCHEMA = DATABASE()
    `).Scan(&triggers)

	for _, t := range triggers {
		utils.InfoLogger.Printf("trigger verified: %s (%s %s on %s)",
			t.Trigger, t.Timing, t.Event, t.Table)
	}

	return nil
}
