package models

import "time"

// DBChange is the change journal filled by SQL triggers on the watched
// tables. The change monitor polls it and turns rows into realtime events.
// RecordID is text because products and orders use string keys while the
// configuration tables use integers.
type DBChange struct {
	ID         uint      `gorm:"primaryKey"`
	TableName  string    `gorm:"type:varchar(50);not null;index:idx_table_action"`
	RecordID   string    `gorm:"type:varchar(36);not null;index:idx_table_action"`
	ActionType string    `gorm:"type:varchar(10);not null"`
	ChangedAt  time.Time `gorm:"not null"`
	Processed  bool      `gorm:"default:false;index:idx_processed"`
}
