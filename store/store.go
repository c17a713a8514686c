// Package store wraps the hosted database behind per-collection CRUD calls
// with the degradation contract the terminals rely on: reads return nil when
// the backend is unreachable (nil means "unknown", never "empty"), writes
// return nil/false, and no call ever panics across the package boundary.
package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/cosmodumplings/cosmo-pos/utils"
)

type RemoteStore struct {
	DB *gorm.DB
}

func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{DB: db}
}

// offline holds when the store was constructed without a connection at all,
// e.g. the database handshake failed at boot. Every call degrades the same
// way it would for a query error.
func (s *RemoteStore) offline() bool {
	return s == nil || s.DB == nil
}

// isMissingTable classifies "relation does not exist" errors across the
// backends we run against (MySQL 1146, Postgres 42P01, sqlite in local mode).
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "doesn't exist") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "1146") ||
		strings.Contains(msg, "42p01")
}

// isUnknownColumn classifies write failures caused by a column the hosted
// schema has not been migrated to yet.
func isUnknownColumn(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unknown column") ||
		strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "no column named") ||
		strings.Contains(msg, "1054") ||
		strings.Contains(msg, "42703")
}

func logDBError(context string, err error) {
	if isMissingTable(err) {
		utils.ErrorLogger.Printf("DB error (%s): table not found, run the provisioning script", context)
		return
	}
	utils.ErrorLogger.Printf("DB error (%s): %v", context, err)
}
