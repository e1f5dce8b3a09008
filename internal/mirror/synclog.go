package mirror

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SyncRecord is one mirrored table in one sync run
type SyncRecord struct {
	ID       uint      `gorm:"primaryKey"`
	RunID    string    `gorm:"column:run_id;size:36;index"`
	Table    string    `gorm:"column:table_name;size:64"`
	Rows     int       `gorm:"column:row_count"`
	SyncedAt time.Time `gorm:"column:synced_at"`
}

// SyncLog tracks mirror runs
type SyncLog struct {
	db    *gorm.DB
	table string
}

// NewSyncLog creates a sync log stored in tableName
func NewSyncLog(db *gorm.DB, tableName string) *SyncLog {
	return &SyncLog{
		db:    db,
		table: tableName,
	}
}

// Initialize creates the sync log table
func (l *SyncLog) Initialize() error {
	if err := l.db.Table(l.table).AutoMigrate(&SyncRecord{}); err != nil {
		return fmt.Errorf("failed to create sync log table: %w", err)
	}
	return nil
}

// Record stores one table's row count for a run, using tx when given
func (l *SyncLog) Record(tx *gorm.DB, runID, table string, rows int, at time.Time) error {
	if tx == nil {
		tx = l.db
	}
	rec := SyncRecord{RunID: runID, Table: table, Rows: rows, SyncedAt: at}
	if err := tx.Table(l.table).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to record sync of %s: %w", table, err)
	}
	return nil
}

// Latest returns the records of the most recent run, or nil when none
func (l *SyncLog) Latest() ([]SyncRecord, error) {
	var last SyncRecord
	err := l.db.Table(l.table).Order("id DESC").First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest sync: %w", err)
	}

	var records []SyncRecord
	if err := l.db.Table(l.table).Where("run_id = ?", last.RunID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query sync run: %w", err)
	}
	return records, nil
}

// Count returns the number of stored sync records
func (l *SyncLog) Count() (int64, error) {
	var count int64
	if err := l.db.Table(l.table).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sync records: %w", err)
	}
	return count, nil
}
