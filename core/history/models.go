package history

import "time"

// ScanRecord is one reconciliation batch in the scan log.
type ScanRecord struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	BatchID    string    `gorm:"column:batch_id;type:varchar(36);uniqueIndex" json:"batch_id"`
	Observed   time.Time `gorm:"column:observed_at;index" json:"observed"`
	Applied    int       `gorm:"column:applied;default:0" json:"applied"`
	Overridden int       `gorm:"column:overridden;default:0" json:"overridden"`
	Discarded  int       `gorm:"column:discarded;default:0" json:"discarded"`
	Unresolved int       `gorm:"column:unresolved;default:0" json:"unresolved"`
	Changes    string    `gorm:"column:changes;type:text" json:"changes"`
	Audit      string    `gorm:"column:audit;type:text" json:"audit"`
	ImageKey   string    `gorm:"column:image_key;type:varchar(255)" json:"image_key"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ScanRecord) TableName() string {
	return "scan_records"
}
