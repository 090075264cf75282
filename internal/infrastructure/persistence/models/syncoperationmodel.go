package models

// SyncOperationModel is the audit row for one sync run. ErrorLog holds a
// JSON array of per-ticket failures.
type SyncOperationModel struct {
	ID             uint   `gorm:"primaryKey"`
	SyncType       string `gorm:"size:30;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	MaxAgeDays     int    `gorm:"not null"`
	PriorityFilter string `gorm:"size:20"`

	TotalFetched int `gorm:"not null;default:0"`
	Filtered     int `gorm:"not null;default:0"`
	Processed    int `gorm:"not null;default:0"`
	Inserted     int `gorm:"not null;default:0"`
	Updated      int `gorm:"not null;default:0"`
	Skipped      int `gorm:"not null;default:0"`
	Errors       int `gorm:"not null;default:0"`

	ErrorLog      string `gorm:"type:json"`
	FailureReason string `gorm:"size:1000"`

	StartedAt   int64  `gorm:"not null;index"`
	CompletedAt *int64

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SyncOperationModel) TableName() string {
	return "sync_operations"
}
