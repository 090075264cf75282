package models

// TicketLifecycleModel is the storage shape for one external ticket's
// lifecycle record. Timestamps are stored as unix milliseconds.
//
// Note: No foreign key constraints or associations.
// All relationships are managed by application business logic.
type TicketLifecycleModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"uniqueIndex;not null"`
	TicketNumber string `gorm:"size:50;not null;index"`
	Subject      string `gorm:"size:500"`
	Description  string `gorm:"type:text"`
	DeviceInfo   string `gorm:"size:200"`

	CustomerID    uint   `gorm:"index"`
	CustomerName  string `gorm:"size:200"`
	CustomerEmail string `gorm:"size:200"`

	CurrentStatus string `gorm:"size:100;not null;index"`
	Priority      string `gorm:"size:50"`
	TicketType    string `gorm:"size:100"`
	Technician    string `gorm:"size:200;index"`

	TicketCreatedAt int64  `gorm:"not null;index"`
	TicketUpdatedAt int64  `gorm:"not null"`
	CompletedAt     *int64 `gorm:"index"`

	TotalDurationSeconds   int64
	ActiveDurationSeconds  int64
	WaitingDurationSeconds int64

	RepairType     string `gorm:"size:100;index"`
	PartsUsed      string `gorm:"type:text"`
	WorkCompleted  string `gorm:"type:text"`
	TestingResults string `gorm:"type:text"`
	InternalNotes  string `gorm:"type:text"`

	IsRework     bool    `gorm:"not null;default:false;index"`
	ReworkReason string  `gorm:"size:500"`
	ReworkCount  int     `gorm:"not null;default:0"`
	QualityScore float64

	EstimatedCost float64
	ActualCost    float64

	SourceSystem string `gorm:"size:50;not null"`
	LastSyncedAt int64  `gorm:"not null;index"`
	IsFinalized  bool   `gorm:"not null;default:false;index"`
	SyncPriority int    `gorm:"not null;default:3;index"`
	NextSyncAt   int64  `gorm:"not null;index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketLifecycleModel) TableName() string {
	return "ticket_lifecycles"
}
