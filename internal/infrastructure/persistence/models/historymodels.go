package models

// StatusChangeModel stores ticket status history rows. The composite unique
// index on (ticket_id, changed_at) is the natural key the upsert targets.
type StatusChangeModel struct {
	ID              uint   `gorm:"primaryKey"`
	TicketID        uint   `gorm:"not null;uniqueIndex:idx_status_change_key"`
	ChangedAt       int64  `gorm:"not null;uniqueIndex:idx_status_change_key"`
	FromStatus      string `gorm:"size:100"`
	ToStatus        string `gorm:"size:100;not null"`
	ChangedBy       string `gorm:"size:200"`
	Comment         string `gorm:"type:text"`
	IsInternal      bool   `gorm:"not null;default:false"`
	DurationSeconds int64
	SourceSystem    string `gorm:"size:50"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StatusChangeModel) TableName() string {
	return "ticket_status_changes"
}

// TicketCommentModel stores normalized comments. Natural key:
// (ticket_id, comment_at, author_name).
type TicketCommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;uniqueIndex:idx_ticket_comment_key"`
	CommentAt  int64  `gorm:"not null;uniqueIndex:idx_ticket_comment_key"`
	AuthorName string `gorm:"size:200;not null;uniqueIndex:idx_ticket_comment_key"`

	Text        string `gorm:"type:text;not null"`
	CommentType string `gorm:"size:20;not null"`

	MentionsRework  bool `gorm:"not null;default:false"`
	MentionsQuality bool `gorm:"not null;default:false"`
	MentionsParts   bool `gorm:"not null;default:false"`
	MentionsTime    bool `gorm:"not null;default:false"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}
