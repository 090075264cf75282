package lifecycle

import (
	"fmt"
	"time"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// Comment is a normalized, classified comment sub-record keyed by
// (ticket_id, created_at, author_name). Append-only via idempotent upsert.
type Comment struct {
	id          uint
	ticketID    uint
	text        string
	authorName  string
	commentType vo.CommentType
	tags        vo.CommentTags
	createdAt   time.Time
}

func NewComment(
	ticketID uint,
	text string,
	authorName string,
	commentType vo.CommentType,
	tags vo.CommentTags,
	createdAt time.Time,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(authorName) == 0 {
		return nil, fmt.Errorf("author name is required")
	}
	if createdAt.IsZero() {
		return nil, fmt.Errorf("created at timestamp is required")
	}

	return &Comment{
		ticketID:    ticketID,
		text:        text,
		authorName:  authorName,
		commentType: commentType,
		tags:        tags,
		createdAt:   createdAt,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	text string,
	authorName string,
	commentType vo.CommentType,
	tags vo.CommentTags,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		text:        text,
		authorName:  authorName,
		commentType: commentType,
		tags:        tags,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint                    { return c.id }
func (c *Comment) TicketID() uint              { return c.ticketID }
func (c *Comment) Text() string                { return c.text }
func (c *Comment) AuthorName() string          { return c.authorName }
func (c *Comment) CommentType() vo.CommentType { return c.commentType }
func (c *Comment) Tags() vo.CommentTags        { return c.tags }
func (c *Comment) CreatedAt() time.Time        { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
