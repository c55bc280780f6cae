package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a post with its embedded likes and comments. Name and
// Avatar are a snapshot of the author at creation time. Likes and Comments
// are kept most-recent-first.
type Post struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Text   string    `json:"text" gorm:"type:text;not null"`
	Name   string    `json:"name" gorm:"size:255"`
	Avatar string    `json:"avatar" gorm:"size:512"`
	UserID uint      `json:"user" gorm:"not null;index"`
	Date   time.Time `json:"date"`

	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID and timestamp before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	return nil
}

// Like is a single user's like on a post. A user appears at most once in a
// post's like list; the service layer enforces this by scanning the list.
type Like struct {
	ID     uint      `json:"-" gorm:"primaryKey"`
	PostID uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	UserID uint      `json:"user" gorm:"not null"`
}

// Comment is a single comment on a post, owned by its author for deletion.
type Comment struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PostID uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	UserID uint      `json:"user" gorm:"not null"`
	Text   string    `json:"text" gorm:"type:text;not null"`
	Name   string    `json:"name" gorm:"size:255"`
	Avatar string    `json:"avatar" gorm:"size:512"`
	Date   time.Time `json:"date"`
}

// BeforeCreate sets UUID and timestamp before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	return nil
}
