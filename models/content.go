package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentType string

const (
	TypeNewspaper   ContentType = "newspaper"
	TypeJournal     ContentType = "journal"
	TypeArticle     ContentType = "article"
	TypeVideoScript ContentType = "video_script"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

type Content struct {
	ID            uint                        `json:"id" gorm:"primarykey"`
	Title         string                      `json:"title" gorm:"not null"`
	Content       string                      `json:"content" gorm:"type:text;not null"`
	Type          ContentType                 `json:"type" gorm:"not null"`
	Category      string                      `json:"category"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	Status        ContentStatus               `json:"status" gorm:"default:'draft'"`
	FeaturedImage string                      `json:"featured_image"`
	VideoURL      string                      `json:"video_url"`
	ReadTime      int                         `json:"read_time"`
	Views         int                         `json:"views" gorm:"default:0"`
	PublisherID   uint                        `json:"publisher_id" gorm:"not null"`
	Publisher     *User                       `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `json:"-" gorm:"index"`
}
