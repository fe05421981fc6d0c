package models

import "time"

type Post struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
	PetID         *uint     `json:"pet_id"`
	Content       string    `json:"content"`
	Images        PhotoList `gorm:"type:text" json:"images"`
	Location      string    `json:"location"`
	LikesCount    int       `gorm:"default:0" json:"likes_count"`
	CommentsCount int       `gorm:"default:0" json:"comments_count"`
	Views         int       `gorm:"default:0" json:"views"`
	IsPublic      bool      `gorm:"default:true" json:"is_public"`
	Tags          []Tag     `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Content   string    `gorm:"not null" json:"content"`
	ParentID  *uint     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Like is unique per (user, post); toggling removes the row again.
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_like_user_post;not null" json:"user_id"`
	PostID    uint      `gorm:"uniqueIndex:idx_like_user_post;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Tag struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	UseCount int    `gorm:"default:0" json:"use_count"`
}
