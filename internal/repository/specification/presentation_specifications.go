package specification

import "gorm.io/gorm"

type ByChapter struct {
	Chapter string
}

func (s ByChapter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chapter = ?", s.Chapter)
}

type OwnedBy struct {
	UserID string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_by = ?", s.UserID)
}

// VisibleTo matches presentations the user owns or that are public
type VisibleTo struct {
	UserID string
}

func (s VisibleTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(created_by = ? OR is_public = ?)", s.UserID, true)
}

type Published struct{}

func (s Published) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}
