package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Presentation struct {
	Id            string         `gorm:"type:varchar(64);primaryKey"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Description   string         `gorm:"type:text"`
	Chapter       string         `gorm:"type:varchar(64);index"`
	ThemeId       string         `gorm:"type:varchar(64)"`
	DefaultLayout string         `gorm:"type:varchar(64)"`
	AspectRatio   string         `gorm:"type:varchar(16)"`
	CreatedBy     string         `gorm:"type:varchar(64);not null;index"`
	IsPublic      bool           `gorm:"default:false"`
	IsPublished   bool           `gorm:"default:false"`
	Slides        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Presentation) TableName() string {
	return "presentations"
}
