package models

import "time"

// Empresa é o registro persistido. O ID é atribuído pelo armazenamento na criação.
type Empresa struct {
	ID           int64     `bson:"_id" gorm:"primaryKey;autoIncrement" json:"id"`
	Empresa      string    `bson:"empresa" gorm:"column:empresa" json:"empresa"`
	Ciudad       string    `bson:"ciudad" gorm:"column:ciudad" json:"ciudad"`
	Image        string    `bson:"image" gorm:"column:image" json:"image"`
	AnioCreacion time.Time `bson:"aniocreacion" gorm:"column:aniocreacion;type:date" json:"aniocreacion"`
}

func (Empresa) TableName() string { return "empresas" }
