package store

import "readerd/pkg/domain"

// GORM model used for persistence.
type ReaderModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
}

// TableName pins the table name regardless of gorm's pluralization rules.
func (ReaderModel) TableName() string { return "readers" }

func readerFromModel(m ReaderModel) domain.Reader {
	return domain.Reader{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}
