package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"readerd/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&ReaderModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateReader inserts a record and returns it with the generated id.
func (s *GormStore) CreateReader(name, email string) (domain.Reader, error) {
	model := ReaderModel{Name: name, Email: email}
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Reader{}, fmt.Errorf("insert reader: %w", err)
	}
	return readerFromModel(model), nil
}

// ListReaders returns all readers.
func (s *GormStore) ListReaders() ([]domain.Reader, error) {
	var models []ReaderModel
	if err := s.db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Reader, 0, len(models))
	for _, m := range models {
		res = append(res, readerFromModel(m))
	}
	return res, nil
}

// GetReader retrieves a reader by id.
func (s *GormStore) GetReader(id int64) (domain.Reader, bool, error) {
	var model ReaderModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Reader{}, false, nil
		}
		return domain.Reader{}, false, err
	}
	return readerFromModel(model), true, nil
}

// UpdateReader applies only the supplied fields and reports the number of
// rows affected. The row is never read first; the count alone decides
// whether the reader exists.
func (s *GormStore) UpdateReader(id int64, fields domain.ReaderUpdate) (int64, error) {
	assignments := map[string]any{}
	if fields.Name != nil {
		assignments["name"] = *fields.Name
	}
	if fields.Email != nil {
		assignments["email"] = *fields.Email
	}
	if len(assignments) == 0 {
		// Nothing to set; existence alone decides the count.
		var count int64
		if err := s.db.Model(&ReaderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("update reader %d: %w", id, err)
		}
		return count, nil
	}
	tx := s.db.Model(&ReaderModel{}).Where("id = ?", id).Updates(assignments)
	if tx.Error != nil {
		return 0, fmt.Errorf("update reader %d: %w", id, tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteReader removes a reader and reports the number of rows affected.
func (s *GormStore) DeleteReader(id int64) (int64, error) {
	tx := s.db.Delete(&ReaderModel{}, "id = ?", id)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete reader %d: %w", id, tx.Error)
	}
	return tx.RowsAffected, nil
}
