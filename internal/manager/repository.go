package manager

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListActive() ([]EventManager, error) {
	var managers []EventManager
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&managers).Error
	return managers, err
}

func (r *Repository) GetByID(id uint) (*EventManager, error) {
	var m EventManager
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(m *EventManager) error {
	return r.DB.Create(m).Error
}

func (r *Repository) Update(m *EventManager) error {
	return r.DB.Save(m).Error
}

func (r *Repository) SoftDelete(id uint) error {
	return r.DB.Model(&EventManager{}).Where("id = ?", id).Update("is_active", false).Error
}
