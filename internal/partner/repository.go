package partner

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListActive returns non-deleted partners ordered by name.
func (r *Repository) ListActive() ([]Partner, error) {
	var partners []Partner
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&partners).Error
	return partners, err
}

func (r *Repository) GetByID(id uint) (*Partner, error) {
	var p Partner
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(p *Partner) error {
	return r.DB.Create(p).Error
}

func (r *Repository) Update(p *Partner) error {
	return r.DB.Save(p).Error
}

// SoftDelete clears is_active; the row is never removed.
func (r *Repository) SoftDelete(id uint) error {
	return r.DB.Model(&Partner{}).Where("id = ?", id).Update("is_active", false).Error
}
