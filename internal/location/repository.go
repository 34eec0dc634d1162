package location

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListActive() ([]Location, error) {
	var locations []Location
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *Repository) GetByID(id uint) (*Location, error) {
	var l Location
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Create(l *Location) error {
	return r.DB.Create(l).Error
}

func (r *Repository) Update(l *Location) error {
	return r.DB.Save(l).Error
}

func (r *Repository) SoftDelete(id uint) error {
	return r.DB.Model(&Location{}).Where("id = ?", id).Update("is_active", false).Error
}
