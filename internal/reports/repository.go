package reports

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(rep *Report) error {
	return r.DB.Create(rep).Error
}

func (r *Repository) GetByID(id string) (*Report, error) {
	var rep Report
	if err := r.DB.First(&rep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *Repository) ListAll() ([]Report, error) {
	var reps []Report
	err := r.DB.Order("created_at DESC").Find(&reps).Error
	return reps, err
}

func (r *Repository) Delete(id string) error {
	res := r.DB.Delete(&Report{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
