package notification

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(n *InAppNotification) error {
	return r.DB.Create(n).Error
}

func (r *Repository) ListByUser(userID uint, limit int) ([]InAppNotification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var items []InAppNotification
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *Repository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&InAppNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *Repository) MarkAsRead(id, userID uint) error {
	res := r.DB.Model(&InAppNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) MarkAllAsRead(userID uint) error {
	return r.DB.Model(&InAppNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// ListWriterIDs returns the ids of every user who can mutate events; they are
// the fan-out audience for activity notifications.
func (r *Repository) ListWriterIDs(roles []string) ([]uint, error) {
	var ids []uint
	err := r.DB.Table("profiles").
		Where("role IN ?", roles).
		Pluck("id", &ids).Error
	return ids, err
}
