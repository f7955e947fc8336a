package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PayoutRepository struct {
	DB *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{DB: db}
}

func (r *PayoutRepository) Create(p *entity.PayoutRequest) error {
	return r.DB.Create(p).Error
}

// SumCompletedForPartner totals completed payout amounts; pending, approved
// and rejected requests do not reduce the balance.
func (r *PayoutRepository) SumCompletedForPartner(partnerID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&entity.PayoutRequest{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("partner_id = ? AND status = ?", partnerID, entity.PayoutStatusCompleted).
		Scan(&total).Error
	return total, err
}

func (r *PayoutRepository) ListForPartner(partnerID uint) ([]entity.PayoutRequest, error) {
	var out []entity.PayoutRequest
	err := r.DB.Where("partner_id = ?", partnerID).
		Order("requested_at DESC").
		Find(&out).Error
	return out, err
}
