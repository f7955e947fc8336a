package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

func (r *RewardRepository) Create(tx *gorm.DB, reward *entity.Reward) error {
	return tx.Create(reward).Error
}

type RewardRow struct {
	ID          uint       `json:"id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	SurveyID    *uint      `json:"surveyId,omitempty"`
	SurveyTitle string     `json:"surveyTitle,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (r *RewardRepository) ListForPartner(partnerID uint) ([]RewardRow, error) {
	var out []RewardRow
	err := r.DB.Table("rewards AS rw").
		Select("rw.id, rw.type, rw.amount, rw.description, rw.survey_id, s.title AS survey_title, rw.expires_at, rw.created_at").
		Joins("LEFT JOIN surveys s ON s.id = rw.survey_id").
		Where("rw.partner_id = ? AND rw.deleted_at IS NULL", partnerID).
		Order("rw.created_at DESC").
		Scan(&out).Error
	return out, err
}

// SumCashForPartner totals cash-type reward amounts; no rows sums to zero.
func (r *RewardRepository) SumCashForPartner(partnerID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&entity.Reward{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("partner_id = ? AND type = ?", partnerID, entity.RewardTypeCash).
		Scan(&total).Error
	return total, err
}

// CountCouponsForPartner counts coupon rows; expiry is not factored in.
func (r *RewardRepository) CountCouponsForPartner(partnerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Reward{}).
		Where("partner_id = ? AND type = ?", partnerID, entity.RewardTypeCoupon).
		Count(&count).Error
	return count, err
}
