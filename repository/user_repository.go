package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users and profile tables only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

// Registration writes user + role profile in one transaction, so creates are
// tx-aware.
func (r *UserRepository) Create(tx *gorm.DB, user *entity.User) error {
	return tx.Create(user).Error
}

func (r *UserRepository) CreatePartnerProfile(tx *gorm.DB, p *entity.PartnerProfile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) CreateBusinessProfile(tx *gorm.DB, p *entity.BusinessProfile) error {
	return tx.Create(p).Error
}

// IsPartner reports whether the id references an existing partner-role user.
func (r *UserRepository) IsPartner(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("id = ? AND role = ?", id, entity.RolePartner).
		Count(&count).Error
	return count > 0, err
}
