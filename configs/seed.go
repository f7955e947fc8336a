package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemoAccounts creates one business and one partner account for local
// development. Skipped when the env vars are absent.
func SeedDemoAccounts() error {
	db := DB()
	email := getEnv("SEED_BUSINESS_EMAIL", "")
	pass := getEnv("SEED_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding demo accounts: missing SEED_BUSINESS_EMAIL/SEED_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo business already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	business := entity.User{
		Email:    email,
		Username: "demo-business",
		Password: string(hash),
		FullName: "Demo Business",
		Role:     entity.RoleBusiness,
	}
	if err := db.Create(&business).Error; err != nil {
		return err
	}
	if err := db.Create(&entity.BusinessProfile{
		UserID:      business.ID,
		CompanyName: "Demo Business Co.",
	}).Error; err != nil {
		return err
	}

	partnerEmail := getEnv("SEED_PARTNER_EMAIL", "")
	if partnerEmail == "" {
		return nil
	}
	partner := entity.User{
		Email:    partnerEmail,
		Username: "demo-partner",
		Password: string(hash),
		FullName: "Demo Partner",
		Role:     entity.RolePartner,
	}
	if err := db.Create(&partner).Error; err != nil {
		return err
	}
	return db.Create(&entity.PartnerProfile{UserID: partner.ID}).Error
}
