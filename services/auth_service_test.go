package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register(RegisterInput{
		Email:    "Taker@Example.com",
		Username: "taker",
		Password: "secret123",
		FullName: "Test Taker",
		Role:     entity.RolePartner,
		Age:      intPtr(29),
		Gender:   "female",
		Location: "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, "taker@example.com", user.Email, "email normalized")
	assert.Equal(t, entity.RolePartner, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password stored hashed")

	var profile entity.PartnerProfile
	require.NoError(t, f.db.Where("user_id = ?", user.ID).First(&profile).Error)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 29, *profile.Age)

	token, logged, err := f.auth.Login("taker@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterBusinessCreatesBusinessProfile(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register(RegisterInput{
		Email:       "biz@example.com",
		Username:    "biz",
		Password:    "secret123",
		Role:        entity.RoleBusiness,
		CompanyName: "Acme Research",
	})
	require.NoError(t, err)

	var profile entity.BusinessProfile
	require.NoError(t, f.db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Acme Research", profile.CompanyName)
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(RegisterInput{
		Email: "dup@example.com", Username: "one", Password: "secret123", Role: entity.RolePartner,
	})
	require.NoError(t, err)

	_, err = f.auth.Register(RegisterInput{
		Email: "dup@example.com", Username: "two", Password: "secret123", Role: entity.RolePartner,
	})
	require.Error(t, err)
	assert.Equal(t, ErrorConflict, errCode(t, err))
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(RegisterInput{
		Email: "one@example.com", Username: "same", Password: "secret123", Role: entity.RolePartner,
	})
	require.NoError(t, err)

	_, err = f.auth.Register(RegisterInput{
		Email: "two@example.com", Username: "same", Password: "secret123", Role: entity.RolePartner,
	})
	require.Error(t, err)
	assert.Equal(t, ErrorConflict, errCode(t, err))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(RegisterInput{
		Email: "x@example.com", Username: "x", Password: "secret123", Role: "admin",
	})
	require.Error(t, err)
	assert.Equal(t, ErrorInvalid, errCode(t, err))
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	f.createPartner(t, "taker@example.com")

	_, _, err := f.auth.Login("taker@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, ErrorUnauthorized, errCode(t, err))

	_, _, err = f.auth.Login("ghost@example.com", "whatever")
	require.Error(t, err)
	assert.Equal(t, ErrorUnauthorized, errCode(t, err))
}
