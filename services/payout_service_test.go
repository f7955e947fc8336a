package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPayoutRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "payee@example.com")

	_, err := f.payouts.Request(partner.ID, 0)
	assert.Equal(t, ErrorInvalid, errCode(t, err))

	_, err = f.payouts.Request(partner.ID, -100)
	assert.Equal(t, ErrorInvalid, errCode(t, err))
}

func TestRequestPayoutRejectsInsufficientBalance(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "payee@example.com")
	require.NoError(t, f.db.Create(&entity.Reward{
		PartnerID: partner.ID, Type: entity.RewardTypeCash, Amount: 500,
	}).Error)

	_, err := f.payouts.Request(partner.ID, 1000)
	require.Error(t, err)
	assert.Equal(t, ErrorInsufficientBalance, errCode(t, err))

	// balance unchanged, nothing appended
	w, err := f.wallet.WalletFor(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), w.CashBalance)

	var count int64
	require.NoError(t, f.db.Model(&entity.PayoutRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRequestPayoutAppendsPending(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "payee@example.com")
	require.NoError(t, f.db.Create(&entity.Reward{
		PartnerID: partner.ID, Type: entity.RewardTypeCash, Amount: 1000,
	}).Error)

	req, err := f.payouts.Request(partner.ID, 750)
	require.NoError(t, err)
	assert.Equal(t, entity.PayoutStatusPending, req.Status)
	assert.Equal(t, int64(750), req.Amount)
	assert.NotEmpty(t, req.Reference)

	// pending payouts do not reduce the balance; only completed ones do
	w, err := f.wallet.WalletFor(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), w.CashBalance)

	require.NoError(t, f.db.Model(&entity.PayoutRequest{}).
		Where("id = ?", req.ID).
		Update("status", entity.PayoutStatusCompleted).Error)

	w, err = f.wallet.WalletFor(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), w.CashBalance)
}

func TestRequestPayoutAllowsExactBalance(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "payee@example.com")
	require.NoError(t, f.db.Create(&entity.Reward{
		PartnerID: partner.ID, Type: entity.RewardTypeCash, Amount: 600,
	}).Error)

	req, err := f.payouts.Request(partner.ID, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(600), req.Amount)
}
