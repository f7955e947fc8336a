package services

import (
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletForEmptyLedgerIsZero(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "empty@example.com")

	w, err := f.wallet.WalletFor(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.CashBalance)
	assert.Equal(t, int64(0), w.CouponsCount)
}

func TestWalletForSumsCashMinusCompletedPayouts(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "ledger@example.com")

	rows := []entity.Reward{
		{PartnerID: partner.ID, Type: entity.RewardTypeCash, Amount: 500},
		{PartnerID: partner.ID, Type: entity.RewardTypeCash, Amount: 1500},
		{PartnerID: partner.ID, Type: entity.RewardTypeCoupon, Amount: 0},
	}
	for i := range rows {
		require.NoError(t, f.db.Create(&rows[i]).Error)
	}

	payouts := []entity.PayoutRequest{
		{PartnerID: partner.ID, Amount: 300, Status: entity.PayoutStatusCompleted, Reference: "r1", RequestedAt: time.Now()},
		{PartnerID: partner.ID, Amount: 999, Status: entity.PayoutStatusPending, Reference: "r2", RequestedAt: time.Now()},
		{PartnerID: partner.ID, Amount: 999, Status: entity.PayoutStatusRejected, Reference: "r3", RequestedAt: time.Now()},
		{PartnerID: partner.ID, Amount: 999, Status: entity.PayoutStatusApproved, Reference: "r4", RequestedAt: time.Now()},
	}
	for i := range payouts {
		require.NoError(t, f.db.Create(&payouts[i]).Error)
	}

	w, err := f.wallet.WalletFor(partner.ID)
	require.NoError(t, err)
	// 500 + 1500 cash, only the completed 300 subtracted
	assert.Equal(t, int64(1700), w.CashBalance)
	assert.Equal(t, int64(1), w.CouponsCount)
}

// Balance must not depend on the order the ledger rows were appended in.
func TestWalletForIsOrderInvariant(t *testing.T) {
	amounts := []int64{100, 250, 75}
	completed := []int64{50, 125}

	compute := func(t *testing.T, rewardOrder []int64, payoutOrder []int64) int64 {
		f := newFixture(t)
		partner := f.createPartner(t, "order@example.com")
		for _, a := range rewardOrder {
			require.NoError(t, f.db.Create(&entity.Reward{
				PartnerID: partner.ID, Type: entity.RewardTypeCash, Amount: a,
			}).Error)
		}
		for i, a := range payoutOrder {
			require.NoError(t, f.db.Create(&entity.PayoutRequest{
				PartnerID: partner.ID, Amount: a,
				Status: entity.PayoutStatusCompleted,
				Reference: string(rune('a'+i)), RequestedAt: time.Now(),
			}).Error)
		}
		w, err := f.wallet.WalletFor(partner.ID)
		require.NoError(t, err)
		return w.CashBalance
	}

	var forward, reversed int64
	t.Run("forward", func(t *testing.T) {
		forward = compute(t, amounts, completed)
	})
	t.Run("reversed", func(t *testing.T) {
		reversed = compute(t, []int64{75, 250, 100}, []int64{125, 50})
	})
	assert.Equal(t, forward, reversed)
	assert.Equal(t, int64(250), forward)
}

func TestWalletCountsExpiredCoupons(t *testing.T) {
	f := newFixture(t)
	partner := f.createPartner(t, "coupons@example.com")

	expired := time.Now().Add(-48 * time.Hour)
	require.NoError(t, f.db.Create(&entity.Reward{
		PartnerID: partner.ID, Type: entity.RewardTypeCoupon, Amount: 0, ExpiresAt: &expired,
	}).Error)
	require.NoError(t, f.db.Create(&entity.Reward{
		PartnerID: partner.ID, Type: entity.RewardTypeCoupon, Amount: 0,
	}).Error)

	w, err := f.wallet.WalletFor(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), w.CouponsCount, "expired coupons still count")
}

func TestWalletIgnoresOtherPartners(t *testing.T) {
	f := newFixture(t)
	a := f.createPartner(t, "a@example.com")
	b := f.createPartner(t, "b@example.com")

	require.NoError(t, f.db.Create(&entity.Reward{
		PartnerID: a.ID, Type: entity.RewardTypeCash, Amount: 800,
	}).Error)

	w, err := f.wallet.WalletFor(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.CashBalance)
}
