package services

import (
	"backend/repository"
)

// Wallet is derived, never persisted: recomputed from the reward and payout
// rows on every read, so it cannot drift from its inputs.
type Wallet struct {
	CashBalance  int64 `json:"cashBalance"`  // minor currency units
	CouponsCount int64 `json:"couponsCount"`
}

type WalletService struct {
	rewardRepo *repository.RewardRepository
	payoutRepo *repository.PayoutRepository
}

func NewWalletService(rewardRepo *repository.RewardRepository, payoutRepo *repository.PayoutRepository) *WalletService {
	return &WalletService{rewardRepo: rewardRepo, payoutRepo: payoutRepo}
}

// WalletFor computes cash balance as total cash rewards minus completed
// payouts, and counts coupon rewards. Both sides coalesce to zero when no
// rows exist. The computation is a commutative sum, so row order never
// affects the result.
func (s *WalletService) WalletFor(partnerID uint) (*Wallet, error) {
	cash, err := s.rewardRepo.SumCashForPartner(partnerID)
	if err != nil {
		return nil, err
	}
	paidOut, err := s.payoutRepo.SumCompletedForPartner(partnerID)
	if err != nil {
		return nil, err
	}
	coupons, err := s.rewardRepo.CountCouponsForPartner(partnerID)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		CashBalance:  cash - paidOut,
		CouponsCount: coupons,
	}, nil
}

func (s *WalletService) RewardsFor(partnerID uint) ([]repository.RewardRow, error) {
	return s.rewardRepo.ListForPartner(partnerID)
}
