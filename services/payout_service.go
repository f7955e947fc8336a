package services

import (
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
)

// PayoutService appends withdrawal requests. Status transitions after
// pending are a back-office concern with no API here; only completed
// payouts reduce the ledger.
type PayoutService struct {
	payoutRepo *repository.PayoutRepository
	wallet     *WalletService

	now func() time.Time
}

func NewPayoutService(payoutRepo *repository.PayoutRepository, wallet *WalletService) *PayoutService {
	return &PayoutService{payoutRepo: payoutRepo, wallet: wallet, now: time.Now}
}

// Request validates the amount against the current balance and appends a
// pending payout with an external reference code.
func (s *PayoutService) Request(partnerID uint, amount int64) (*entity.PayoutRequest, error) {
	if amount <= 0 {
		return nil, NewInvalidError("amount must be positive")
	}

	w, err := s.wallet.WalletFor(partnerID)
	if err != nil {
		return nil, err
	}
	if amount > w.CashBalance {
		return nil, NewInsufficientBalanceError("insufficient balance")
	}

	req := &entity.PayoutRequest{
		PartnerID:   partnerID,
		Amount:      amount,
		Status:      entity.PayoutStatusPending,
		Reference:   uuid.NewString(),
		RequestedAt: s.now(),
	}
	if err := s.payoutRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *PayoutService) ListForPartner(partnerID uint) ([]entity.PayoutRequest, error) {
	return s.payoutRepo.ListForPartner(partnerID)
}
