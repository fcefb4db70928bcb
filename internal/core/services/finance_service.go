package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/google/uuid"
)

type financeService struct {
	BaseService
	payableRepo    portsrepo.PayableRepository
	receivableRepo portsrepo.ReceivableRepository
}

// NewFinanceService creates the payable/receivable service.
func NewFinanceService(payableRepo portsrepo.PayableRepository, receivableRepo portsrepo.ReceivableRepository) portssvc.FinanceSvcFacade {
	return &financeService{
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.AccountsPayable, error) {
	payable := domain.AccountsPayable{
		PayableID:   uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Category:    req.Category,
		IsPaid:      false,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.payableRepo.SavePayable(ctx, payable); err != nil {
		return nil, fmt.Errorf("failed to save payable: %w", err)
	}

	s.LogInfo(ctx, "Payable created", slog.String("payable_id", payable.PayableID))
	return &payable, nil
}

func (s *financeService) ListPayables(ctx context.Context) ([]domain.AccountsPayable, error) {
	payables, err := s.payableRepo.FindPayables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	return payables, nil
}

// PayPayable marks a payable paid and stamps paid_date with the current
// time. Paying an already paid entry succeeds and refreshes paid_date.
func (s *financeService) PayPayable(ctx context.Context, payableID string) error {
	if err := s.payableRepo.MarkPayablePaid(ctx, payableID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Payable marked as paid", slog.String("payable_id", payableID))
	return nil
}

func (s *financeService) DeletePayable(ctx context.Context, payableID string) error {
	if err := s.payableRepo.DeletePayable(ctx, payableID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Payable deleted", slog.String("payable_id", payableID))
	return nil
}

func (s *financeService) ListReceivables(ctx context.Context) ([]domain.AccountsReceivable, error) {
	receivables, err := s.receivableRepo.FindReceivables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	return receivables, nil
}

// ReceiveReceivable mirrors PayPayable: repeat calls succeed and refresh
// received_date.
func (s *financeService) ReceiveReceivable(ctx context.Context, receivableID string) error {
	if err := s.receivableRepo.MarkReceivableReceived(ctx, receivableID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Receivable marked as received", slog.String("receivable_id", receivableID))
	return nil
}

func (s *financeService) DeleteReceivable(ctx context.Context, receivableID string) error {
	if err := s.receivableRepo.DeleteReceivable(ctx, receivableID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Receivable deleted", slog.String("receivable_id", receivableID))
	return nil
}
