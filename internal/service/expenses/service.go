package expenses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	expenseRepo "github.com/m04kA/Turf-BookingService/internal/infra/storage/expense"
)

// Service сервис для учёта расходов площадки
type Service struct {
	expenseRepo ExpenseRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расходов
func NewService(expenseRepo ExpenseRepository, logger Logger) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create создает запись о расходе
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*ExpenseResponse, error) {
	if strings.TrimSpace(req.Category) == "" {
		s.logger.Warn("Create: empty expense category")
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		s.logger.Warn("Create: non-positive expense amount %.2f", req.Amount)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.SpentAt.IsZero() {
		return nil, fmt.Errorf("%w: spentAt is required", ErrInvalidInput)
	}

	expense := &domain.Expense{
		Category:  strings.TrimSpace(req.Category),
		Amount:    req.Amount,
		Note:      req.Note,
		SpentAt:   req.SpentAt,
		CreatedBy: req.CreatedBy,
	}

	created, err := s.expenseRepo.Create(ctx, expense)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created expense id=%d, category=%s, amount=%.2f",
		created.ID, created.Category, created.Amount)
	return FromDomainExpense(created), nil
}

// List получает список расходов за период с суммой
func (s *Service) List(ctx context.Context, req *ListExpensesRequest) (*ExpenseListResponse, error) {
	s.logger.Info("List: fetching expenses")

	expenseList, err := s.expenseRepo.GetWithFilter(ctx, domain.ExpensesFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  req.Category,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenseList)),
	}
	for i, e := range expenseList {
		resp.Expenses[i] = *FromDomainExpense(e)
		resp.Total += e.Amount
	}

	s.logger.Info("List: successfully fetched %d expenses, total=%.2f", len(expenseList), resp.Total)
	return resp, nil
}

// Delete удаляет запись о расходе
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting expense id=%d", id)

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, expenseRepo.ErrExpenseNotFound) {
			s.logger.Warn("Delete: expense id=%d not found", id)
			return ErrExpenseNotFound
		}
		s.logger.Error("Delete: repository error for expense id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted expense id=%d", id)
	return nil
}
