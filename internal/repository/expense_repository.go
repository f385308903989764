package repository

import (
	"context"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(tx *gorm.DB, expense *models.Expense) error {
	return tx.Omit(clause.Associations).Create(expense).Error
}

func (r *ExpenseRepository) ListByFarmer(ctx context.Context, farmerID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Joins("JOIN crop_cycles ON crop_cycles.id = expenses.cycle_id").
		Where("crop_cycles.farmer_id = ?", farmerID).
		Order("expenses.date DESC").
		Order("expenses.id DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) RecentByFarmer(ctx context.Context, farmerID uint, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Preload("Cycle").
		Joins("JOIN crop_cycles ON crop_cycles.id = expenses.cycle_id").
		Where("crop_cycles.farmer_id = ?", farmerID).
		Order("expenses.date DESC").
		Order("expenses.id DESC").
		Limit(limit).
		Find(&expenses).Error
	return expenses, err
}
