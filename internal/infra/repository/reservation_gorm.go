package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) List(ctx context.Context) ([]model.Reservation, error) {
	var items []model.Reservation
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Reservation{}, err
	}
	return items, nil
}

func (r *ReservationGormRepository) Create(ctx context.Context, rv model.Reservation) (model.Reservation, error) {
	if err := r.db.WithContext(ctx).Create(&rv).Error; err != nil {
		return model.Reservation{}, err
	}
	return rv, nil
}

func (r *ReservationGormRepository) UpdateStatus(ctx context.Context, id int64, status model.ReservationStatus) (model.Reservation, error) {
	res := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return model.Reservation{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Reservation{}, repo.ErrNotFound
	}

	var rv model.Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reservation{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Reservation{}, err
	}
	return rv, nil
}
