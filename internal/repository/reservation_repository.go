package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReservationRepository interface {
	List(ctx context.Context) ([]model.Reservation, error)
	Create(ctx context.Context, r model.Reservation) (model.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status model.ReservationStatus) (model.Reservation, error)
}
