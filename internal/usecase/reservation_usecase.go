package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReservationUsecase struct {
	reservationRepo repo.ReservationRepository
}

func NewReservationUsecase(reservationRepo repo.ReservationRepository) *ReservationUsecase {
	return &ReservationUsecase{reservationRepo: reservationRepo}
}

func (u *ReservationUsecase) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	items, err := u.reservationRepo.List(ctx)
	if err != nil {
		return []model.Reservation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

type CreateReservationInput struct {
	Name     string
	Email    string
	DateTime string
	Notes    string
}

func (u *ReservationUsecase) CreateReservation(ctx context.Context, in CreateReservationInput) (model.Reservation, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	dateTime := strings.TrimSpace(in.DateTime)
	if name == "" || email == "" || dateTime == "" {
		return model.Reservation{}, NewHTTPError(http.StatusBadRequest, "name, email, and dateTime are required")
	}

	now := time.Now()
	rv, err := u.reservationRepo.Create(ctx, model.Reservation{
		Name:      name,
		Email:     email,
		DateTime:  dateTime,
		Notes:     in.Notes,
		Status:    model.ReservationStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Reservation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

func (u *ReservationUsecase) AdminUpdateStatus(ctx context.Context, reservationID int64, status string) (model.Reservation, error) {
	if reservationID <= 0 {
		return model.Reservation{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s := model.ReservationStatus(status)
	switch s {
	case model.ReservationStatusNew, model.ReservationStatusConfirmed, model.ReservationStatusCancelled:
	default:
		return model.Reservation{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	rv, err := u.reservationRepo.UpdateStatus(ctx, reservationID, s)
	if err == repo.ErrNotFound {
		return model.Reservation{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Reservation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}
