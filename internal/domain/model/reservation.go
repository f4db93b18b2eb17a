package model

import "time"

type ReservationStatus string

const (
	ReservationStatusNew       ReservationStatus = "new"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// DateTimeはフロントのdatetime-local形式（"2026-01-15T18:00"）をそのまま保持する
type Reservation struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string            `gorm:"type:varchar(255);not null" json:"name"`
	Email     string            `gorm:"type:varchar(255);not null" json:"email"`
	DateTime  string            `gorm:"type:varchar(32);not null" json:"dateTime"`
	Notes     string            `gorm:"type:text" json:"notes"`
	Status    ReservationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
