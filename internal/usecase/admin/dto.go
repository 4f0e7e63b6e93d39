package admin

import (
	"time"

	"github.com/google/uuid"
)

// Overview is the operator dashboard rollup. Sections that fail to load come
// back zeroed rather than failing the whole view.
type Overview struct {
	Users        UserCounts        `json:"users"`
	Listings     int               `json:"listings"`
	Reservations ReservationCounts `json:"reservations"`
	Deliveries   map[string]int    `json:"deliveries"`
	Refunds      RefundTotals      `json:"refunds"`
}

type UserCounts struct {
	Total    int `json:"total"`
	Couriers int `json:"couriers"`
}

type ReservationCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Cancelled int `json:"cancelled"`
}

type RefundTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// DeliveryBoard is the assignment console view: what needs a courier, the
// whole pipeline, and who can be assigned.
type DeliveryBoard struct {
	Unassigned []*BoardEntry   `json:"unassigned"`
	All        []*BoardEntry   `json:"all"`
	Couriers   []*CourierEntry `json:"couriers"`
}

type BoardEntry struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CourierEntry struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
