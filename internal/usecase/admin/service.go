package admin

import (
	"context"

	"go.uber.org/zap"

	domainDelivery "rentease/internal/domain/delivery"
	domainListing "rentease/internal/domain/listing"
	domainReservation "rentease/internal/domain/reservation"
	domainUser "rentease/internal/domain/user"
	"rentease/internal/logger"
)

// Service implements the operator aggregation views. Both views are fail-open:
// a section that cannot be loaded is logged and returned empty so the rest of
// the dashboard still renders.
type Service struct {
	deliveryRepo    domainDelivery.Repository
	reservationRepo domainReservation.Repository
	userRepo        domainUser.Repository
	listingRepo     domainListing.Repository
}

// NewService creates a new admin service
func NewService(
	deliveryRepo domainDelivery.Repository,
	reservationRepo domainReservation.Repository,
	userRepo domainUser.Repository,
	listingRepo domainListing.Repository,
) *Service {
	return &Service{
		deliveryRepo:    deliveryRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		listingRepo:     listingRepo,
	}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	overview := &Overview{
		Deliveries: map[string]int{},
	}

	if users, err := s.userRepo.GetAll(ctx); err == nil {
		overview.Users.Total = len(users)
		for _, u := range users {
			if u.Role == domainUser.RoleDelivery {
				overview.Users.Couriers++
			}
		}
	} else {
		logger.Warn("Overview: user rollup failed", zap.Error(err))
	}

	if listings, err := s.listingRepo.ListAll(ctx); err == nil {
		overview.Listings = len(listings)
	} else {
		logger.Warn("Overview: listing rollup failed", zap.Error(err))
	}

	if reservations, err := s.reservationRepo.ListAll(ctx); err == nil {
		overview.Reservations.Total = len(reservations)
		for _, r := range reservations {
			switch r.Status {
			case domainReservation.StatusActive:
				overview.Reservations.Active++
			case domainReservation.StatusCancelled:
				overview.Reservations.Cancelled++
			}
		}
	} else {
		logger.Warn("Overview: reservation rollup failed", zap.Error(err))
	}

	if summaries, err := s.deliveryRepo.ListSummaries(ctx); err == nil {
		for _, d := range summaries {
			overview.Deliveries[string(d.Status)]++
		}
	} else {
		logger.Warn("Overview: delivery rollup failed", zap.Error(err))
	}

	if refunds, err := s.reservationRepo.ListRefunds(ctx); err == nil {
		overview.Refunds.Count = len(refunds)
		for _, r := range refunds {
			overview.Refunds.Amount += r.Amount
		}
	} else {
		logger.Warn("Overview: refund rollup failed", zap.Error(err))
	}

	return overview, nil
}

func (s *Service) DeliveryBoard(ctx context.Context) (*DeliveryBoard, error) {
	board := &DeliveryBoard{
		Unassigned: []*BoardEntry{},
		All:        []*BoardEntry{},
		Couriers:   []*CourierEntry{},
	}

	if unassigned, err := s.deliveryRepo.ListUnassigned(ctx); err == nil {
		board.Unassigned = toBoardEntries(unassigned)
	} else {
		logger.Warn("Delivery board: unassigned section failed", zap.Error(err))
	}

	if all, err := s.deliveryRepo.ListSummaries(ctx); err == nil {
		board.All = toBoardEntries(all)
	} else {
		logger.Warn("Delivery board: pipeline section failed", zap.Error(err))
	}

	if couriers, err := s.userRepo.ListByRole(ctx, domainUser.RoleDelivery); err == nil {
		for _, u := range couriers {
			board.Couriers = append(board.Couriers, &CourierEntry{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
			})
		}
	} else {
		logger.Warn("Delivery board: courier section failed", zap.Error(err))
	}

	return board, nil
}

func toBoardEntries(summaries []*domainDelivery.BoardSummary) []*BoardEntry {
	entries := make([]*BoardEntry, 0, len(summaries))
	for _, d := range summaries {
		entries = append(entries, &BoardEntry{
			ID:        d.ID,
			Status:    string(d.Status),
			CreatedAt: d.CreatedAt,
		})
	}
	return entries
}
