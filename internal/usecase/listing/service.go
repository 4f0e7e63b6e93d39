package listing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainListing "rentease/internal/domain/listing"
	appErrors "rentease/pkg/errors"
)

type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service exposes the read-only catalogue views the fulfillment core needs.
type Service struct {
	listingRepo domainListing.Repository
}

func NewService(listingRepo domainListing.Repository) *Service {
	return &Service{listingRepo: listingRepo}
}

func (s *Service) Get(ctx context.Context, listingID uuid.UUID) (*ListingResponse, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, domainListing.ErrListingNotFound) {
			return nil, appErrors.NotFound("Listing not found", err)
		}
		return nil, err
	}
	return toListingResponse(l), nil
}

func (s *Service) List(ctx context.Context) ([]*ListingResponse, error) {
	listings, err := s.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toListingResponses(listings), nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingResponse, error) {
	listings, err := s.listingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toListingResponses(listings), nil
}

func toListingResponse(l *domainListing.Listing) *ListingResponse {
	return &ListingResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Category:    l.Category,
		Location:    l.Location,
		ItemCount:   l.ItemCount,
		CreatedAt:   l.CreatedAt,
	}
}

func toListingResponses(listings []*domainListing.Listing) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}
