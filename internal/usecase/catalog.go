package usecase

import (
	"context"
	"errors"

	"parkease/internal/domain/parking"
	"parkease/internal/infra"
)

var ErrFacilityNotFound = errors.New("facility not found")

type CatalogRepository interface {
	Seed(ctx context.Context) error
	ListFacilities(ctx context.Context) ([]parking.Facility, error)
	FindFacility(ctx context.Context, facilityID string) (*parking.Facility, error)
	ListSlots(ctx context.Context, facilityID string) ([]parking.Slot, error)
}

type CatalogUseCase interface {
	Seed(ctx context.Context) error
	GetFacilities(ctx context.Context) ([]parking.Facility, error)
	GetSlots(ctx context.Context, facilityID string) ([]parking.Slot, error)
}

type catalogUseCaseImpl struct {
	catalogRepo CatalogRepository
}

func NewCatalogUseCase(catalogRepo CatalogRepository) CatalogUseCase {
	return &catalogUseCaseImpl{catalogRepo: catalogRepo}
}

func (c *catalogUseCaseImpl) Seed(ctx context.Context) error {
	return c.catalogRepo.Seed(ctx)
}

func (c *catalogUseCaseImpl) GetFacilities(ctx context.Context) ([]parking.Facility, error) {
	return c.catalogRepo.ListFacilities(ctx)
}

func (c *catalogUseCaseImpl) GetSlots(ctx context.Context, facilityID string) ([]parking.Slot, error) {
	slots, err := c.catalogRepo.ListSlots(ctx, facilityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return slots, nil
}
