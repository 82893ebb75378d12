package business

import "context"

type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (Business, error)

	// GetTimezone returns the IANA timezone configured for a business.
	// All clock-in/out arithmetic is done in this zone.
	GetTimezone(ctx context.Context, id string) (string, error)

	Update(ctx context.Context, b Business) (Business, error)
}
