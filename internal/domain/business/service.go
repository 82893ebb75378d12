package business

import "context"

// BusinessService defines business logic for the business profile
type BusinessService interface {
	GetMyBusiness(ctx context.Context) (BusinessResponse, error)
	UpdateMyBusiness(ctx context.Context, req UpdateBusinessRequest) (BusinessResponse, error)
}
