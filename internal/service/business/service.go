package business

import (
	"context"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
)

type BusinessServiceImpl struct {
	business.BusinessRepository
}

func NewBusinessService(businessRepo business.BusinessRepository) business.BusinessService {
	return &BusinessServiceImpl{BusinessRepository: businessRepo}
}

// GetMyBusiness implements business.BusinessService.
func (b *BusinessServiceImpl) GetMyBusiness(ctx context.Context) (business.BusinessResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	biz, err := b.BusinessRepository.GetByID(ctx, ident.BusinessID)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	return business.ToResponse(biz), nil
}

// UpdateMyBusiness implements business.BusinessService.
func (b *BusinessServiceImpl) UpdateMyBusiness(ctx context.Context, req business.UpdateBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	biz, err := b.BusinessRepository.GetByID(ctx, ident.BusinessID)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	if req.Name != nil {
		biz.Name = *req.Name
	}
	if req.Timezone != nil {
		biz.Timezone = *req.Timezone
	}
	if req.ParsedCharityRate != nil {
		biz.CharityRate = *req.ParsedCharityRate
	}

	updated, err := b.BusinessRepository.Update(ctx, biz)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	return business.ToResponse(updated), nil
}
