package attendance

import (
	"context"
	"fmt"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/attendance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
)

type RuleServiceImpl struct {
	attendance.RuleRepository
}

func NewRuleService(ruleRepo attendance.RuleRepository) attendance.RuleService {
	return &RuleServiceImpl{RuleRepository: ruleRepo}
}

// CreateRule implements attendance.RuleService. New rules start inactive
// and take effect only once activated.
func (r *RuleServiceImpl) CreateRule(ctx context.Context, req attendance.CreateRuleRequest) (attendance.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RuleResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	rule := attendance.Rule{
		BusinessID:               ident.BusinessID,
		Name:                     req.Name,
		LateGracePeriodMinutes:   req.LateGracePeriodMinutes,
		HalfDayThresholdMinutes:  req.HalfDayThresholdMinutes,
		OvertimeThresholdMinutes: req.OvertimeThresholdMinutes,
		OvertimeMultiplier:       req.ParsedOvertimeMultiplier,
		WeekendOvertime:          req.WeekendOvertime,
		HolidayOvertime:          req.HolidayOvertime,
		LatePenaltyType:          attendance.LatePenaltyType(req.LatePenaltyType),
	}

	created, err := r.RuleRepository.Create(ctx, rule)
	if err != nil {
		return attendance.RuleResponse{}, fmt.Errorf("failed to create attendance rule: %w", err)
	}

	return attendance.RuleToResponse(created), nil
}

// ListRules implements attendance.RuleService.
func (r *RuleServiceImpl) ListRules(ctx context.Context) ([]attendance.RuleResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := r.RuleRepository.List(ctx, ident.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance rules: %w", err)
	}

	responses := make([]attendance.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, attendance.RuleToResponse(rule))
	}

	return responses, nil
}

// ActivateRule implements attendance.RuleService.
func (r *RuleServiceImpl) ActivateRule(ctx context.Context, id string) (attendance.RuleResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	rule, err := r.RuleRepository.Activate(ctx, id, ident.BusinessID)
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	return attendance.RuleToResponse(rule), nil
}
