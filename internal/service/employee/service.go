package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/employee"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/identity"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		BusinessID:  ident.BusinessID,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
		HireDate:    req.ParsedHireDate,
		SalaryType:  employee.SalaryType(strings.ToLower(req.SalaryType)),
		BaseSalary:  req.ParsedBaseSalary,
		DailyWage:   req.ParsedDailyWage,
		HourlyRate:  req.ParsedHourlyRate,
		Status:      employee.StatusActive,
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	employees, total, err := e.EmployeeRepository.List(ctx, filter, ident.BusinessID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, total, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, id, ident.BusinessID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.SalaryType != nil {
		emp.SalaryType = employee.SalaryType(strings.ToLower(*req.SalaryType))
	}
	if req.ParsedBaseSalary != nil {
		emp.BaseSalary = *req.ParsedBaseSalary
	}
	if req.ParsedDailyWage != nil {
		emp.DailyWage = req.ParsedDailyWage
	}
	if req.ParsedHourlyRate != nil {
		emp.HourlyRate = req.ParsedHourlyRate
	}
	if req.Status != nil {
		emp.Status = employee.Status(strings.ToLower(*req.Status))
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	return e.EmployeeRepository.SoftDelete(ctx, id, ident.BusinessID)
}
