package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is not active")
	ErrEmailExists        = errors.New("email already registered in this business")
	ErrEmployeeReferenced = errors.New("employee has attendance or payroll history and cannot be removed")
)
