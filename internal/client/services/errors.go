package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Op names a user-triggered operation for error reporting.
type Op int

const (
	OpLogin Op = iota
	OpRegister
	OpListPlans
	OpLoadPlan
	OpCreatePlan
	OpUpdatePlan
	OpDeletePlan
	OpListUsers
	OpDeleteUser
)

var failureText = map[Op]string{
	OpLogin:      "An error occurred during login. Please try again.",
	OpRegister:   "There was a problem creating your account.",
	OpListPlans:  "Failed to load travel plans. Please try again later.",
	OpLoadPlan:   "Failed to load travel plan data. Please try again.",
	OpCreatePlan: "Failed to create travel plan. Please try again.",
	OpUpdatePlan: "Failed to update travel plan. Please try again.",
	OpDeletePlan: "Failed to delete travel plan. Please try again.",
	OpListUsers:  "Failed to load users. Please try again later.",
	OpDeleteUser: "Failed to delete user. Please try again.",
}

// Message turns an operation failure into the short text shown to the user.
// Form errors are listed field by field; everything else gets the
// operation's generic text.
func Message(op Op, err error) string {
	if err == nil {
		return ""
	}
	var fe models.FieldErrors
	if errors.As(err, &fe) {
		return fe.Error()
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return "Invalid username or password"
	}
	if text, ok := failureText[op]; ok {
		return text
	}
	return fmt.Sprintf("Operation failed: %v", err)
}
