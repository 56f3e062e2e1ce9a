// Package apperrors maps raised errors onto the small closed taxonomy the
// portal UI understands.
package apperrors

import (
	"context"
	"errors"
	"net/http"

	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

// Type classifies an error for presentation.
type Type string

const (
	Validation    Type = "VALIDATION"
	Network       Type = "NETWORK"
	Authorization Type = "AUTHORIZATION"
	System        Type = "SYSTEM"
	Business      Type = "BUSINESS"
)

// Normalized is the UI-facing projection of any caught error.
type Normalized struct {
	Type        Type     `json:"type"`
	Message     string   `json:"message"`
	Code        string   `json:"code,omitempty"`
	Status      int      `json:"status"`
	Recoverable bool     `json:"recoverable"`
	Actions     []string `json:"actions"`
}

// Normalize maps any error to the taxonomy. Status mapping: 400/422 are
// VALIDATION, 401/403 AUTHORIZATION, 408/429 NETWORK, other 4xx BUSINESS and
// 5xx SYSTEM. Recoverable is true for 5xx, 408, 429 and context errors.
func Normalize(err error) Normalized {
	if err == nil {
		return Normalized{Type: System, Message: "unknown error", Status: http.StatusInternalServerError, Actions: actionsFor(System, false)}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Normalized{
			Type:        Network,
			Message:     err.Error(),
			Status:      http.StatusRequestTimeout,
			Recoverable: true,
			Actions:     actionsFor(Network, true),
		}
	}

	var apiErr *mockapi.Error
	if errors.As(err, &apiErr) {
		t := typeForStatus(apiErr.Status)
		recoverable := apiErr.Status >= 500 ||
			apiErr.Status == http.StatusRequestTimeout ||
			apiErr.Status == http.StatusTooManyRequests
		return Normalized{
			Type:        t,
			Message:     apiErr.Message,
			Code:        apiErr.Code,
			Status:      apiErr.Status,
			Recoverable: recoverable,
			Actions:     actionsFor(t, recoverable),
		}
	}

	return Normalized{
		Type:        System,
		Message:     err.Error(),
		Status:      http.StatusInternalServerError,
		Recoverable: true,
		Actions:     actionsFor(System, true),
	}
}

func typeForStatus(status int) Type {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return Validation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Authorization
	case status == http.StatusRequestTimeout || status == http.StatusTooManyRequests:
		return Network
	case status >= 500:
		return System
	case status >= 400:
		return Business
	default:
		return System
	}
}

func actionsFor(t Type, recoverable bool) []string {
	switch t {
	case Validation:
		return []string{"Review the entered data", "Dismiss"}
	case Authorization:
		return []string{"Sign in again"}
	case Network:
		return []string{"Retry", "Dismiss"}
	case Business:
		return []string{"Dismiss"}
	default:
		if recoverable {
			return []string{"Retry later", "Contact support"}
		}
		return []string{"Contact support"}
	}
}
