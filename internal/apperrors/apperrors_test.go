package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

func TestNormalizeAPIErrors(t *testing.T) {
	cases := []struct {
		status      int
		wantType    Type
		recoverable bool
	}{
		{http.StatusBadRequest, Validation, false},
		{http.StatusUnprocessableEntity, Validation, false},
		{http.StatusUnauthorized, Authorization, false},
		{http.StatusForbidden, Authorization, false},
		{http.StatusRequestTimeout, Network, true},
		{http.StatusTooManyRequests, Network, true},
		{http.StatusConflict, Business, false},
		{http.StatusNotFound, Business, false},
		{http.StatusInternalServerError, System, true},
		{http.StatusServiceUnavailable, System, true},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			normalized := Normalize(mockapi.NewError(tc.status, "SOME_CODE", "boom"))
			require.Equal(t, tc.wantType, normalized.Type)
			require.Equal(t, tc.status, normalized.Status)
			require.Equal(t, tc.recoverable, normalized.Recoverable)
			require.Equal(t, "boom", normalized.Message)
			require.Equal(t, "SOME_CODE", normalized.Code)
			require.NotEmpty(t, normalized.Actions)
		})
	}
}

func TestNormalizeWrappedAPIError(t *testing.T) {
	err := fmt.Errorf("submit transfer: %w", mockapi.NewError(http.StatusUnprocessableEntity, mockapi.CodeAmountLimitExceeded, "too big"))
	normalized := Normalize(err)

	require.Equal(t, Validation, normalized.Type)
	require.Equal(t, mockapi.CodeAmountLimitExceeded, normalized.Code)
}

func TestNormalizeContextErrors(t *testing.T) {
	for _, err := range []error{context.Canceled, context.DeadlineExceeded} {
		normalized := Normalize(err)
		require.Equal(t, Network, normalized.Type)
		require.True(t, normalized.Recoverable)
		require.Equal(t, http.StatusRequestTimeout, normalized.Status)
	}
}

func TestNormalizeUnknownError(t *testing.T) {
	normalized := Normalize(errors.New("something odd"))

	require.Equal(t, System, normalized.Type)
	require.True(t, normalized.Recoverable)
	require.Equal(t, http.StatusInternalServerError, normalized.Status)
}
