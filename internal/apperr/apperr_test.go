package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Nil", nil, ""},
		{"Validation", ErrValidation, "validation"},
		{"Configuration", ErrConfiguration, "configuration"},
		{"Gateway", ErrGateway, "gateway"},
		{"Storage", ErrStorage, "storage"},
		{"NotFound", ErrTransactionNotFound, "not_found"},
		{"WrappedValidation", fmt.Errorf("%w: missing order_id", ErrValidation), "validation"},
		{"WrappedGateway", fmt.Errorf("%w: %s", ErrGateway, `{"status_code":"500"}`), "gateway"},
		{"Unknown", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
