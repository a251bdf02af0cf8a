package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signupcheck/internal/signup/domain/entities"
)

func TestCheckErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *entities.CheckError
		want string
	}{
		{
			name: "server validation surfaces the server reason",
			err:  entities.NewServerValidationError("Username must be at least 3 characters"),
			want: "Username must be at least 3 characters",
		},
		{
			name: "transport errors carry no user-facing message",
			err:  entities.NewCheckError(entities.KindTransport, errors.New("connection refused")),
			want: "",
		},
		{
			name: "invalid request has a generic description",
			err:  entities.NewCheckError(entities.KindInvalidRequest, errors.New("bad url")),
			want: "Invalid request",
		},
		{
			name: "invalid response has a generic description",
			err:  entities.NewCheckError(entities.KindInvalidResponse, errors.New("status 503")),
			want: "Invalid response from server",
		},
		{
			name: "decoding failure has a generic description",
			err:  entities.NewCheckError(entities.KindDecoding, errors.New("unexpected EOF")),
			want: "Unexpected response from server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Message())
		})
	}
}

func TestCheckErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := entities.NewCheckError(entities.KindTransport, cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transport")
}
