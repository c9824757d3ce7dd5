package validation

import (
	"errors"
	"testing"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(credentials{Email: "a@b.co", Password: "x"}))
}

func TestStructReportsFieldsAndWrapsInvalidInput(t *testing.T) {
	t.Parallel()

	err := Struct(credentials{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "is required",
	}, verr.Fields())
	assert.Contains(t, err.Error(), "password is required")
}

func TestStructValidatesNewProduct(t *testing.T) {
	t.Parallel()

	err := Struct(domain.NewProduct{Name: "", Price: -1, Image: "not a url"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := verr.Fields()
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be greater than or equal to 0", fields["price"])
	assert.Equal(t, "must be a valid URL", fields["image"])
}

func TestStructAcceptsImageDataURI(t *testing.T) {
	t.Parallel()

	err := Struct(domain.NewProduct{Name: "Chair", Image: "data:image/png;base64,iVBORw0KGgo="})
	require.NoError(t, err)
}
