package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Identifier string `form:"identifier" validate:"required,email"`
	Password   string `form:"password" validate:"required,min=8"`
	Stock      int    `form:"stock_quantity" validate:"gte=0"`
	NoTag      string `validate:"required"`
}

func TestFromBindError_MapsByFormTag(t *testing.T) {
	v := validator.New()
	var in signupForm
	in.NoTag = "set"
	in.Identifier = "not-an-email"
	in.Password = "short"
	in.Stock = -1

	err := v.Struct(in)
	require.Error(t, err)

	fe := FromBindError(err, &in)
	assert.Equal(t, "Enter a valid email address.", fe["identifier"])
	assert.Equal(t, "Must be at least 8 characters.", fe["password"])
	assert.Equal(t, "Must be 0 or more.", fe["stock_quantity"])
}

func TestFromBindError_RequiredAndUntaggedField(t *testing.T) {
	v := validator.New()
	var in signupForm
	in.Identifier = "a@b.c"
	in.Password = "longenough"

	err := v.Struct(in)
	require.Error(t, err)

	fe := FromBindError(err, &in)
	// fields without a form tag fall back to the lowercased struct name
	assert.Equal(t, "This field is required.", fe["notag"])
}

func TestFromBindError_NonValidationError(t *testing.T) {
	fe := FromBindError(errors.New("unexpected EOF"), &signupForm{})
	assert.Equal(t, "Submitted form data is invalid.", fe["_"])
}
