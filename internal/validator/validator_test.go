package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count,omitempty" validate:"min=1"`
	Skip  string `json:"-" validate:"max=2"`
}

func TestStruct(t *testing.T) {
	assert.Nil(t, Struct(sample{Name: "x", Count: 1}))

	fields := Struct(sample{Count: 0})
	assert.Equal(t, "name is a required field", fields["name"])
	assert.Equal(t, "count must be 1 or greater", fields["count"])
}

func TestTranslateErrors_NonValidation(t *testing.T) {
	Setup()

	fields := TranslateErrors(errors.New("boom"))

	assert.Equal(t, map[string]string{"detail": "boom"}, fields)
}
