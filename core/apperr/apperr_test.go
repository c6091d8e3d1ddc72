package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"inventory-manager/core/apperr"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := apperr.NewParse("price", "please enter a price (ex 5.99)")
	assert.Equal(t, "price: please enter a price (ex 5.99)", err.Error())
	assert.Equal(t, apperr.KindParse, err.Kind())
	assert.Equal(t, "price", err.Field())
	assert.Equal(t, "please enter a price (ex 5.99)", err.Msg())

	wrapped := err.WrapParent(errors.New("boom"))
	assert.Equal(t, "price: please enter a price (ex 5.99) (boom)", wrapped.Error())
	assert.Nil(t, err.Unwrap(), "WrapParent must not mutate the receiver")
	assert.EqualError(t, wrapped.Unwrap(), "boom")
}

func TestError_EmptyStoreSentinel(t *testing.T) {
	err := fmt.Errorf("backup: %w", apperr.ErrEmptyStore)
	assert.True(t, errors.Is(err, apperr.ErrEmptyStore))
	assert.True(t, apperr.IsKind(err, apperr.KindEmptyStore))
	assert.False(t, apperr.IsKind(err, apperr.KindParse))
	assert.Equal(t, "EMPTY_STORE: nothing to export", apperr.ErrEmptyStore.Error())
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind apperr.Kind
		want bool
	}{
		{"Parse", apperr.NewParse("date", "bad"), apperr.KindParse, true},
		{"Lookup", apperr.NewLookup("id", "unknown"), apperr.KindLookup, true},
		{"WrongKind", apperr.NewLookup("id", "unknown"), apperr.KindParse, false},
		{"Plain", errors.New("plain"), apperr.KindParse, false},
		{"Nil", nil, apperr.KindParse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.IsKind(tt.err, tt.kind))
		})
	}
}
