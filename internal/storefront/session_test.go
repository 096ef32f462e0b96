package storefront

import (
	"context"
	"errors"
	"testing"

	"prokat-rental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSession_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("All loaded", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListEquipment", mock.Anything, domain.EquipmentFilter{}).Return(fullCatalog(), nil)
		remote.On("ListOrders", mock.Anything).Return(sampleOrders(), nil)
		remote.On("LoadClient", mock.Anything).Return(sampleClient(), nil)

		session := NewSession(remote, SessionConfig{})
		require.NoError(t, session.Sync(ctx))

		assert.Len(t, session.Catalog.List(domain.EquipmentFilter{}), 5)
		assert.Len(t, session.History.List(), 3)
		assert.Equal(t, sampleClient(), session.Profile.Current())
	})

	t.Run("Partial failure keeps going", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("ListEquipment", mock.Anything, domain.EquipmentFilter{}).Return(nil, &NetworkError{Op: "GET equipment", Err: errors.New("refused")})
		remote.On("ListOrders", mock.Anything).Return(sampleOrders(), nil)
		remote.On("LoadClient", mock.Anything).Return(domain.Client{}, &NetworkError{Op: "GET client", Err: errors.New("refused")})

		session := NewSession(remote, SessionConfig{})
		err := session.Sync(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog")
		assert.Contains(t, err.Error(), "profile")
		assert.Len(t, session.History.List(), 3)
		assert.Empty(t, session.Catalog.List(domain.EquipmentFilter{}))
	})
}

func TestSession_AddToCart(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListEquipment", mock.Anything, domain.EquipmentFilter{}).Return(fullCatalog(), nil)
	session := NewSession(remote, SessionConfig{})
	require.NoError(t, session.Catalog.Refresh(context.Background()))

	t.Run("Available", func(t *testing.T) {
		item, err := session.AddToCart(1)
		require.NoError(t, err)
		assert.Equal(t, drill(), item)
		assert.Equal(t, 1, session.Cart.Len())
	})

	t.Run("Rented", func(t *testing.T) {
		_, err := session.AddToCart(3)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Message, "rented")
	})

	t.Run("Maintenance", func(t *testing.T) {
		_, err := session.AddToCart(4)
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := session.AddToCart(404)
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	assert.Equal(t, 1, session.Cart.Len())
}
