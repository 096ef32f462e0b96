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

func sampleClient() domain.Client {
	return domain.Client{
		CompanyName:          `ООО "СтройМонтаж"`,
		INN:                  "7701234567",
		KPP:                  "770101001",
		LegalAddress:         "г. Москва, ул. Строителей, д. 1",
		ContactPerson:        "Иванов Иван",
		Phone:                "+7 495 000-00-00",
		Email:                "info@stroymontazh.ru",
		BankName:             "ПАО Сбербанк",
		AccountNumber:        "40702810900000000001",
		CorrespondentAccount: "30101810400000000225",
		BIK:                  "044525225",
	}
}

func TestProfileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		remote := new(MockRemote)
		remote.On("LoadClient", mock.Anything).Return(sampleClient(), nil)
		store := NewProfileStore(remote)

		client, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleClient(), client)
		assert.Equal(t, sampleClient(), store.Current())
	})

	t.Run("Load failure keeps cached copy", func(t *testing.T) {
		remote := new(MockRemote)
		store := NewProfileStore(remote)

		remote.On("LoadClient", mock.Anything).Return(sampleClient(), nil).Once()
		_, err := store.Load(ctx)
		require.NoError(t, err)

		remote.On("LoadClient", mock.Anything).Return(domain.Client{}, &NetworkError{Op: "GET client", Err: errors.New("refused")}).Once()
		client, err := store.Load(ctx)
		assert.Error(t, err)
		assert.Equal(t, sampleClient(), client)
		assert.Equal(t, sampleClient(), store.Current())
	})

	t.Run("Save round trip", func(t *testing.T) {
		remote := new(MockRemote)
		store := NewProfileStore(remote)
		partial := domain.Client{CompanyName: "ИП Петров", Email: ""}

		remote.On("SaveClient", mock.Anything, partial).Return(nil)
		require.NoError(t, store.Save(ctx, partial))
		assert.Equal(t, partial, store.Current())
	})

	t.Run("Save failure leaves local copy", func(t *testing.T) {
		remote := new(MockRemote)
		store := NewProfileStore(remote)

		remote.On("SaveClient", mock.Anything, sampleClient()).Return(&NetworkError{Op: "POST client", StatusCode: 500, Err: errors.New("db down")})
		err := store.Save(ctx, sampleClient())

		var nerr *NetworkError
		assert.True(t, errors.As(err, &nerr))
		assert.True(t, store.Current().IsEmpty())
	})
}
