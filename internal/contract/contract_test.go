package contract

import (
	"testing"

	"prokat-rental/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:             5,
		Equipment:      "Перфоратор Bosch GBH 2-26, Бетономешалка 180л",
		StartDate:      "2024-01-10",
		EndDate:        "2024-01-17",
		Status:         domain.OrderStatusPending,
		Total:          1700,
		ContractNumber: "А-2024-000005",
	}
}

func sampleLines() []Line {
	return LinesFromEquipment([]domain.Equipment{
		{ID: 1, Name: "Перфоратор Bosch GBH 2-26", Price: 500, Period: "день"},
		{ID: 2, Name: "Бетономешалка 180л", Price: 1200, Period: "день"},
	})
}

func TestRender(t *testing.T) {
	t.Run("Anonymous renter", func(t *testing.T) {
		text := Render(sampleOrder(), domain.Client{}, sampleLines(), "")

		want := "Договор аренды №А-2024-000005\n\n" +
			"Дата: 10.01.2024\n" +
			"Арендатор: Клиент\n" +
			"Арендодатель: ООО \"ПрокатПро\"\n" +
			"Срок аренды: 10.01.2024 - 17.01.2024\n\n" +
			"Оборудование:\n" +
			"Перфоратор Bosch GBH 2-26 - 500₽/день\n" +
			"Бетономешалка 180л - 1200₽/день\n\n" +
			"Итого: 1700₽\n\n" +
			"Договор будет отправлен на вашу электронную почту в формате PDF."
		assert.Equal(t, want, text)
	})

	t.Run("Company details", func(t *testing.T) {
		client := domain.Client{CompanyName: `ООО "СтройМонтаж"`, INN: "7701234567", BIK: "044525225"}
		text := Render(sampleOrder(), client, sampleLines(), `ИП Петров`)

		assert.Contains(t, text, "Арендатор: ООО \"СтройМонтаж\"\nИНН: 7701234567\nБИК: 044525225\n")
		assert.Contains(t, text, "Арендодатель: ИП Петров\n")
		assert.NotContains(t, text, "КПП")
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := Render(sampleOrder(), domain.Client{CompanyName: "A"}, sampleLines(), "")
		b := Render(sampleOrder(), domain.Client{CompanyName: "A"}, sampleLines(), "")
		assert.Equal(t, a, b)
	})

	t.Run("Total comes from the order", func(t *testing.T) {
		order := sampleOrder()
		order.Total = 1900
		text := Render(order, domain.Client{}, sampleLines(), "")
		assert.Contains(t, text, "Итого: 1900₽")
	})
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(1700), Total(sampleLines()))
	assert.Equal(t, int64(0), Total(nil))

	duplicated := append(sampleLines(), sampleLines()[0])
	assert.Equal(t, int64(2200), Total(duplicated))
}

func TestLinesFromOrderItems(t *testing.T) {
	lines := LinesFromOrderItems([]domain.OrderItem{{EquipmentID: 1, Name: "Нивелир", Price: 300, Period: "день"}})
	assert.Equal(t, []Line{{Name: "Нивелир", Price: 300, Period: "день"}}, lines)
}
