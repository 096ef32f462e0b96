// Package contract renders the human-readable rental agreement shown to the
// client after checkout and mailed by the rental service.
package contract

import (
	"fmt"
	"strings"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/utils"
)

const (
	DefaultLessor = `ООО "ПрокатПро"`
	defaultRenter = "Клиент"
	currency      = "₽"
)

// Line is one rented item as printed on the contract
type Line struct {
	Name   string
	Price  int64
	Period string
}

// LinesFromEquipment snapshots cart items into contract lines
func LinesFromEquipment(items []domain.Equipment) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{Name: item.Name, Price: item.Price, Period: item.Period})
	}
	return lines
}

// LinesFromOrderItems converts stored price snapshots into contract lines
func LinesFromOrderItems(items []domain.OrderItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{Name: item.Name, Price: item.Price, Period: item.Period})
	}
	return lines
}

// Render produces the contract text. The output depends only on its
// arguments: the date printed is the order start date, never the clock.
func Render(order domain.Order, client domain.Client, lines []Line, lessor string) string {
	if lessor == "" {
		lessor = DefaultLessor
	}
	renter := client.CompanyName
	if renter == "" {
		renter = defaultRenter
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Договор аренды №%s\n\n", order.ContractNumber)
	fmt.Fprintf(&b, "Дата: %s\n", displayDate(order.StartDate))
	fmt.Fprintf(&b, "Арендатор: %s\n", renter)
	writeOptional(&b, "ИНН", client.INN)
	writeOptional(&b, "КПП", client.KPP)
	writeOptional(&b, "Юридический адрес", client.LegalAddress)
	writeOptional(&b, "Контактное лицо", client.ContactPerson)
	writeOptional(&b, "Банк", client.BankName)
	writeOptional(&b, "Р/с", client.AccountNumber)
	writeOptional(&b, "К/с", client.CorrespondentAccount)
	writeOptional(&b, "БИК", client.BIK)
	fmt.Fprintf(&b, "Арендодатель: %s\n", lessor)
	fmt.Fprintf(&b, "Срок аренды: %s - %s\n\n", displayDate(order.StartDate), displayDate(order.EndDate))

	b.WriteString("Оборудование:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s - %d%s/%s\n", line.Name, line.Price, currency, line.Period)
	}

	fmt.Fprintf(&b, "\nИтого: %d%s\n\n", order.Total, currency)
	b.WriteString("Договор будет отправлен на вашу электронную почту в формате PDF.")
	return b.String()
}

// Total sums line prices; every occurrence of an item is billed
func Total(lines []Line) int64 {
	var total int64
	for _, line := range lines {
		total += line.Price
	}
	return total
}

func writeOptional(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

// displayDate prints an ISO date the way Russian paperwork does (DD.MM.YYYY).
// Unparseable input is printed as is.
func displayDate(iso string) string {
	t, err := utils.ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Format("02.01.2006")
}
