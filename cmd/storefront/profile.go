package main

import (
	"fmt"
	"io"
	"strings"

	"prokat-rental/internal/domain"
)

// setFlags collects repeated -set key=value flags
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type profileField struct {
	key   string
	label string
	ref   func(*domain.Client) *string
}

// profileFields lists the editable fields in display order; keys match the
// API's JSON names
var profileFields = []profileField{
	{"companyName", "Компания", func(c *domain.Client) *string { return &c.CompanyName }},
	{"inn", "ИНН", func(c *domain.Client) *string { return &c.INN }},
	{"kpp", "КПП", func(c *domain.Client) *string { return &c.KPP }},
	{"legalAddress", "Юридический адрес", func(c *domain.Client) *string { return &c.LegalAddress }},
	{"contactPerson", "Контактное лицо", func(c *domain.Client) *string { return &c.ContactPerson }},
	{"phone", "Телефон", func(c *domain.Client) *string { return &c.Phone }},
	{"email", "Email", func(c *domain.Client) *string { return &c.Email }},
	{"bankName", "Банк", func(c *domain.Client) *string { return &c.BankName }},
	{"accountNumber", "Р/с", func(c *domain.Client) *string { return &c.AccountNumber }},
	{"correspondentAccount", "К/с", func(c *domain.Client) *string { return &c.CorrespondentAccount }},
	{"bik", "БИК", func(c *domain.Client) *string { return &c.BIK }},
}

func setProfileField(c *domain.Client, kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return domain.NewValidationError("set", fmt.Sprintf("expected key=value, got %q", kv))
	}
	key = strings.TrimSpace(key)
	for _, f := range profileFields {
		if strings.EqualFold(f.key, key) {
			*f.ref(c) = strings.TrimSpace(value)
			return nil
		}
	}
	return domain.NewValidationError("set", fmt.Sprintf("unknown profile field %q", key))
}

func printProfile(w io.Writer, c domain.Client) {
	if c.IsEmpty() {
		fmt.Fprintln(w, "Профиль не заполнен")
		return
	}
	for _, f := range profileFields {
		if v := *f.ref(&c); v != "" {
			fmt.Fprintf(w, "%s: %s\n", f.label, v)
		}
	}
}
