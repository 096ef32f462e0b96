package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Get(ctx context.Context) (*domain.Client, error) {
	query := `SELECT COALESCE(company_name, ''), COALESCE(inn, ''), COALESCE(kpp, ''), COALESCE(legal_address, ''),
	                 COALESCE(contact_person, ''), COALESCE(phone, ''), COALESCE(email, ''), COALESCE(bank_name, ''),
	                 COALESCE(account_number, ''), COALESCE(correspondent_account, ''), COALESCE(bik, '')
	          FROM clients ORDER BY id LIMIT 1`

	c := &domain.Client{}
	logger.DatabaseCall("clients.Get", query)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&c.CompanyName, &c.INN, &c.KPP, &c.LegalAddress,
		&c.ContactPerson, &c.Phone, &c.Email, &c.BankName,
		&c.AccountNumber, &c.CorrespondentAccount, &c.BIK)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("clients.Get", 0, nil)
		return &domain.Client{}, nil
	}
	if err != nil {
		logger.DatabaseResult("clients.Get", 0, err)
		return nil, err
	}
	logger.DatabaseResult("clients.Get", 1, nil)
	return c, nil
}

// Save keeps a single profile row: the first save inserts it and later saves
// overwrite every field.
func (r *clientRepository) Save(ctx context.Context, c *domain.Client) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM clients ORDER BY id LIMIT 1 FOR UPDATE`).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			`INSERT INTO clients (company_name, inn, kpp, legal_address, contact_person, phone, email,
			                      bank_name, account_number, correspondent_account, bik, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			c.CompanyName, c.INN, c.KPP, c.LegalAddress, c.ContactPerson, c.Phone, c.Email,
			c.BankName, c.AccountNumber, c.CorrespondentAccount, c.BIK, time.Now())
	case err == nil:
		_, err = tx.ExecContext(ctx,
			`UPDATE clients SET company_name = $1, inn = $2, kpp = $3, legal_address = $4, contact_person = $5,
			                    phone = $6, email = $7, bank_name = $8, account_number = $9,
			                    correspondent_account = $10, bik = $11, updated_at = $12
			 WHERE id = $13`,
			c.CompanyName, c.INN, c.KPP, c.LegalAddress, c.ContactPerson, c.Phone, c.Email,
			c.BankName, c.AccountNumber, c.CorrespondentAccount, c.BIK, time.Now(), id)
	}
	if err != nil {
		logger.DatabaseResult("clients.Save", 0, err)
		return err
	}

	logger.DatabaseResult("clients.Save", 1, nil)
	return tx.Commit()
}
