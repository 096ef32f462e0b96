package postgres

import (
	"database/sql"

	"prokat-rental/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.OrderRepository
	repository.ClientRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		EquipmentRepository: NewEquipmentRepository(db),
		OrderRepository:     NewOrderRepository(db),
		ClientRepository:    NewClientRepository(db),
	}
}
