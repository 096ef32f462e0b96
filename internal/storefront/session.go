package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
)

// Session is one client's storefront state. It owns every cache the client
// works with; nothing is shared between sessions.
type Session struct {
	Catalog *CatalogStore
	Cart    *Cart
	History *HistoryView
	Profile *ProfileStore
	Orders  *OrderEngine
	Chat    *Chat
}

// SessionConfig carries the tunables of a session
type SessionConfig struct {
	Lessor     string
	RentalDays int
	ChatDelay  time.Duration
	Clock      func() time.Time
}

func NewSession(remote Remote, cfg SessionConfig) *Session {
	cart := NewCart()
	history := NewHistoryView(remote)
	profile := NewProfileStore(remote)

	opts := []EngineOption{WithRentalDays(cfg.RentalDays)}
	if cfg.Lessor != "" {
		opts = append(opts, WithLessor(cfg.Lessor))
	}
	if cfg.Clock != nil {
		opts = append(opts, WithClock(cfg.Clock))
	}

	return &Session{
		Catalog: NewCatalogStore(remote),
		Cart:    cart,
		History: history,
		Profile: profile,
		Orders:  NewOrderEngine(remote, cart, history, profile, opts...),
		Chat:    NewChat(cfg.ChatDelay),
	}
}

// Sync loads catalog, order history and profile. Each failure is logged and
// leaves that cache as it was; the joined error is returned for callers that
// want to show a notice.
func (s *Session) Sync(ctx context.Context) error {
	var errs []error
	if err := s.Catalog.Refresh(ctx); err != nil {
		errs = append(errs, fmt.Errorf("catalog: %w", err))
	}
	if err := s.History.Refresh(ctx); err != nil {
		errs = append(errs, fmt.Errorf("orders: %w", err))
	}
	if _, err := s.Profile.Load(ctx); err != nil {
		errs = append(errs, fmt.Errorf("profile: %w", err))
	}
	if len(errs) > 0 {
		logger.Warn("Session sync incomplete", "failures", len(errs))
	}
	return errors.Join(errs...)
}

// AddToCart puts a catalog item in the cart if it is currently available.
// This is the client-side guard; the service checks again on commit.
func (s *Session) AddToCart(id int64) (domain.Equipment, error) {
	item, ok := s.Catalog.Get(id)
	if !ok {
		return domain.Equipment{}, domain.NewValidationError("equipmentId", fmt.Sprintf("equipment %d is not in the catalog", id))
	}
	if !item.IsAvailable() {
		return domain.Equipment{}, domain.NewValidationError("equipmentId", fmt.Sprintf("equipment %d is %s", id, item.Status))
	}
	s.Cart.Add(item)
	return item, nil
}

// Checkout commits the cart with the given rental window
func (s *Session) Checkout(ctx context.Context, opts CommitOptions) (*Receipt, error) {
	return s.Orders.Commit(ctx, opts)
}
