package storefront

import (
	"context"
	"sync"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
)

// ProfileStore holds the session's single copy of the client profile. Fields
// are stored as given; no tax or banking validation happens here.
type ProfileStore struct {
	remote Remote

	mu     sync.RWMutex
	client domain.Client
}

func NewProfileStore(remote Remote) *ProfileStore {
	return &ProfileStore{remote: remote}
}

// Load fetches the saved profile. On failure the cached copy is returned
// together with the error.
func (p *ProfileStore) Load(ctx context.Context) (domain.Client, error) {
	client, err := p.remote.LoadClient(ctx)
	if err != nil {
		logger.Warn("Profile load failed, keeping cached profile", "error", err)
		return p.Current(), err
	}

	p.mu.Lock()
	p.client = client
	p.mu.Unlock()
	return client, nil
}

// Save writes the profile to the service and, once accepted, to the local copy
func (p *ProfileStore) Save(ctx context.Context, client domain.Client) error {
	if err := p.remote.SaveClient(ctx, client); err != nil {
		logger.Error("Profile save failed", "error", err)
		return err
	}

	p.mu.Lock()
	p.client = client
	p.mu.Unlock()
	return nil
}

// Current returns the cached profile without a network call
func (p *ProfileStore) Current() domain.Client {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client
}
