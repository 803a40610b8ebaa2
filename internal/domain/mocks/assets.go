package mocks

import (
	"context"
	"fmt"
	"sync"
)

// AssetFetcher is a mock implementation of ports.AssetFetcher.
type AssetFetcher struct {
	FailURLs map[string]error

	mu      sync.Mutex
	Fetched []string
}

// SpriteURL returns a fake sprite address.
func (m *AssetFetcher) SpriteURL(id int) string {
	return fmt.Sprintf("sprite/%d.png", id)
}

// ArtworkURL returns a fake artwork address.
func (m *AssetFetcher) ArtworkURL(id int) string {
	return fmt.Sprintf("artwork/%d.png", id)
}

// FetchAsset records the url and returns the configured failure, if any.
func (m *AssetFetcher) FetchAsset(_ context.Context, url string) error {
	m.mu.Lock()
	m.Fetched = append(m.Fetched, url)
	m.mu.Unlock()
	if err, ok := m.FailURLs[url]; ok {
		return err
	}
	return nil
}
