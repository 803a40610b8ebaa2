// Package pokeapi implements the catalog ports over the public PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// Default upstream locations.
const (
	DefaultBaseURL    = "https://pokeapi.co/api/v2"
	DefaultSpriteURL  = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	DefaultArtworkURL = DefaultSpriteURL + "/other/official-artwork"
	DefaultTimeout    = 15 * time.Second
)

// Resource paths under the base URL.
const (
	pathCreature  = "pokemon"
	pathSpecies   = "pokemon-species"
	pathType      = "type"
	pathEvolution = "evolution-chain"
)

// HTTPError is returned when the upstream answers with a non-2xx status.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, e.Body)
}

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL    string
	SpriteURL  string
	ArtworkURL string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to PokeAPI. It implements ports.CatalogAPI and
// ports.AssetFetcher.
type Client struct {
	baseURL    string
	spriteURL  string
	artworkURL string
	http       *http.Client
	logger     *zap.Logger
}

// NewClient creates a new PokeAPI client.
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.SpriteURL == "" {
		opts.SpriteURL = DefaultSpriteURL
	}
	if opts.ArtworkURL == "" {
		opts.ArtworkURL = DefaultArtworkURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		spriteURL:  strings.TrimRight(opts.SpriteURL, "/"),
		artworkURL: strings.TrimRight(opts.ArtworkURL, "/"),
		http:       httpClient,
		logger:     logger,
	}
}

// resolve turns a reference into a URL. Absolute URLs are used as given,
// anything else is treated as an id or name under the resource path.
func (c *Client) resolve(resource, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return fmt.Sprintf("%s/%s/%s/", c.baseURL, resource, ref)
}

func (c *Client) get(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream request",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{URL: url, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// ListCreatures returns the first limit catalog resources.
func (c *Client) ListCreatures(ctx context.Context, limit int) ([]entities.Resource, error) {
	url := fmt.Sprintf("%s/%s?limit=%d", c.baseURL, pathCreature, limit)

	var page namedPage
	if err := c.get(ctx, url, &page); err != nil {
		return nil, err
	}
	return page.resources(), nil
}

// GetCreature fetches one entity by id or URL.
func (c *Client) GetCreature(ctx context.Context, ref string) (*entities.Creature, error) {
	var body creatureBody
	if err := c.get(ctx, c.resolve(pathCreature, ref), &body); err != nil {
		return nil, err
	}
	return body.toEntity(), nil
}

// GetSpecies fetches one species record by id or URL.
func (c *Client) GetSpecies(ctx context.Context, ref string) (*entities.Species, error) {
	var body speciesBody
	if err := c.get(ctx, c.resolve(pathSpecies, ref), &body); err != nil {
		return nil, err
	}
	return body.toEntity(), nil
}

// GetTypeRelations fetches the damage relations of one type by name or URL.
func (c *Client) GetTypeRelations(ctx context.Context, ref string) (*entities.TypeRelations, error) {
	var body typeBody
	if err := c.get(ctx, c.resolve(pathType, ref), &body); err != nil {
		return nil, err
	}
	return body.toEntity(), nil
}

// ListTypes returns every type tag the upstream knows about.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	var page namedPage
	if err := c.get(ctx, fmt.Sprintf("%s/%s", c.baseURL, pathType), &page); err != nil {
		return nil, err
	}
	names := make([]string, len(page.Results))
	for i, r := range page.Results {
		names[i] = r.Name
	}
	return names, nil
}

// GetEvolutionChain fetches an evolution chain by id or URL.
func (c *Client) GetEvolutionChain(ctx context.Context, ref string) (*entities.ChainLink, error) {
	var body evolutionBody
	if err := c.get(ctx, c.resolve(pathEvolution, ref), &body); err != nil {
		return nil, err
	}
	root := body.Chain.toEntity()
	return &root, nil
}

// SpriteURL returns the list image address for id.
func (c *Client) SpriteURL(id int) string {
	return fmt.Sprintf("%s/%d.png", c.spriteURL, id)
}

// ArtworkURL returns the detail image address for id.
func (c *Client) ArtworkURL(id int) string {
	return fmt.Sprintf("%s/%d.png", c.artworkURL, id)
}

// FetchAsset downloads and discards url, warming any HTTP cache in between.
func (c *Client) FetchAsset(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{URL: url, StatusCode: resp.StatusCode}
	}
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}
	return nil
}
