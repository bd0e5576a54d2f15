// Package quote looks up current prices of stocks on Yahoo Finance and of
// crypto assets on CoinGecko.
//
// A lookup either returns a price or reports it unavailable. Failures are
// logged at debug level and never returned: callers fall back to the
// purchase price. There is no cache and no retry.
package quote

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finance"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds every single lookup.
const DefaultTimeout = 5 * time.Second

// maxConcurrentLookups bounds the fan-out of FetchAll.
const maxConcurrentLookups = 8

// Client looks up prices over HTTP.
type Client struct {
	equityURL  string
	cryptoURL  string
	httpClient *http.Client
	timeout    time.Duration
	log        zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the timeout of a single lookup.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a Client querying the Yahoo Finance API at equityURL and
// the CoinGecko API at cryptoURL.
func NewClient(equityURL, cryptoURL string, opts ...ClientOption) *Client {
	c := &Client{
		equityURL:  strings.TrimSuffix(equityURL, "/"),
		cryptoURL:  strings.TrimSuffix(cryptoURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EquityPrice returns the regular market price of a stock ticker.
func (c *Client) EquityPrice(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	addr := c.equityURL + "/v7/finance/quote?symbols=" + url.QueryEscape(symbol)
	return c.lookup(ctx, symbol, addr, "$.quoteResponse.result[0].regularMarketPrice")
}

// DigitalAssetPrice returns the USD price of a crypto asset. The CoinGecko id
// is the lower-cased symbol.
func (c *Client) DigitalAssetPrice(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	id := strings.ToLower(symbol)
	addr := c.cryptoURL + "/api/v3/simple/price?ids=" + url.QueryEscape(id) + "&vs_currencies=usd"
	return c.lookup(ctx, symbol, addr, `$["`+id+`"].usd`)
}

// Price dispatches on the asset kind.
func (c *Client) Price(ctx context.Context, symbol string, kind finance.AssetKind) (decimal.Decimal, bool) {
	switch kind {
	case finance.Stock:
		return c.EquityPrice(ctx, symbol)
	case finance.Crypto:
		return c.DigitalAssetPrice(ctx, symbol)
	default:
		c.log.Debug().Str("symbol", symbol).Str("kind", string(kind)).Msg("no price source for asset kind")
		return decimal.Zero, false
	}
}

// FetchAll looks up all requests concurrently. Unavailable prices are absent
// from the result, FetchAll never fails.
func (c *Client) FetchAll(ctx context.Context, requests []finance.PriceRequest) finance.Prices {
	var (
		mu     sync.Mutex
		prices = make(finance.Prices, len(requests))
		g      errgroup.Group
	)
	g.SetLimit(maxConcurrentLookups)
	for _, r := range requests {
		g.Go(func() error {
			price, ok := c.Price(ctx, r.Symbol, r.Kind)
			if !ok {
				return nil
			}
			mu.Lock()
			prices[r] = price
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return prices
}

// lookup gets addr and reads the price at path.
func (c *Client) lookup(ctx context.Context, symbol, addr, path string) (decimal.Decimal, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log := c.log.With().Str("symbol", symbol).Logger()
	var jobj any
	if err := jwget(ctx, c.httpClient, addr, &jobj); err != nil {
		log.Debug().Err(err).Msg("price unavailable")
		return decimal.Zero, false
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("price unavailable")
		return decimal.Zero, false
	}
	// jsonpath may return a list of one answer
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	price, err := toDecimal(jval)
	if err != nil {
		log.Debug().Err(err).Msg("price unavailable")
		return decimal.Zero, false
	}
	if !price.IsPositive() {
		log.Debug().Stringer("price", price).Msg("price unavailable: not positive")
		return decimal.Zero, false
	}
	log.Debug().Stringer("price", price).Msg("price found")
	return price, true
}

var _ finance.PriceSource = (*Client)(nil)
