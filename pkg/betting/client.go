// Package betting implements the Betfair Betting API operations.
package betting

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"betfair/internal/transport"
	"betfair/pkg/core"
)

var validate = validator.New()

// ErrNilRequest is returned when an operation is called with a nil request.
var ErrNilRequest = errors.New("request is nil")

// Client issues Betting API operations. It is safe for concurrent use.
type Client struct {
	config   *core.Config
	executor core.Executor
	logger   zerolog.Logger
}

func New(config *core.Config, executor core.Executor, logger zerolog.Logger) *Client {
	return &Client{
		config:   config,
		executor: executor,
		logger:   logger,
	}
}

func (c *Client) ListEventTypes(ctx context.Context, token string, filter MarketFilter, opts ...Option) ([]EventTypeResult, error) {
	return call[[]EventTypeResult](ctx, c, core.OpListEventTypes, token, listParams(filter, opts))
}

func (c *Client) ListCompetitions(ctx context.Context, token string, filter MarketFilter, opts ...Option) ([]CompetitionResult, error) {
	return call[[]CompetitionResult](ctx, c, core.OpListCompetitions, token, listParams(filter, opts))
}

func (c *Client) ListEvents(ctx context.Context, token string, filter MarketFilter, opts ...Option) ([]EventResult, error) {
	return call[[]EventResult](ctx, c, core.OpListEvents, token, listParams(filter, opts))
}

func (c *Client) ListMarketTypes(ctx context.Context, token string, filter MarketFilter, opts ...Option) ([]MarketTypeResult, error) {
	return call[[]MarketTypeResult](ctx, c, core.OpListMarketTypes, token, listParams(filter, opts))
}

func (c *Client) ListCountries(ctx context.Context, token string, filter MarketFilter, opts ...Option) ([]CountryCodeResult, error) {
	return call[[]CountryCodeResult](ctx, c, core.OpListCountries, token, listParams(filter, opts))
}

func (c *Client) ListVenues(ctx context.Context, token string, filter MarketFilter, opts ...Option) ([]VenueResult, error) {
	return call[[]VenueResult](ctx, c, core.OpListVenues, token, listParams(filter, opts))
}

// ListTimeRanges returns the time buckets of granularity that hold markets matching filter.
func (c *Client) ListTimeRanges(ctx context.Context, token string, filter MarketFilter, granularity TimeGranularity) ([]TimeRangeResult, error) {
	if !granularity.Valid() {
		return nil, fmt.Errorf("invalid request: unknown time granularity %q", granularity)
	}
	params := core.NewParams().
		Set("filter", filter).
		Set("granularity", string(granularity))
	return call[[]TimeRangeResult](ctx, c, core.OpListTimeRanges, token, params)
}

func (c *Client) ListMarketCatalogue(ctx context.Context, token string, req *ListMarketCatalogueRequest) ([]MarketCatalogue, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[[]MarketCatalogue](ctx, c, core.OpListMarketCatalogue, token, req.params())
}

func (c *Client) ListMarketBook(ctx context.Context, token string, req *ListMarketBookRequest) ([]MarketBook, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[[]MarketBook](ctx, c, core.OpListMarketBook, token, req.params())
}

func (c *Client) ListRunnerBook(ctx context.Context, token string, req *ListRunnerBookRequest) ([]MarketBook, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[[]MarketBook](ctx, c, core.OpListRunnerBook, token, req.params())
}

func (c *Client) ListMarketProfitAndLoss(ctx context.Context, token string, req *ListMarketProfitAndLossRequest) ([]MarketProfitAndLoss, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[[]MarketProfitAndLoss](ctx, c, core.OpListMarketProfitAndLoss, token, req.params())
}

// ListCurrentOrders returns one page of unsettled orders. A nil request lists the
// first page of all of them.
func (c *Client) ListCurrentOrders(ctx context.Context, token string, req *ListCurrentOrdersRequest) (*CurrentOrderSummaryReport, error) {
	if req == nil {
		req = &ListCurrentOrdersRequest{}
	}
	if err := check(req); err != nil {
		return nil, err
	}
	return call[*CurrentOrderSummaryReport](ctx, c, core.OpListCurrentOrders, token, req.params())
}

func (c *Client) ListClearedOrders(ctx context.Context, token string, req *ListClearedOrdersRequest) (*ClearedOrderSummaryReport, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[*ClearedOrderSummaryReport](ctx, c, core.OpListClearedOrders, token, req.params())
}

// PlaceOrders places new bets on one market. A customer ref is generated when the
// request carries none, so a resubmission of the returned report's ref is
// de-duplicated by Betfair.
func (c *Client) PlaceOrders(ctx context.Context, token string, req *PlaceOrdersRequest) (*PlaceExecutionReport, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	r := *req
	if r.CustomerRef == "" {
		r.CustomerRef = NewCustomerRef()
	}
	return call[*PlaceExecutionReport](ctx, c, core.OpPlaceOrders, token, r.params())
}

// CancelOrders cancels unmatched bets. A nil request cancels every unmatched bet.
func (c *Client) CancelOrders(ctx context.Context, token string, req *CancelOrdersRequest) (*CancelExecutionReport, error) {
	if req == nil {
		req = &CancelOrdersRequest{}
	}
	if err := check(req); err != nil {
		return nil, err
	}
	return call[*CancelExecutionReport](ctx, c, core.OpCancelOrders, token, req.params())
}

// ReplaceOrders cancels bets and places them again at new prices.
func (c *Client) ReplaceOrders(ctx context.Context, token string, req *ReplaceOrdersRequest) (*ReplaceExecutionReport, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[*ReplaceExecutionReport](ctx, c, core.OpReplaceOrders, token, req.params())
}

// UpdateOrders changes the persistence type of unmatched bets.
func (c *Client) UpdateOrders(ctx context.Context, token string, req *UpdateOrdersRequest) (*UpdateExecutionReport, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return call[*UpdateExecutionReport](ctx, c, core.OpUpdateOrders, token, req.params())
}

func listParams(filter MarketFilter, opts []Option) *core.Params {
	o := ApplyOptions(opts...)
	return core.NewParams().
		Set("filter", filter).
		SetOptional("maxResults", o.MaxResults).
		SetOptional("locale", o.Locale)
}

func check[R any](req *R) error {
	if req == nil {
		return ErrNilRequest
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func call[T any](ctx context.Context, c *Client, op core.Operation, token string, params *core.Params) (T, error) {
	req, err := core.BuildRequest(c.config.BettingURL, op, token, c.config.ApplicationKey, params)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("build request: %w", err)
	}
	out, err := transport.Call[T](ctx, c.executor, req)
	if err != nil {
		c.logger.Debug().Err(err).Str("operation", op.String()).Msg("betting operation failed")
	}
	return out, err
}
