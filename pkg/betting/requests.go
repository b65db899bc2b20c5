package betting

import (
	"time"

	"betfair/pkg/core"
)

type ListMarketCatalogueRequest struct {
	Filter           MarketFilter
	MarketProjection []MarketProjection
	Sort             MarketSort
	MaxResults       int `validate:"min=1,max=1000"`
	Locale           string
}

func (r *ListMarketCatalogueRequest) params() *core.Params {
	return core.NewParams().
		Set("filter", r.Filter).
		SetOptional("marketProjection", r.MarketProjection).
		SetOptional("sort", string(r.Sort)).
		Set("maxResults", r.MaxResults).
		SetOptional("locale", r.Locale)
}

// ListMarketBookRequest asks for the books of up to MarketIDs markets.
// IncludeOverallPosition defaults to true on Betfair's side, so it is a pointer.
type ListMarketBookRequest struct {
	MarketIDs                     []string `validate:"min=1,dive,required"`
	PriceProjection               *PriceProjection
	OrderProjection               OrderProjection
	MatchProjection               MatchProjection
	IncludeOverallPosition        *bool
	PartitionMatchedByStrategyRef *bool
	CustomerStrategyRefs          []string
	CurrencyCode                  string
	Locale                        string
	MatchedSince                  *time.Time
	BetIDs                        []string
}

func (r *ListMarketBookRequest) params() *core.Params {
	return core.NewParams().
		Set("marketIds", r.MarketIDs).
		SetOptional("priceProjection", r.PriceProjection).
		SetOptional("orderProjection", string(r.OrderProjection)).
		SetOptional("matchProjection", string(r.MatchProjection)).
		SetOptional("includeOverallPosition", r.IncludeOverallPosition).
		SetOptional("partitionMatchedByStrategyRef", r.PartitionMatchedByStrategyRef).
		SetOptional("customerStrategyRefs", r.CustomerStrategyRefs).
		SetOptional("currencyCode", r.CurrencyCode).
		SetOptional("locale", r.Locale).
		SetOptional("matchedSince", r.MatchedSince).
		SetOptional("betIds", r.BetIDs)
}

type ListRunnerBookRequest struct {
	MarketID                      string `validate:"required"`
	SelectionID                   int64  `validate:"required"`
	Handicap                      *float64
	PriceProjection               *PriceProjection
	OrderProjection               OrderProjection
	MatchProjection               MatchProjection
	IncludeOverallPosition        *bool
	PartitionMatchedByStrategyRef *bool
	CustomerStrategyRefs          []string
	CurrencyCode                  string
	Locale                        string
	MatchedSince                  *time.Time
	BetIDs                        []string
}

func (r *ListRunnerBookRequest) params() *core.Params {
	return core.NewParams().
		Set("marketId", r.MarketID).
		Set("selectionId", r.SelectionID).
		SetOptional("handicap", r.Handicap).
		SetOptional("priceProjection", r.PriceProjection).
		SetOptional("orderProjection", string(r.OrderProjection)).
		SetOptional("matchProjection", string(r.MatchProjection)).
		SetOptional("includeOverallPosition", r.IncludeOverallPosition).
		SetOptional("partitionMatchedByStrategyRef", r.PartitionMatchedByStrategyRef).
		SetOptional("customerStrategyRefs", r.CustomerStrategyRefs).
		SetOptional("currencyCode", r.CurrencyCode).
		SetOptional("locale", r.Locale).
		SetOptional("matchedSince", r.MatchedSince).
		SetOptional("betIds", r.BetIDs)
}

type ListMarketProfitAndLossRequest struct {
	MarketIDs          []string `validate:"min=1,dive,required"`
	IncludeSettledBets bool
	IncludeBSPBets     bool
	NetOfCommission    bool
}

func (r *ListMarketProfitAndLossRequest) params() *core.Params {
	return core.NewParams().
		Set("marketIds", r.MarketIDs).
		SetOptional("includeSettledBets", r.IncludeSettledBets).
		SetOptional("includeBspBets", r.IncludeBSPBets).
		SetOptional("netOfCommission", r.NetOfCommission)
}

// ListCurrentOrdersRequest pages through unsettled orders. A zero value returns the
// first page of every current order.
type ListCurrentOrdersRequest struct {
	BetIDs               []string
	MarketIDs            []string
	OrderProjection      OrderProjection
	CustomerOrderRefs    []string
	CustomerStrategyRefs []string
	DateRange            *TimeRange
	OrderBy              OrderBy
	SortDir              SortDir
	FromRecord           int `validate:"min=0"`
	RecordCount          int `validate:"min=0,max=1000"`
}

func (r *ListCurrentOrdersRequest) params() *core.Params {
	return core.NewParams().
		SetOptional("betIds", r.BetIDs).
		SetOptional("marketIds", r.MarketIDs).
		SetOptional("orderProjection", string(r.OrderProjection)).
		SetOptional("customerOrderRefs", r.CustomerOrderRefs).
		SetOptional("customerStrategyRefs", r.CustomerStrategyRefs).
		SetOptional("dateRange", r.DateRange).
		SetOptional("orderBy", string(r.OrderBy)).
		SetOptional("sortDir", string(r.SortDir)).
		SetOptional("fromRecord", r.FromRecord).
		SetOptional("recordCount", r.RecordCount)
}

type ListClearedOrdersRequest struct {
	BetStatus              BetStatus `validate:"required"`
	EventTypeIDs           []string
	EventIDs               []string
	MarketIDs              []string
	RunnerIDs              []RunnerID `validate:"dive"`
	BetIDs                 []string
	CustomerOrderRefs      []string
	CustomerStrategyRefs   []string
	Side                   core.Side
	SettledDateRange       *TimeRange
	GroupBy                GroupBy
	IncludeItemDescription bool
	Locale                 string
	FromRecord             int `validate:"min=0"`
	RecordCount            int `validate:"min=0,max=1000"`
}

func (r *ListClearedOrdersRequest) params() *core.Params {
	return core.NewParams().
		Set("betStatus", string(r.BetStatus)).
		SetOptional("eventTypeIds", r.EventTypeIDs).
		SetOptional("eventIds", r.EventIDs).
		SetOptional("marketIds", r.MarketIDs).
		SetOptional("runnerIds", r.RunnerIDs).
		SetOptional("betIds", r.BetIDs).
		SetOptional("customerOrderRefs", r.CustomerOrderRefs).
		SetOptional("customerStrategyRefs", r.CustomerStrategyRefs).
		SetOptional("side", string(r.Side)).
		SetOptional("settledDateRange", r.SettledDateRange).
		SetOptional("groupBy", string(r.GroupBy)).
		SetOptional("includeItemDescription", r.IncludeItemDescription).
		SetOptional("locale", r.Locale).
		SetOptional("fromRecord", r.FromRecord).
		SetOptional("recordCount", r.RecordCount)
}

func (r *PlaceOrdersRequest) params() *core.Params {
	return core.NewParams().
		Set("marketId", r.MarketID).
		Set("instructions", r.Instructions).
		SetOptional("customerRef", r.CustomerRef).
		SetOptional("marketVersion", r.MarketVersion).
		SetOptional("customerStrategyRef", r.CustomerStrategyRef).
		SetOptional("async", r.Async)
}

func (r *CancelOrdersRequest) params() *core.Params {
	return core.NewParams().
		SetOptional("marketId", r.MarketID).
		SetOptional("instructions", r.Instructions).
		SetOptional("customerRef", r.CustomerRef)
}

func (r *ReplaceOrdersRequest) params() *core.Params {
	return core.NewParams().
		Set("marketId", r.MarketID).
		Set("instructions", r.Instructions).
		SetOptional("customerRef", r.CustomerRef).
		SetOptional("marketVersion", r.MarketVersion).
		SetOptional("async", r.Async)
}

func (r *UpdateOrdersRequest) params() *core.Params {
	return core.NewParams().
		Set("marketId", r.MarketID).
		Set("instructions", r.Instructions).
		SetOptional("customerRef", r.CustomerRef)
}
