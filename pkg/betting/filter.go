package betting

import (
	"time"

	"betfair/pkg/core"
)

// MarketFilter selects markets. Every field is optional; the zero value matches
// all markets and encodes as {}.
type MarketFilter struct {
	TextQuery          string              `json:"textQuery,omitempty"`
	EventTypeIDs       []string            `json:"eventTypeIds,omitempty"`
	EventIDs           []string            `json:"eventIds,omitempty"`
	CompetitionIDs     []string            `json:"competitionIds,omitempty"`
	MarketIDs          []string            `json:"marketIds,omitempty"`
	Venues             []string            `json:"venues,omitempty"`
	BSPOnly            *bool               `json:"bspOnly,omitempty"`
	TurnInPlayEnabled  *bool               `json:"turnInPlayEnabled,omitempty"`
	InPlayOnly         *bool               `json:"inPlayOnly,omitempty"`
	MarketBettingTypes []MarketBettingType `json:"marketBettingTypes,omitempty"`
	MarketCountries    []string            `json:"marketCountries,omitempty"`
	MarketTypeCodes    []string            `json:"marketTypeCodes,omitempty"`
	MarketStartTime    *TimeRange          `json:"marketStartTime,omitempty"`
	WithOrders         []core.OrderStatus  `json:"withOrders,omitempty"`
	RaceTypes          []string            `json:"raceTypes,omitempty"`
}

// TimeRange is a half-open interval. Either end may be nil.
type TimeRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Between returns a TimeRange from from to to.
func Between(from, to time.Time) *TimeRange {
	return &TimeRange{From: &from, To: &to}
}

// PriceProjection selects the price data returned by listMarketBook and listRunnerBook.
type PriceProjection struct {
	PriceData             []PriceData            `json:"priceData,omitempty"`
	ExBestOffersOverrides *ExBestOffersOverrides `json:"exBestOffersOverrides,omitempty"`
	Virtualise            *bool                  `json:"virtualise,omitempty"`
	RolloverStakes        *bool                  `json:"rolloverStakes,omitempty"`
}

// ExBestOffersOverrides tunes EX_BEST_OFFERS depth and rollup.
type ExBestOffersOverrides struct {
	BestPricesDepth          int         `json:"bestPricesDepth,omitempty"`
	RollupModel              RollupModel `json:"rollupModel,omitempty"`
	RollupLimit              int         `json:"rollupLimit,omitempty"`
	RollupLiabilityThreshold float64     `json:"rollupLiabilityThreshold,omitempty"`
	RollupLiabilityFactor    int         `json:"rollupLiabilityFactor,omitempty"`
}

// RunnerID identifies a selection within a market.
type RunnerID struct {
	MarketID    string  `json:"marketId" validate:"required"`
	SelectionID int64   `json:"selectionId" validate:"required"`
	Handicap    float64 `json:"handicap,omitempty"`
}

// Bool returns a pointer to b, for the tri-state flags of filters and requests.
func Bool(b bool) *bool {
	return &b
}
