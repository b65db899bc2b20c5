package betting

// MarketProjection selects which optional parts of a MarketCatalogue are returned.
type MarketProjection string

const (
	ProjectionCompetition       MarketProjection = "COMPETITION"
	ProjectionEvent             MarketProjection = "EVENT"
	ProjectionEventType         MarketProjection = "EVENT_TYPE"
	ProjectionMarketStartTime   MarketProjection = "MARKET_START_TIME"
	ProjectionMarketDescription MarketProjection = "MARKET_DESCRIPTION"
	ProjectionRunnerDescription MarketProjection = "RUNNER_DESCRIPTION"
	ProjectionRunnerMetadata    MarketProjection = "RUNNER_METADATA"
)

// MarketSort orders listMarketCatalogue results.
type MarketSort string

const (
	SortMinimumTraded    MarketSort = "MINIMUM_TRADED"
	SortMaximumTraded    MarketSort = "MAXIMUM_TRADED"
	SortMinimumAvailable MarketSort = "MINIMUM_AVAILABLE"
	SortMaximumAvailable MarketSort = "MAXIMUM_AVAILABLE"
	SortFirstToStart     MarketSort = "FIRST_TO_START"
	SortLastToStart      MarketSort = "LAST_TO_START"
)

// PriceData selects which price information a market book carries.
type PriceData string

const (
	PriceDataSPAvailable  PriceData = "SP_AVAILABLE"
	PriceDataSPTraded     PriceData = "SP_TRADED"
	PriceDataExBestOffers PriceData = "EX_BEST_OFFERS"
	PriceDataExAllOffers  PriceData = "EX_ALL_OFFERS"
	PriceDataExTraded     PriceData = "EX_TRADED"
)

// RollupModel aggregates ladder depth in a price projection.
type RollupModel string

const (
	RollupStake            RollupModel = "STAKE"
	RollupPayout           RollupModel = "PAYOUT"
	RollupManagedLiability RollupModel = "MANAGED_LIABILITY"
	RollupNone             RollupModel = "NONE"
)

// OrderProjection filters orders by their execution state.
type OrderProjection string

const (
	OrderProjectionAll               OrderProjection = "ALL"
	OrderProjectionExecutable        OrderProjection = "EXECUTABLE"
	OrderProjectionExecutionComplete OrderProjection = "EXECUTION_COMPLETE"
)

// MatchProjection controls whether matches are rolled up.
type MatchProjection string

const (
	MatchNoRollup           MatchProjection = "NO_ROLLUP"
	MatchRolledUpByPrice    MatchProjection = "ROLLED_UP_BY_PRICE"
	MatchRolledUpByAvgPrice MatchProjection = "ROLLED_UP_BY_AVG_PRICE"
)

// TimeGranularity buckets listTimeRanges results.
type TimeGranularity string

const (
	GranularityDays    TimeGranularity = "DAYS"
	GranularityHours   TimeGranularity = "HOURS"
	GranularityMinutes TimeGranularity = "MINUTES"
)

func (g TimeGranularity) Valid() bool {
	switch g {
	case GranularityDays, GranularityHours, GranularityMinutes:
		return true
	}
	return false
}

// MarketBettingType is the betting style of a market.
type MarketBettingType string

const (
	BettingOdds                    MarketBettingType = "ODDS"
	BettingLine                    MarketBettingType = "LINE"
	BettingRange                   MarketBettingType = "RANGE"
	BettingAsianHandicapDoubleLine MarketBettingType = "ASIAN_HANDICAP_DOUBLE_LINE"
	BettingAsianHandicapSingleLine MarketBettingType = "ASIAN_HANDICAP_SINGLE_LINE"
	BettingFixedOdds               MarketBettingType = "FIXED_ODDS"
)

// MarketStatus is the trading state of a market.
type MarketStatus string

const (
	MarketInactive  MarketStatus = "INACTIVE"
	MarketOpen      MarketStatus = "OPEN"
	MarketSuspended MarketStatus = "SUSPENDED"
	MarketClosed    MarketStatus = "CLOSED"
)

// RunnerStatus is the state of a selection in a market.
type RunnerStatus string

const (
	RunnerActive        RunnerStatus = "ACTIVE"
	RunnerWinner        RunnerStatus = "WINNER"
	RunnerLoser         RunnerStatus = "LOSER"
	RunnerPlaced        RunnerStatus = "PLACED"
	RunnerRemovedVacant RunnerStatus = "REMOVED_VACANT"
	RunnerRemoved       RunnerStatus = "REMOVED"
	RunnerHidden        RunnerStatus = "HIDDEN"
)

// OrderBy sorts listCurrentOrders results.
type OrderBy string

const (
	OrderByBet         OrderBy = "BY_BET"
	OrderByMarket      OrderBy = "BY_MARKET"
	OrderByMatchTime   OrderBy = "BY_MATCH_TIME"
	OrderByPlaceTime   OrderBy = "BY_PLACE_TIME"
	OrderBySettledTime OrderBy = "BY_SETTLED_TIME"
	OrderByVoidTime    OrderBy = "BY_VOID_TIME"
)

// SortDir is the direction of an OrderBy sort.
type SortDir string

const (
	SortEarliestToLatest SortDir = "EARLIEST_TO_LATEST"
	SortLatestToEarliest SortDir = "LATEST_TO_EARLIEST"
)

// BetStatus selects which settled bets listClearedOrders returns.
type BetStatus string

const (
	BetStatusSettled   BetStatus = "SETTLED"
	BetStatusVoided    BetStatus = "VOIDED"
	BetStatusLapsed    BetStatus = "LAPSED"
	BetStatusCancelled BetStatus = "CANCELLED"
)

func (s BetStatus) Valid() bool {
	switch s {
	case BetStatusSettled, BetStatusVoided, BetStatusLapsed, BetStatusCancelled:
		return true
	}
	return false
}

// GroupBy rolls up listClearedOrders results.
type GroupBy string

const (
	GroupByEventType GroupBy = "EVENT_TYPE"
	GroupByEvent     GroupBy = "EVENT"
	GroupByMarket    GroupBy = "MARKET"
	GroupBySide      GroupBy = "SIDE"
	GroupByBet       GroupBy = "BET"
)

// ExecutionReportStatus is the overall outcome of a place/cancel/replace/update call.
type ExecutionReportStatus string

const (
	ExecutionSuccess             ExecutionReportStatus = "SUCCESS"
	ExecutionFailure             ExecutionReportStatus = "FAILURE"
	ExecutionProcessedWithErrors ExecutionReportStatus = "PROCESSED_WITH_ERRORS"
	ExecutionTimeout             ExecutionReportStatus = "TIMEOUT"
)

// InstructionReportStatus is the outcome of a single instruction.
type InstructionReportStatus string

const (
	InstructionSuccess InstructionReportStatus = "SUCCESS"
	InstructionFailure InstructionReportStatus = "FAILURE"
	InstructionTimeout InstructionReportStatus = "TIMEOUT"
)
