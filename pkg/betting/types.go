package betting

import (
	"time"

	"betfair/pkg/core"
)

type EventType struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

type EventTypeResult struct {
	EventType   EventType `json:"eventType"`
	MarketCount int       `json:"marketCount"`
}

type Competition struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

type CompetitionResult struct {
	Competition       Competition `json:"competition"`
	MarketCount       int         `json:"marketCount"`
	CompetitionRegion string      `json:"competitionRegion"`
}

type Event struct {
	ID          string     `json:"id" validate:"required"`
	Name        string     `json:"name"`
	CountryCode string     `json:"countryCode"`
	Timezone    string     `json:"timezone"`
	Venue       string     `json:"venue"`
	OpenDate    *time.Time `json:"openDate"`
}

type EventResult struct {
	Event       Event `json:"event"`
	MarketCount int   `json:"marketCount"`
}

type MarketTypeResult struct {
	MarketType  string `json:"marketType" validate:"required"`
	MarketCount int    `json:"marketCount"`
}

type CountryCodeResult struct {
	CountryCode string `json:"countryCode" validate:"required"`
	MarketCount int    `json:"marketCount"`
}

type VenueResult struct {
	Venue       string `json:"venue" validate:"required"`
	MarketCount int    `json:"marketCount"`
}

type TimeRangeResult struct {
	TimeRange   TimeRange `json:"timeRange"`
	MarketCount int       `json:"marketCount"`
}

// MarketCatalogue is the static description of a market. Optional parts are only
// present when requested through MarketProjection.
type MarketCatalogue struct {
	MarketID        string             `json:"marketId" validate:"required"`
	MarketName      string             `json:"marketName"`
	MarketStartTime *time.Time         `json:"marketStartTime"`
	Description     *MarketDescription `json:"description"`
	TotalMatched    float64            `json:"totalMatched"`
	Runners         []RunnerCatalog    `json:"runners" validate:"dive"`
	EventType       *EventType         `json:"eventType"`
	Competition     *Competition       `json:"competition"`
	Event           *Event             `json:"event"`
}

type MarketDescription struct {
	PersistenceEnabled     bool                    `json:"persistenceEnabled"`
	BSPMarket              bool                    `json:"bspMarket"`
	MarketTime             *time.Time              `json:"marketTime"`
	SuspendTime            *time.Time              `json:"suspendTime"`
	SettleTime             *time.Time              `json:"settleTime"`
	BettingType            MarketBettingType       `json:"bettingType"`
	TurnInPlayEnabled      bool                    `json:"turnInPlayEnabled"`
	MarketType             string                  `json:"marketType"`
	Regulator              string                  `json:"regulator"`
	MarketBaseRate         float64                 `json:"marketBaseRate"`
	DiscountAllowed        bool                    `json:"discountAllowed"`
	Wallet                 string                  `json:"wallet"`
	Rules                  string                  `json:"rules"`
	RulesHasDate           bool                    `json:"rulesHasDate"`
	EachWayDivisor         float64                 `json:"eachWayDivisor"`
	Clarifications         string                  `json:"clarifications"`
	LineRangeInfo          *MarketLineRangeInfo    `json:"lineRangeInfo"`
	RaceType               string                  `json:"raceType"`
	PriceLadderDescription *PriceLadderDescription `json:"priceLadderDescription"`
}

type MarketLineRangeInfo struct {
	MaxUnitValue float64 `json:"maxUnitValue"`
	MinUnitValue float64 `json:"minUnitValue"`
	Interval     float64 `json:"interval"`
	MarketUnit   string  `json:"marketUnit"`
}

type PriceLadderDescription struct {
	Type string `json:"type"`
}

type RunnerCatalog struct {
	SelectionID  int64             `json:"selectionId" validate:"required"`
	RunnerName   string            `json:"runnerName"`
	Handicap     float64           `json:"handicap"`
	SortPriority int               `json:"sortPriority"`
	Metadata     map[string]string `json:"metadata"`
}

// MarketBook is the dynamic state of a market: prices, volumes and the caller's orders.
type MarketBook struct {
	MarketID              string              `json:"marketId" validate:"required"`
	IsMarketDataDelayed   bool                `json:"isMarketDataDelayed"`
	Status                MarketStatus        `json:"status"`
	BetDelay              int                 `json:"betDelay"`
	BSPReconciled         bool                `json:"bspReconciled"`
	Complete              bool                `json:"complete"`
	Inplay                bool                `json:"inplay"`
	NumberOfWinners       int                 `json:"numberOfWinners"`
	NumberOfRunners       int                 `json:"numberOfRunners"`
	NumberOfActiveRunners int                 `json:"numberOfActiveRunners"`
	LastMatchTime         *time.Time          `json:"lastMatchTime"`
	TotalMatched          float64             `json:"totalMatched"`
	TotalAvailable        float64             `json:"totalAvailable"`
	CrossMatching         bool                `json:"crossMatching"`
	RunnersVoidable       bool                `json:"runnersVoidable"`
	Version               int64               `json:"version"`
	Runners               []Runner            `json:"runners" validate:"dive"`
	KeyLineDescription    *KeyLineDescription `json:"keyLineDescription"`
}

type Runner struct {
	SelectionID       int64              `json:"selectionId" validate:"required"`
	Handicap          float64            `json:"handicap"`
	Status            RunnerStatus       `json:"status"`
	AdjustmentFactor  float64            `json:"adjustmentFactor"`
	LastPriceTraded   float64            `json:"lastPriceTraded"`
	TotalMatched      float64            `json:"totalMatched"`
	RemovalDate       *time.Time         `json:"removalDate"`
	SP                *StartingPrices    `json:"sp"`
	EX                *ExchangePrices    `json:"ex"`
	Orders            []Order            `json:"orders" validate:"dive"`
	Matches           []Match            `json:"matches"`
	MatchesByStrategy map[string][]Match `json:"matchesByStrategy"`
}

type StartingPrices struct {
	NearPrice         float64     `json:"nearPrice"`
	FarPrice          float64     `json:"farPrice"`
	BackStakeTaken    []PriceSize `json:"backStakeTaken"`
	LayLiabilityTaken []PriceSize `json:"layLiabilityTaken"`
	ActualSP          float64     `json:"actualSP"`
}

type ExchangePrices struct {
	AvailableToBack []PriceSize `json:"availableToBack"`
	AvailableToLay  []PriceSize `json:"availableToLay"`
	TradedVolume    []PriceSize `json:"tradedVolume"`
}

type PriceSize struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// BestBack returns the best available back price, if any.
func (e *ExchangePrices) BestBack() (PriceSize, bool) {
	if e == nil || len(e.AvailableToBack) == 0 {
		return PriceSize{}, false
	}
	return e.AvailableToBack[0], true
}

// BestLay returns the best available lay price, if any.
func (e *ExchangePrices) BestLay() (PriceSize, bool) {
	if e == nil || len(e.AvailableToLay) == 0 {
		return PriceSize{}, false
	}
	return e.AvailableToLay[0], true
}

// Order is one of the caller's bets as reported inside a MarketBook runner.
type Order struct {
	BetID               string               `json:"betId" validate:"required"`
	OrderType           core.OrderType       `json:"orderType"`
	Status              core.OrderStatus     `json:"status"`
	PersistenceType     core.PersistenceType `json:"persistenceType"`
	Side                core.Side            `json:"side"`
	Price               float64              `json:"price"`
	Size                float64              `json:"size"`
	BSPLiability        float64              `json:"bspLiability"`
	PlacedDate          *time.Time           `json:"placedDate"`
	AvgPriceMatched     float64              `json:"avgPriceMatched"`
	SizeMatched         float64              `json:"sizeMatched"`
	SizeRemaining       float64              `json:"sizeRemaining"`
	SizeLapsed          float64              `json:"sizeLapsed"`
	SizeCancelled       float64              `json:"sizeCancelled"`
	SizeVoided          float64              `json:"sizeVoided"`
	CustomerOrderRef    string               `json:"customerOrderRef"`
	CustomerStrategyRef string               `json:"customerStrategyRef"`
}

type Match struct {
	BetID     string     `json:"betId"`
	MatchID   string     `json:"matchId"`
	Side      core.Side  `json:"side"`
	Price     float64    `json:"price"`
	Size      float64    `json:"size"`
	MatchDate *time.Time `json:"matchDate"`
}

type KeyLineDescription struct {
	KeyLine []KeyLineSelection `json:"keyLine"`
}

type KeyLineSelection struct {
	SelectionID int64   `json:"selectionId"`
	Handicap    float64 `json:"handicap"`
}

type MarketProfitAndLoss struct {
	MarketID          string                `json:"marketId" validate:"required"`
	CommissionApplied float64               `json:"commissionApplied"`
	ProfitAndLosses   []RunnerProfitAndLoss `json:"profitAndLosses"`
}

type RunnerProfitAndLoss struct {
	SelectionID int64   `json:"selectionId"`
	IfWin       float64 `json:"ifWin"`
	IfLose      float64 `json:"ifLose"`
	IfPlace     float64 `json:"ifPlace"`
}

type CurrentOrderSummary struct {
	BetID               string               `json:"betId" validate:"required"`
	MarketID            string               `json:"marketId" validate:"required"`
	SelectionID         int64                `json:"selectionId"`
	Handicap            float64              `json:"handicap"`
	PriceSize           PriceSize            `json:"priceSize"`
	BSPLiability        float64              `json:"bspLiability"`
	Side                core.Side            `json:"side"`
	Status              core.OrderStatus     `json:"status"`
	PersistenceType     core.PersistenceType `json:"persistenceType"`
	OrderType           core.OrderType       `json:"orderType"`
	PlacedDate          *time.Time           `json:"placedDate"`
	MatchedDate         *time.Time           `json:"matchedDate"`
	AveragePriceMatched float64              `json:"averagePriceMatched"`
	SizeMatched         float64              `json:"sizeMatched"`
	SizeRemaining       float64              `json:"sizeRemaining"`
	SizeLapsed          float64              `json:"sizeLapsed"`
	SizeCancelled       float64              `json:"sizeCancelled"`
	SizeVoided          float64              `json:"sizeVoided"`
	RegulatorAuthCode   string               `json:"regulatorAuthCode"`
	RegulatorCode       string               `json:"regulatorCode"`
	CustomerOrderRef    string               `json:"customerOrderRef"`
	CustomerStrategyRef string               `json:"customerStrategyRef"`
}

// CurrentOrderSummaryReport is one page of current orders. MoreAvailable reports
// whether another page can be fetched with a higher FromRecord.
type CurrentOrderSummaryReport struct {
	CurrentOrders []CurrentOrderSummary `json:"currentOrders" validate:"dive"`
	MoreAvailable bool                  `json:"moreAvailable"`
}

// ClearedOrderSummary is a settled bet, or a rollup of bets when GroupBy is used.
type ClearedOrderSummary struct {
	EventTypeID         string               `json:"eventTypeId"`
	EventID             string               `json:"eventId"`
	MarketID            string               `json:"marketId"`
	SelectionID         int64                `json:"selectionId"`
	Handicap            float64              `json:"handicap"`
	BetID               string               `json:"betId"`
	PlacedDate          *time.Time           `json:"placedDate"`
	PersistenceType     core.PersistenceType `json:"persistenceType"`
	OrderType           core.OrderType       `json:"orderType"`
	Side                core.Side            `json:"side"`
	ItemDescription     *ItemDescription     `json:"itemDescription"`
	BetOutcome          string               `json:"betOutcome"`
	PriceRequested      float64              `json:"priceRequested"`
	SettledDate         *time.Time           `json:"settledDate"`
	LastMatchedDate     *time.Time           `json:"lastMatchedDate"`
	BetCount            int                  `json:"betCount"`
	Commission          float64              `json:"commission"`
	PriceMatched        float64              `json:"priceMatched"`
	PriceReduced        bool                 `json:"priceReduced"`
	SizeSettled         float64              `json:"sizeSettled"`
	Profit              float64              `json:"profit"`
	SizeCancelled       float64              `json:"sizeCancelled"`
	CustomerOrderRef    string               `json:"customerOrderRef"`
	CustomerStrategyRef string               `json:"customerStrategyRef"`
}

type ClearedOrderSummaryReport struct {
	ClearedOrders []ClearedOrderSummary `json:"clearedOrders"`
	MoreAvailable bool                  `json:"moreAvailable"`
}

type ItemDescription struct {
	EventTypeDesc   string     `json:"eventTypeDesc"`
	EventDesc       string     `json:"eventDesc"`
	MarketDesc      string     `json:"marketDesc"`
	MarketType      string     `json:"marketType"`
	MarketStartTime *time.Time `json:"marketStartTime"`
	RunnerDesc      string     `json:"runnerDesc"`
	NumberOfWinners int        `json:"numberOfWinners"`
	EachWayDivisor  float64    `json:"eachWayDivisor"`
}
