package betting

import (
	"time"

	"betfair/pkg/core"
)

// PlaceInstruction describes one bet to place. Exactly one of LimitOrder,
// LimitOnCloseOrder or MarketOnCloseOrder is set, matching OrderType.
type PlaceInstruction struct {
	OrderType          core.OrderType      `json:"orderType" validate:"required"`
	SelectionID        int64               `json:"selectionId" validate:"required,gt=0"`
	Handicap           float64             `json:"handicap,omitempty"`
	Side               core.Side           `json:"side" validate:"required,oneof=BACK LAY"`
	LimitOrder         *LimitOrder         `json:"limitOrder,omitempty"`
	LimitOnCloseOrder  *LimitOnCloseOrder  `json:"limitOnCloseOrder,omitempty"`
	MarketOnCloseOrder *MarketOnCloseOrder `json:"marketOnCloseOrder,omitempty"`
	CustomerOrderRef   string              `json:"customerOrderRef,omitempty" validate:"max=32"`
}

type LimitOrder struct {
	Size            float64              `json:"size,omitempty"`
	Price           float64              `json:"price" validate:"gt=0"`
	PersistenceType core.PersistenceType `json:"persistenceType" validate:"required"`
	TimeInForce     core.TimeInForce     `json:"timeInForce,omitempty"`
	MinFillSize     float64              `json:"minFillSize,omitempty"`
	BetTargetType   core.BetTargetType   `json:"betTargetType,omitempty"`
	BetTargetSize   float64              `json:"betTargetSize,omitempty"`
}

type LimitOnCloseOrder struct {
	Liability float64 `json:"liability" validate:"gt=0"`
	Price     float64 `json:"price" validate:"gt=0"`
}

type MarketOnCloseOrder struct {
	Liability float64 `json:"liability" validate:"gt=0"`
}

// CancelInstruction cancels a bet fully, or reduces it by SizeReduction.
type CancelInstruction struct {
	BetID         string  `json:"betId" validate:"required"`
	SizeReduction float64 `json:"sizeReduction,omitempty"`
}

type ReplaceInstruction struct {
	BetID    string  `json:"betId" validate:"required"`
	NewPrice float64 `json:"newPrice" validate:"gt=0"`
}

type UpdateInstruction struct {
	BetID              string               `json:"betId" validate:"required"`
	NewPersistenceType core.PersistenceType `json:"newPersistenceType" validate:"required"`
}

// MarketVersion makes a placement fail if the market has changed since Version.
type MarketVersion struct {
	Version int64 `json:"version"`
}

type PlaceOrdersRequest struct {
	MarketID     string             `validate:"required"`
	Instructions []PlaceInstruction `validate:"min=1,max=200,dive"`
	// CustomerRef de-duplicates submissions; one is generated when empty.
	CustomerRef         string `validate:"max=32"`
	MarketVersion       *MarketVersion
	CustomerStrategyRef string `validate:"max=15"`
	Async               bool
}

// CancelOrdersRequest cancels the listed bets. With no MarketID and no
// instructions every unmatched bet on the account is cancelled.
type CancelOrdersRequest struct {
	MarketID     string              `validate:"required_with=Instructions"`
	Instructions []CancelInstruction `validate:"max=60,dive"`
	CustomerRef  string              `validate:"max=32"`
}

type ReplaceOrdersRequest struct {
	MarketID      string               `validate:"required"`
	Instructions  []ReplaceInstruction `validate:"min=1,max=60,dive"`
	CustomerRef   string               `validate:"max=32"`
	MarketVersion *MarketVersion
	Async         bool
}

type UpdateOrdersRequest struct {
	MarketID     string              `validate:"required"`
	Instructions []UpdateInstruction `validate:"min=1,max=60,dive"`
	CustomerRef  string              `validate:"max=32"`
}

type PlaceExecutionReport struct {
	CustomerRef        string                   `json:"customerRef"`
	Status             ExecutionReportStatus    `json:"status" validate:"required"`
	ErrorCode          string                   `json:"errorCode"`
	MarketID           string                   `json:"marketId"`
	InstructionReports []PlaceInstructionReport `json:"instructionReports"`
}

type PlaceInstructionReport struct {
	Status              InstructionReportStatus `json:"status"`
	ErrorCode           string                  `json:"errorCode"`
	OrderStatus         core.OrderStatus        `json:"orderStatus"`
	Instruction         PlaceInstruction        `json:"instruction" validate:"-"`
	BetID               string                  `json:"betId"`
	PlacedDate          *time.Time              `json:"placedDate"`
	AveragePriceMatched float64                 `json:"averagePriceMatched"`
	SizeMatched         float64                 `json:"sizeMatched"`
}

type CancelExecutionReport struct {
	CustomerRef        string                    `json:"customerRef"`
	Status             ExecutionReportStatus     `json:"status" validate:"required"`
	ErrorCode          string                    `json:"errorCode"`
	MarketID           string                    `json:"marketId"`
	InstructionReports []CancelInstructionReport `json:"instructionReports"`
}

type CancelInstructionReport struct {
	Status        InstructionReportStatus `json:"status"`
	ErrorCode     string                  `json:"errorCode"`
	Instruction   CancelInstruction       `json:"instruction" validate:"-"`
	SizeCancelled float64                 `json:"sizeCancelled"`
	CancelledDate *time.Time              `json:"cancelledDate"`
}

type ReplaceExecutionReport struct {
	CustomerRef        string                     `json:"customerRef"`
	Status             ExecutionReportStatus      `json:"status" validate:"required"`
	ErrorCode          string                     `json:"errorCode"`
	MarketID           string                     `json:"marketId"`
	InstructionReports []ReplaceInstructionReport `json:"instructionReports"`
}

type ReplaceInstructionReport struct {
	Status                  InstructionReportStatus  `json:"status"`
	ErrorCode               string                   `json:"errorCode"`
	CancelInstructionReport *CancelInstructionReport `json:"cancelInstructionReport" validate:"-"`
	PlaceInstructionReport  *PlaceInstructionReport  `json:"placeInstructionReport" validate:"-"`
}

type UpdateExecutionReport struct {
	CustomerRef        string                    `json:"customerRef"`
	Status             ExecutionReportStatus     `json:"status" validate:"required"`
	ErrorCode          string                    `json:"errorCode"`
	MarketID           string                    `json:"marketId"`
	InstructionReports []UpdateInstructionReport `json:"instructionReports"`
}

type UpdateInstructionReport struct {
	Status      InstructionReportStatus `json:"status"`
	ErrorCode   string                  `json:"errorCode"`
	Instruction UpdateInstruction       `json:"instruction" validate:"-"`
}

// IsSuccess reports whether every instruction was executed.
func (r *PlaceExecutionReport) IsSuccess() bool {
	return r.Status == ExecutionSuccess
}

// BetIDs returns the ids of the bets that were placed.
func (r *PlaceExecutionReport) BetIDs() []string {
	ids := make([]string, 0, len(r.InstructionReports))
	for _, ir := range r.InstructionReports {
		if ir.BetID != "" {
			ids = append(ids, ir.BetID)
		}
	}
	return ids
}
