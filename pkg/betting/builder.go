package betting

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"betfair/pkg/core"
)

const (
	MinPrice = 1.01
	MaxPrice = 1000.0
)

// tickBand is one band of the Betfair price ladder: prices up to Max move in steps of Step.
type tickBand struct {
	Max  float64
	Step float64
}

var ladder = []tickBand{
	{2, 0.01},
	{3, 0.02},
	{4, 0.05},
	{6, 0.1},
	{10, 0.2},
	{20, 0.5},
	{30, 1},
	{50, 2},
	{100, 5},
	{1000, 10},
}

// ValidPrice reports whether price is a tick on the Betfair price ladder.
func ValidPrice(price float64) bool {
	if price < MinPrice-1e-9 || price > MaxPrice+1e-9 {
		return false
	}
	lower := 1.0
	for _, band := range ladder {
		if price <= band.Max+1e-9 {
			ticks := (price - lower) / band.Step
			return math.Abs(ticks-math.Round(ticks)) < 1e-6
		}
		lower = band.Max
	}
	return false
}

// NewCustomerRef returns a random reference of 32 hex characters, the longest
// Betfair accepts.
func NewCustomerRef() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// PlaceInstructionBuilder provides a fluent interface for constructing place
// instructions. It accumulates validation errors and reports them on Build.
//
// Example:
//
//	inst, err := betting.NewPlaceInstructionBuilder(47972).
//	    Back().
//	    Limit(2.5, 10, core.PersistenceLapse).
//	    Build()
type PlaceInstructionBuilder struct {
	inst *PlaceInstruction
	err  error
}

func NewPlaceInstructionBuilder(selectionID int64) *PlaceInstructionBuilder {
	return &PlaceInstructionBuilder{
		inst: &PlaceInstruction{SelectionID: selectionID},
	}
}

func (b *PlaceInstructionBuilder) Side(side core.Side) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	if !side.Valid() {
		b.err = fmt.Errorf("invalid side %q", side)
		return b
	}
	b.inst.Side = side
	return b
}

func (b *PlaceInstructionBuilder) Back() *PlaceInstructionBuilder {
	return b.Side(core.SideBack)
}

func (b *PlaceInstructionBuilder) Lay() *PlaceInstructionBuilder {
	return b.Side(core.SideLay)
}

func (b *PlaceInstructionBuilder) Handicap(handicap float64) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	b.inst.Handicap = handicap
	return b
}

// Limit makes the instruction a LIMIT order of size at price.
func (b *PlaceInstructionBuilder) Limit(price, size float64, persistence core.PersistenceType) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	if !ValidPrice(price) {
		b.err = fmt.Errorf("price %v is not on the price ladder", price)
		return b
	}
	if size <= 0 {
		b.err = errors.New("size must be positive")
		return b
	}
	if !persistence.Valid() {
		b.err = fmt.Errorf("invalid persistence type %q", persistence)
		return b
	}
	b.inst.OrderType = core.OrderTypeLimit
	b.inst.LimitOrder = &LimitOrder{Size: size, Price: price, PersistenceType: persistence}
	b.inst.LimitOnCloseOrder = nil
	b.inst.MarketOnCloseOrder = nil
	return b
}

// FillOrKill requires a limit order to match immediately, at least minFillSize of it.
// A zero minFillSize means the full size.
func (b *PlaceInstructionBuilder) FillOrKill(minFillSize float64) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	if b.inst.LimitOrder == nil {
		b.err = errors.New("fill or kill requires a limit order")
		return b
	}
	b.inst.LimitOrder.TimeInForce = core.FillOrKill
	b.inst.LimitOrder.MinFillSize = minFillSize
	return b
}

// LimitOnClose makes the instruction a Starting Price bet with a price limit.
func (b *PlaceInstructionBuilder) LimitOnClose(price, liability float64) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	if !ValidPrice(price) {
		b.err = fmt.Errorf("price %v is not on the price ladder", price)
		return b
	}
	if liability <= 0 {
		b.err = errors.New("liability must be positive")
		return b
	}
	b.inst.OrderType = core.OrderTypeLimitOnClose
	b.inst.LimitOnCloseOrder = &LimitOnCloseOrder{Liability: liability, Price: price}
	b.inst.LimitOrder = nil
	b.inst.MarketOnCloseOrder = nil
	return b
}

// MarketOnClose makes the instruction an unlimited Starting Price bet.
func (b *PlaceInstructionBuilder) MarketOnClose(liability float64) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	if liability <= 0 {
		b.err = errors.New("liability must be positive")
		return b
	}
	b.inst.OrderType = core.OrderTypeMarketOnClose
	b.inst.MarketOnCloseOrder = &MarketOnCloseOrder{Liability: liability}
	b.inst.LimitOrder = nil
	b.inst.LimitOnCloseOrder = nil
	return b
}

func (b *PlaceInstructionBuilder) CustomerOrderRef(ref string) *PlaceInstructionBuilder {
	if b.err != nil {
		return b
	}
	if len(ref) > 32 {
		b.err = errors.New("customer order ref longer than 32 characters")
		return b
	}
	b.inst.CustomerOrderRef = ref
	return b
}

// Build validates and returns the constructed instruction. A customer order ref
// is generated when none was set.
func (b *PlaceInstructionBuilder) Build() (PlaceInstruction, error) {
	if b.err != nil {
		return PlaceInstruction{}, b.err
	}
	if err := validateInstruction(b.inst); err != nil {
		return PlaceInstruction{}, err
	}
	inst := *b.inst
	if inst.CustomerOrderRef == "" {
		inst.CustomerOrderRef = NewCustomerRef()
	}
	return inst, nil
}

func validateInstruction(inst *PlaceInstruction) error {
	if inst.SelectionID <= 0 {
		return errors.New("selection id must be positive")
	}
	if !inst.Side.Valid() {
		return errors.New("side is required")
	}
	switch inst.OrderType {
	case core.OrderTypeLimit:
		if inst.LimitOrder == nil {
			return errors.New("limit order details are required")
		}
	case core.OrderTypeLimitOnClose:
		if inst.LimitOnCloseOrder == nil {
			return errors.New("limit on close order details are required")
		}
	case core.OrderTypeMarketOnClose:
		if inst.MarketOnCloseOrder == nil {
			return errors.New("market on close order details are required")
		}
	default:
		return errors.New("order type is required")
	}
	return nil
}
