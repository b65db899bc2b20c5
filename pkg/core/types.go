package core

// Side is the direction of a bet.
type Side string

const (
	SideBack Side = "BACK"
	SideLay  Side = "LAY"
)

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s == SideBack || s == SideLay
}

// Opposite returns the side that would hedge a bet on s.
func (s Side) Opposite() Side {
	if s == SideBack {
		return SideLay
	}
	return SideBack
}

// OrderType describes how an order is matched.
type OrderType string

const (
	// OrderTypeLimit is a normal exchange limit order for immediate execution.
	OrderTypeLimit OrderType = "LIMIT"
	// OrderTypeLimitOnClose is a limit order on the Betfair Starting Price.
	OrderTypeLimitOnClose OrderType = "LIMIT_ON_CLOSE"
	// OrderTypeMarketOnClose is a market order on the Betfair Starting Price.
	OrderTypeMarketOnClose OrderType = "MARKET_ON_CLOSE"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeLimit, OrderTypeLimitOnClose, OrderTypeMarketOnClose:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is only seen for asynchronous placements.
	OrderStatusPending           OrderStatus = "PENDING"
	OrderStatusExecutionComplete OrderStatus = "EXECUTION_COMPLETE"
	OrderStatusExecutable        OrderStatus = "EXECUTABLE"
	OrderStatusExpired           OrderStatus = "EXPIRED"
)

// IsTerminal returns true if the order can no longer be matched.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusExecutionComplete || s == OrderStatusExpired
}

// PersistenceType decides what happens to unmatched bets when the market turns in-play.
type PersistenceType string

const (
	PersistenceLapse         PersistenceType = "LAPSE"
	PersistencePersist       PersistenceType = "PERSIST"
	PersistenceMarketOnClose PersistenceType = "MARKET_ON_CLOSE"
)

func (p PersistenceType) Valid() bool {
	switch p {
	case PersistenceLapse, PersistencePersist, PersistenceMarketOnClose:
		return true
	}
	return false
}

// TimeInForce limits how long a limit order stays on the book.
type TimeInForce string

// FillOrKill requires the order to match immediately, fully or down to MinFillSize.
const FillOrKill TimeInForce = "FILL_OR_KILL"

// BetTargetType selects what a limit order's size targets instead of stake.
type BetTargetType string

const (
	BetTargetBackersProfit BetTargetType = "BACKERS_PROFIT"
	BetTargetPayout        BetTargetType = "PAYOUT"
)
