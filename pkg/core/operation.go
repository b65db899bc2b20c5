package core

// Operation identifies a Betfair call. String returns the wire name used as the
// final URL path segment.
type Operation int

const (
	// Identity service.
	OpLogin Operation = iota
	OpKeepAlive
	OpLogout

	// Accounts API.
	OpGetAccountFunds
	OpGetDeveloperAppKeys
	OpGetAccountDetails

	// Betting API.
	OpListEventTypes
	OpListCompetitions
	OpListTimeRanges
	OpListEvents
	OpListMarketTypes
	OpListCountries
	OpListVenues
	OpListMarketCatalogue
	OpListMarketBook
	OpListRunnerBook
	OpListMarketProfitAndLoss
	OpListCurrentOrders
	OpListClearedOrders
	OpPlaceOrders
	OpCancelOrders
	OpReplaceOrders
	OpUpdateOrders
)

var operationNames = [...]string{
	"login",
	"keepAlive",
	"logout",
	"getAccountFunds",
	"getDeveloperAppKeys",
	"getAccountDetails",
	"listEventTypes",
	"listCompetitions",
	"listTimeRanges",
	"listEvents",
	"listMarketTypes",
	"listCountries",
	"listVenues",
	"listMarketCatalogue",
	"listMarketBook",
	"listRunnerBook",
	"listMarketProfitAndLoss",
	"listCurrentOrders",
	"listClearedOrders",
	"placeOrders",
	"cancelOrders",
	"replaceOrders",
	"updateOrders",
}

// String returns the Betfair wire name of the operation.
func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[o]
}

// IsTransactional reports whether the operation changes orders on the exchange.
func (o Operation) IsTransactional() bool {
	switch o {
	case OpPlaceOrders, OpCancelOrders, OpReplaceOrders, OpUpdateOrders:
		return true
	}
	return false
}
