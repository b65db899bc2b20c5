package accounts

// Wallet selects which Betfair wallet getAccountFunds reports on.
type Wallet string

const (
	WalletUK         Wallet = "UK"
	WalletAustralian Wallet = "AUSTRALIAN"
)

// AccountFunds is the balance summary of a wallet.
type AccountFunds struct {
	AvailableToBetBalance float64 `json:"availableToBetBalance"`
	Exposure              float64 `json:"exposure"`
	RetainedCommission    float64 `json:"retainedCommission"`
	ExposureLimit         float64 `json:"exposureLimit"`
	DiscountRate          float64 `json:"discountRate"`
	PointsBalance         int     `json:"pointsBalance"`
	Wallet                Wallet  `json:"wallet,omitempty"`
}

// DeveloperApp is an application registered to the account.
type DeveloperApp struct {
	AppName     string                `json:"appName"`
	AppID       int64                 `json:"appId"`
	AppVersions []DeveloperAppVersion `json:"appVersions" validate:"dive"`
}

// DeveloperAppVersion is one version of a developer application, each with its own key.
type DeveloperAppVersion struct {
	Owner                string `json:"owner"`
	VersionID            int64  `json:"versionId"`
	Version              string `json:"version"`
	ApplicationKey       string `json:"applicationKey" validate:"required"`
	DelayData            bool   `json:"delayData"`
	SubscriptionRequired bool   `json:"subscriptionRequired"`
	OwnerManaged         bool   `json:"ownerManaged"`
	Active               bool   `json:"active"`
}

// AccountDetails describes the account holder's settings.
type AccountDetails struct {
	CurrencyCode  string  `json:"currencyCode"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	LocaleCode    string  `json:"localeCode"`
	Region        string  `json:"region"`
	Timezone      string  `json:"timezone"`
	DiscountRate  float64 `json:"discountRate"`
	PointsBalance int     `json:"pointsBalance"`
	CountryCode   string  `json:"countryCode"`
}
