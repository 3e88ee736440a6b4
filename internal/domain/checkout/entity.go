package checkout

// Basket is the shopper's in-progress cart. It is owned by the backend
// commerce system; this service only holds a per-request snapshot that the
// BasketService refreshes after every write.
type Basket struct {
	ID                 string
	CurrencyCode       string
	OrderTotal         float64 // major units, includes tax when known
	ProductTotal       float64 // major units, pre-tax fallback
	CustomerID         string
	PaymentInstruments []PaymentInstrument
	Custom             map[string]string
}

// PaymentInstrument is a pending payment reservation on the basket.
type PaymentInstrument struct {
	ID              string
	Amount          float64 // major units
	PaymentMethodID string
}

// ExpectedTotal is the amount of record for the basket: the order total once
// taxation is applied, the product total before that.
func (b Basket) ExpectedTotal() float64 {
	if b.OrderTotal > 0 {
		return b.OrderTotal
	}
	return b.ProductTotal
}

// ExpectedTotalMinor is ExpectedTotal converted to minor units.
func (b Basket) ExpectedTotalMinor() int64 {
	return MinorUnits(b.ExpectedTotal(), b.CurrencyCode)
}

// InstrumentsTotalMinor sums the existing payment reservations in minor units.
func (b Basket) InstrumentsTotalMinor() int64 {
	var total int64
	for _, pi := range b.PaymentInstruments {
		total += MinorUnits(pi.Amount, b.CurrencyCode)
	}
	return total
}

// CustomAttribute returns the named processor custom attribute, "" if unset.
func (b Basket) CustomAttribute(name string) string {
	return b.Custom[name]
}

type Customer struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

type Address struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone,omitempty"`
}

// ShopperProfile is the customer identity an express wallet reports back.
type ShopperProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Order is the backend commerce system's durable order record.
type Order struct {
	OrderNo       string
	BasketID      string
	Total         float64
	CurrencyCode  string
	Status        string
	PaymentStatus string
}

// Site holds the per-site processor credentials the core needs.
type Site struct {
	ID              string
	MerchantAccount string
	APIKey          string
	// HMACKey is hex-encoded; empty disables webhook signature verification
	// for the site.
	HMACKey         string
	WebhookUser     string
	WebhookPassword string
	Environment     string
}

// SiteResolver resolves per-site configuration by site identifier.
type SiteResolver interface {
	Site(siteID string) (Site, error)
}
