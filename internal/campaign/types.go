// Package campaign holds the canonical in-memory campaign model that the
// export engine encodes.
//
// The model is a plain data carrier. Defaults are applied when rows are
// emitted and constraints are checked by the validate package, so nothing in
// here mutates or rejects data. A Campaign is built fresh for every export
// call (see [Builder]) and has no identity beyond that call.
package campaign

// StatusEnabled is the status written for any entity that does not carry one.
const StatusEnabled = "Enabled"

// MatchType is the keyword matching mode.
type MatchType string

const (
	MatchBroad  MatchType = "Broad"
	MatchPhrase MatchType = "Phrase"
	MatchExact  MatchType = "Exact"
)

// Valid reports whether m is one of the three editor match types.
func (m MatchType) Valid() bool {
	switch m {
	case MatchBroad, MatchPhrase, MatchExact:
		return true
	}
	return false
}

// AdType identifies the ad variant.
type AdType string

const (
	AdRSA      AdType = "RSA"
	AdDKI      AdType = "DKI"
	AdCallOnly AdType = "CallOnly"
)

// EditorLabel returns the value written to the "Ad Type" column.
// Keyword-insertion ads are responsive search ads as far as the editor is concerned.
func (t AdType) EditorLabel() string {
	if t == AdCallOnly {
		return "Call-only ad"
	}
	return "Responsive search ad"
}

// Campaign is the root of the model.
type Campaign struct {
	Name        string  `json:"campaignName" yaml:"campaignName"`
	DailyBudget float64 `json:"dailyBudget,omitempty" yaml:"dailyBudget,omitempty"`
	Type        string  `json:"campaignType,omitempty" yaml:"campaignType,omitempty"`
	BidStrategy string  `json:"bidStrategy,omitempty" yaml:"bidStrategy,omitempty"`
	Networks    string  `json:"networks,omitempty" yaml:"networks,omitempty"`
	StartDate   string  `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Status      string  `json:"status,omitempty" yaml:"status,omitempty"`
	Labels      string  `json:"labels,omitempty" yaml:"labels,omitempty"`
	URL         string  `json:"url,omitempty" yaml:"url,omitempty"`

	AdGroups         []AdGroup  `json:"adGroups" yaml:"adGroups"`
	NegativeKeywords []string   `json:"negativeKeywords,omitempty" yaml:"negativeKeywords,omitempty"`
	Locations        *Locations `json:"locations,omitempty" yaml:"locations,omitempty"`

	Sitelinks          []Sitelink          `json:"sitelinks,omitempty" yaml:"sitelinks,omitempty"`
	Callouts           []Callout           `json:"callouts,omitempty" yaml:"callouts,omitempty"`
	Snippets           []Snippet           `json:"snippets,omitempty" yaml:"snippets,omitempty"`
	CallExtensions     []CallExtension     `json:"callExtensions,omitempty" yaml:"callExtensions,omitempty"`
	PriceExtensions    []PriceExtension    `json:"priceExtensions,omitempty" yaml:"priceExtensions,omitempty"`
	Promotions         []Promotion         `json:"promotions,omitempty" yaml:"promotions,omitempty"`
	AppExtensions      []AppExtension      `json:"appExtensions,omitempty" yaml:"appExtensions,omitempty"`
	MessageExtensions  []MessageExtension  `json:"messageExtensions,omitempty" yaml:"messageExtensions,omitempty"`
	LeadFormExtensions []LeadFormExtension `json:"leadFormExtensions,omitempty" yaml:"leadFormExtensions,omitempty"`
	ImageAssets        []ImageAsset        `json:"imageAssets,omitempty" yaml:"imageAssets,omitempty"`
	VideoAssets        []VideoAsset        `json:"videoAssets,omitempty" yaml:"videoAssets,omitempty"`

	Business *BusinessInfo `json:"businessInfo,omitempty" yaml:"businessInfo,omitempty"`
}

// AdGroup groups keywords and ads. Names are assumed unique within a campaign.
type AdGroup struct {
	Name     string    `json:"name" yaml:"name"`
	MaxCPC   float64   `json:"maxCpc,omitempty" yaml:"maxCpc,omitempty"`
	Status   string    `json:"status,omitempty" yaml:"status,omitempty"`
	Labels   string    `json:"labels,omitempty" yaml:"labels,omitempty"`
	Keywords []Keyword `json:"keywords" yaml:"keywords"`
	Ads      []Ad      `json:"ads" yaml:"ads"`
}

// Keyword is a positive keyword. A zero MaxCPCBid means "use the ad group bid".
type Keyword struct {
	Text      string    `json:"text" yaml:"text"`
	MatchType MatchType `json:"matchType" yaml:"matchType"`
	Status    string    `json:"status,omitempty" yaml:"status,omitempty"`
	MaxCPCBid float64   `json:"maxCpcBid,omitempty" yaml:"maxCpcBid,omitempty"`
	Labels    string    `json:"labels,omitempty" yaml:"labels,omitempty"`
	FinalURL  string    `json:"finalUrl,omitempty" yaml:"finalUrl,omitempty"`
}

// Ad is a responsive, keyword-insertion or call-only ad.
// Phone, verification URL and business name only apply to call-only ads.
type Ad struct {
	Type            AdType   `json:"type" yaml:"type"`
	Headlines       []string `json:"headlines" yaml:"headlines"`
	Descriptions    []string `json:"descriptions" yaml:"descriptions"`
	Path1           string   `json:"path1,omitempty" yaml:"path1,omitempty"`
	Path2           string   `json:"path2,omitempty" yaml:"path2,omitempty"`
	FinalURL        string   `json:"finalUrl" yaml:"finalUrl"`
	MobileURL       string   `json:"mobileUrl,omitempty" yaml:"mobileUrl,omitempty"`
	PhoneNumber     string   `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	VerificationURL string   `json:"verificationUrl,omitempty" yaml:"verificationUrl,omitempty"`
	BusinessName    string   `json:"businessName,omitempty" yaml:"businessName,omitempty"`
	Status          string   `json:"status,omitempty" yaml:"status,omitempty"`
}

// Locations are four independent target lists sharing one country code.
type Locations struct {
	Countries   []string `json:"countries,omitempty" yaml:"countries,omitempty"`
	States      []string `json:"states,omitempty" yaml:"states,omitempty"`
	Cities      []string `json:"cities,omitempty" yaml:"cities,omitempty"`
	ZipCodes    []string `json:"zipCodes,omitempty" yaml:"zipCodes,omitempty"`
	CountryCode string   `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
}

// Count returns the total number of location targets.
func (l *Locations) Count() int {
	if l == nil {
		return 0
	}
	return len(l.Countries) + len(l.States) + len(l.Cities) + len(l.ZipCodes)
}

// LocationKind is the "Location Type" tag of a location row.
type LocationKind string

const (
	LocationCountry LocationKind = "Country"
	LocationRegion  LocationKind = "Region"
	LocationCity    LocationKind = "City"
	LocationPostal  LocationKind = "Postal Code"
)

// BusinessInfo is written once, onto the campaign row.
type BusinessInfo struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Address  string `json:"address,omitempty" yaml:"address,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}
