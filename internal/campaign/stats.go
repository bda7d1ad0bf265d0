package campaign

// Stats summarizes what an export of a campaign contains.
type Stats struct {
	AdGroups           int `json:"adGroups"`
	Keywords           int `json:"keywords"`
	Ads                int `json:"ads"`
	NegativeKeywords   int `json:"negativeKeywords"`
	Locations          int `json:"locations"`
	Sitelinks          int `json:"sitelinks"`
	Callouts           int `json:"callouts"`
	Snippets           int `json:"snippets"`
	CallExtensions     int `json:"callExtensions"`
	PriceExtensions    int `json:"priceExtensions"`
	AppExtensions      int `json:"appExtensions"`
	MessageExtensions  int `json:"messageExtensions"`
	LeadFormExtensions int `json:"leadFormExtensions"`
	Promotions         int `json:"promotions"`
	ImageAssets        int `json:"imageAssets"`
	VideoAssets        int `json:"videoAssets"`
}

// ComputeStats counts the entities in a campaign.
// Ads are counted as supplied, before any are skipped at emission time.
func ComputeStats(c *Campaign) Stats {
	s := Stats{
		AdGroups:           len(c.AdGroups),
		NegativeKeywords:   len(c.NegativeKeywords),
		Locations:          c.Locations.Count(),
		Sitelinks:          len(c.Sitelinks),
		Callouts:           len(c.Callouts),
		Snippets:           len(c.Snippets),
		CallExtensions:     len(c.CallExtensions),
		PriceExtensions:    len(c.PriceExtensions),
		AppExtensions:      len(c.AppExtensions),
		MessageExtensions:  len(c.MessageExtensions),
		LeadFormExtensions: len(c.LeadFormExtensions),
		Promotions:         len(c.Promotions),
		ImageAssets:        len(c.ImageAssets),
		VideoAssets:        len(c.VideoAssets),
	}
	for _, ag := range c.AdGroups {
		s.Keywords += len(ag.Keywords)
		s.Ads += len(ag.Ads)
	}
	return s
}
