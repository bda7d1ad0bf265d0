package export

import (
	"fmt"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/schema"
)

// RowCounts is the number of data rows written per category.
type RowCounts struct {
	Campaign         int `json:"campaign"`
	AdGroups         int `json:"adGroups"`
	Keywords         int `json:"keywords"`
	Ads              int `json:"ads"`
	NegativeKeywords int `json:"negativeKeywords"`
	Locations        int `json:"locations"`
	ImageAssets      int `json:"imageAssets"`
	VideoAssets      int `json:"videoAssets"`
}

// Total returns the number of data rows, excluding the header.
func (r RowCounts) Total() int {
	return r.Campaign + r.AdGroups + r.Keywords + r.Ads + r.NegativeKeywords +
		r.Locations + r.ImageAssets + r.VideoAssets
}

// Dropped records an extension collection that held more entries than the
// layout has column blocks for.
type Dropped struct {
	Kind     string `json:"kind"`
	Supplied int    `json:"supplied"`
	Written  int    `json:"written"`
}

// Report is the diagnostic side channel of an encode call.
type Report struct {
	Counts     RowCounts   `json:"counts"`
	SkippedAds []SkippedAd `json:"skippedAds,omitempty"`
	Dropped    []Dropped   `json:"dropped,omitempty"`
}

// Diagnostics returns one line per skipped ad and dropped collection.
func (r Report) Diagnostics() []string {
	out := make([]string, 0, len(r.SkippedAds)+len(r.Dropped))
	for _, s := range r.SkippedAds {
		out = append(out, s.String())
	}
	for _, d := range r.Dropped {
		out = append(out, fmt.Sprintf("%s: %d supplied, %d written", d.Kind, d.Supplied, d.Written))
	}
	return out
}

func droppedExtensions(c *campaign.Campaign) []Dropped {
	var out []Dropped

	check := func(kind string, supplied, ceiling int) {
		if supplied > ceiling {
			out = append(out, Dropped{Kind: kind, Supplied: supplied, Written: ceiling})
		}
	}

	check(string(campaign.KindSitelink), len(c.Sitelinks), schema.MaxSitelinks)
	check(string(campaign.KindCallout), len(c.Callouts), schema.MaxCallouts)
	check(string(campaign.KindSnippet), len(c.Snippets), schema.MaxSnippets)
	check(string(campaign.KindCall), len(c.CallExtensions), schema.MaxSingleBlock)
	check(string(campaign.KindPrice), len(c.PriceExtensions), schema.MaxSingleBlock)
	check(string(campaign.KindPromo), len(c.Promotions), schema.MaxSingleBlock)
	check(string(campaign.KindApp), len(c.AppExtensions), schema.MaxSingleBlock)
	check(string(campaign.KindMessage), len(c.MessageExtensions), schema.MaxSingleBlock)
	check(string(campaign.KindLeadForm), len(c.LeadFormExtensions), schema.MaxSingleBlock)
	if len(c.PriceExtensions) > 0 {
		check("price item", len(c.PriceExtensions[0].Items), schema.MaxPriceItems)
	}

	return out
}
