package export

// rows.go holds one emitter per row category. Emitters are pure: they read
// the campaign, apply defaults and write raw strings into fresh rows through
// the layout. Escaping is the assembler's job.

import (
	"strconv"
	"strings"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/schema"
)

// Defaults applied when the campaign leaves a field blank.
const (
	DefaultDailyBudget = 100.0
	DefaultAdGroupCPC  = 2.0
	DefaultType        = "Search"
	DefaultBidStrategy = "Maximize Conversions"
	DefaultNetworks    = "Google search"
	DefaultCountryCode = "US"

	euPoliticalAds   = "No"
	deviceBidAdjust  = "0%"
	negativeCriteria = "Phrase"
	callOnlyMarker   = "Yes"
)

// SkippedAd describes an ad that produced no row.
type SkippedAd struct {
	AdGroup      string `json:"adGroup"`
	Index        int    `json:"index"`
	Headlines    int    `json:"headlines"`
	Descriptions int    `json:"descriptions"`
}

func (s SkippedAd) String() string {
	return "skipping ad " + strconv.Itoa(s.Index) + " in group \"" + s.AdGroup +
		"\": insufficient headlines (" + strconv.Itoa(s.Headlines) +
		") or descriptions (" + strconv.Itoa(s.Descriptions) + ")"
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orStatus(v string) string {
	return orDefault(v, campaign.StatusEnabled)
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// childRow starts a row that belongs to the campaign.
func childRow(l *schema.Layout, c *campaign.Campaign) schema.Row {
	row := l.NewRow()
	row.Set("Campaign", c.Name)
	row.Set("Campaign Status", campaign.StatusEnabled)
	return row
}

func adGroupCPC(ag campaign.AdGroup) string {
	if ag.MaxCPC == 0 {
		return formatAmount(DefaultAdGroupCPC)
	}
	return formatAmount(ag.MaxCPC)
}

// campaignRow emits the single campaign settings row, which also carries
// every campaign-level extension and the business information.
func campaignRow(l *schema.Layout, c *campaign.Campaign) schema.Row {
	row := l.NewRow()

	budget := c.DailyBudget
	if budget == 0 {
		budget = DefaultDailyBudget
	}

	row.Set("Campaign", c.Name)
	row.Set("Campaign Daily Budget", formatAmount(budget))
	row.Set("Campaign Type", orDefault(c.Type, DefaultType))
	row.Set("Bid Strategy Type", orDefault(c.BidStrategy, DefaultBidStrategy))
	row.Set("Networks", orDefault(c.Networks, DefaultNetworks))
	row.Set("EU political ads", euPoliticalAds)
	row.Set("Desktop Bid adj.", deviceBidAdjust)
	row.Set("Mobile Bid adj.", deviceBidAdjust)
	row.Set("Tablet Bid adj.", deviceBidAdjust)
	row.Set("Start Date", c.StartDate)
	row.Set("End Date", c.EndDate)
	row.Set("Campaign Status", orStatus(c.Status))
	row.Set("Campaign Labels", c.Labels)

	for i, sl := range c.Sitelinks[:min(len(c.Sitelinks), schema.MaxSitelinks)] {
		n := i + 1
		row.Set(schema.SitelinkColumn(n, "Text"), sl.Text)
		row.Set(schema.SitelinkColumn(n, "Description 1"), sl.Description1)
		row.Set(schema.SitelinkColumn(n, "Description 2"), sl.Description2)
		row.Set(schema.SitelinkColumn(n, "Final URL"), sl.FinalURL)
		row.Set(schema.SitelinkColumn(n, "Status"), orStatus(sl.Status))
		row.Set(schema.SitelinkColumn(n, "Start Date"), sl.StartDate)
		row.Set(schema.SitelinkColumn(n, "End Date"), sl.EndDate)
	}

	for i, co := range c.Callouts[:min(len(c.Callouts), schema.MaxCallouts)] {
		n := i + 1
		row.Set(schema.CalloutColumn(n, "Text"), co.Text)
		row.Set(schema.CalloutColumn(n, "Status"), orStatus(co.Status))
		row.Set(schema.CalloutColumn(n, "Start Date"), co.StartDate)
		row.Set(schema.CalloutColumn(n, "End Date"), co.EndDate)
	}

	// The first snippet uses the unnumbered block, the second "Structured Snippet 1".
	if len(c.Snippets) > 0 {
		row.Set("Structured Snippet Header", c.Snippets[0].Header)
		row.Set("Structured Snippet Values", c.Snippets[0].Values)
	}
	if len(c.Snippets) > 1 {
		row.Set("Structured Snippet 1 Header", c.Snippets[1].Header)
		row.Set("Structured Snippet 1 Values", c.Snippets[1].Values)
	}

	if len(c.CallExtensions) > 0 {
		ce := c.CallExtensions[0]
		row.Set("PhoneNumber", ce.PhoneNumber)
		row.Set("VerificationURL", ce.VerificationURL)
		row.Set("Call Extension Status", orStatus(ce.Status))
		row.Set("Call Extension Scheduling", ce.Scheduling)
	}

	if len(c.PriceExtensions) > 0 {
		setPriceExtension(row, c.PriceExtensions[0])
	}

	if len(c.Promotions) > 0 {
		p := c.Promotions[0]
		row.Set("Promotion Target", p.Target)
		row.Set("Promotion Discount Modifier", p.DiscountModifier)
		row.Set("Promotion Percent Off", p.PercentOff)
		row.Set("Promotion Money Amount Off", p.MoneyAmountOff)
		row.Set("Promotion Final URL", p.FinalURL)
		row.Set("Promotion Status", orStatus(p.Status))
		row.Set("Promotion Start Date", p.StartDate)
		row.Set("Promotion End Date", p.EndDate)
	}

	if len(c.AppExtensions) > 0 {
		app := c.AppExtensions[0]
		row.Set("App ID", app.AppID)
		row.Set("App Store", app.AppStore)
		row.Set("App Link Text", app.LinkText)
		row.Set("App Final URL", app.FinalURL)
		row.Set("App Status", orStatus(app.Status))
	}

	if len(c.MessageExtensions) > 0 {
		msg := c.MessageExtensions[0]
		row.Set("Message Text", msg.Text)
		row.Set("Message Final URL", msg.FinalURL)
		row.Set("Message Business Name", msg.BusinessName)
		row.Set("Message Country Code", msg.CountryCode)
		row.Set("Message Phone Number", msg.PhoneNumber)
		row.Set("Message Status", orStatus(msg.Status))
	}

	if len(c.LeadFormExtensions) > 0 {
		lf := c.LeadFormExtensions[0]
		row.Set("Lead Form ID", lf.ID)
		row.Set("Lead Form Name", lf.Name)
		row.Set("Lead Form Headline", lf.Headline)
		row.Set("Lead Form Description", lf.Description)
		row.Set("Lead Form Call-to-action", lf.CallToAction)
		row.Set("Lead Form Status", orStatus(lf.Status))
	}

	if b := c.Business; b != nil {
		row.Set("Business Name", b.Name)
		row.Set("Business Address", b.Address)
		row.Set("Business Phone", b.Phone)
		row.Set("Business Website", b.Website)
		row.Set("Business Profile Location", b.Location)
	}

	return row
}

// setPriceExtension writes the first item twice: once into the unnumbered
// item block and once as item 1 of the numbered block.
func setPriceExtension(row schema.Row, pe campaign.PriceExtension) {
	row.Set("Price Extension Type", pe.Type)
	row.Set("Price Extension Price Qualifier", pe.PriceQualifier)

	if len(pe.Items) == 0 {
		return
	}

	first := pe.Items[0]
	row.Set("Price Extension Item Header", first.Header)
	row.Set("Price Extension Item Price", first.Price)
	row.Set("Price Extension Item Final URL", first.FinalURL)

	for i, item := range pe.Items[:min(len(pe.Items), schema.MaxPriceItems)] {
		n := i + 1
		row.Set(schema.PriceItemColumn(n, "Header"), item.Header)
		row.Set(schema.PriceItemColumn(n, "Price"), item.Price)
		row.Set(schema.PriceItemColumn(n, "Final URL"), item.FinalURL)
	}
}

func adGroupRows(l *schema.Layout, c *campaign.Campaign) []schema.Row {
	rows := make([]schema.Row, 0, len(c.AdGroups))
	for _, ag := range c.AdGroups {
		row := childRow(l, c)
		row.Set("Ad Group", ag.Name)
		row.Set("Max CPC", adGroupCPC(ag))
		row.Set("Ad Group Status", orStatus(ag.Status))
		row.Set("Ad Group Labels", ag.Labels)
		rows = append(rows, row)
	}
	return rows
}

func keywordRows(l *schema.Layout, c *campaign.Campaign) []schema.Row {
	var rows []schema.Row
	for _, ag := range c.AdGroups {
		for _, kw := range ag.Keywords {
			row := childRow(l, c)
			row.Set("Ad Group", ag.Name)
			row.Set("Max CPC", adGroupCPC(ag))
			row.Set("Ad Group Status", campaign.StatusEnabled)
			row.Set("Keyword", kw.Text)
			row.Set("Criterion Type", string(kw.MatchType))
			row.Set("Keyword Status", orStatus(kw.Status))
			if kw.MaxCPCBid != 0 {
				row.Set("Max CPC Bid", formatAmount(kw.MaxCPCBid))
			}
			row.Set("Keyword Labels", kw.Labels)
			row.Set("Final URL", orDefault(kw.FinalURL, c.URL))
			rows = append(rows, row)
		}
	}
	return rows
}

// nonBlank returns the entries that contain something other than whitespace.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// padTo repeats the first entry (or fallback when empty) until values has n entries.
func padTo(values []string, n int, fallback string) []string {
	for len(values) < n {
		if len(values) > 0 {
			values = append(values, values[0])
		} else {
			values = append(values, fallback)
		}
	}
	return values
}

// adRows emits one row per ad that has at least one headline and one
// description. Ads that fail the gate are returned as skipped.
func adRows(l *schema.Layout, c *campaign.Campaign) ([]schema.Row, []SkippedAd) {
	var (
		rows    []schema.Row
		skipped []SkippedAd
	)

	for _, ag := range c.AdGroups {
		for i, ad := range ag.Ads {
			headlines := nonBlank(ad.Headlines)
			descriptions := nonBlank(ad.Descriptions)
			if len(headlines) == 0 || len(descriptions) == 0 {
				skipped = append(skipped, SkippedAd{
					AdGroup:      ag.Name,
					Index:        i,
					Headlines:    len(headlines),
					Descriptions: len(descriptions),
				})
				continue
			}

			headlines = padTo(headlines, schema.MinHeadlines, schema.FallbackHeadline)
			descriptions = padTo(descriptions, schema.MinDescriptions, schema.FallbackDescription)

			row := childRow(l, c)
			row.Set("Ad Group", ag.Name)
			row.Set("Ad Group Status", campaign.StatusEnabled)
			row.Set("Ad Type", ad.Type.EditorLabel())
			row.Set("Final URL", ad.FinalURL)
			row.Set("Mobile Final URL", ad.MobileURL)

			for j, h := range headlines[:min(len(headlines), schema.MaxHeadlines)] {
				row.Set(schema.HeadlineColumn(j+1), truncate(h, schema.HeadlineMaxLen))
			}
			for j, d := range descriptions[:min(len(descriptions), schema.MaxDescriptions)] {
				row.Set(schema.DescriptionColumn(j+1), truncate(d, schema.DescriptionMaxLen))
			}

			row.Set("Path 1", truncate(ad.Path1, schema.PathMaxLen))
			row.Set("Path 2", truncate(ad.Path2, schema.PathMaxLen))

			if ad.Type == campaign.AdCallOnly {
				row.Set("PhoneNumber", ad.PhoneNumber)
				row.Set("VerificationURL", ad.VerificationURL)
				row.Set("Business Name", ad.BusinessName)
				row.Set("Call Only Ads", callOnlyMarker)
			}

			rows = append(rows, row)
		}
	}

	return rows, skipped
}

func negativeKeywordRows(l *schema.Layout, c *campaign.Campaign) []schema.Row {
	rows := make([]schema.Row, 0, len(c.NegativeKeywords))
	for _, neg := range c.NegativeKeywords {
		row := childRow(l, c)
		row.Set("Keyword (Negative)", neg)
		row.Set("Criterion Type (Negative)", negativeCriteria)
		row.Set("Negative Keyword Status", campaign.StatusEnabled)
		rows = append(rows, row)
	}
	return rows
}

// locationRows emits countries, then regions, cities and postal codes.
// The three sub-country kinds also repeat the name in their own column.
func locationRows(l *schema.Layout, c *campaign.Campaign) []schema.Row {
	loc := c.Locations
	if loc == nil {
		return nil
	}

	code := orDefault(loc.CountryCode, DefaultCountryCode)
	rows := make([]schema.Row, 0, loc.Count())

	emit := func(names []string, kind campaign.LocationKind, column string) {
		for _, name := range names {
			row := childRow(l, c)
			row.Set("Location", name)
			row.Set("Location Type", string(kind))
			row.Set("Location Status", campaign.StatusEnabled)
			if column != "" {
				row.Set(column, name)
			}
			row.Set("Country Code", code)
			rows = append(rows, row)
		}
	}

	emit(loc.Countries, campaign.LocationCountry, "")
	emit(loc.States, campaign.LocationRegion, "State/Region")
	emit(loc.Cities, campaign.LocationCity, "City")
	emit(loc.ZipCodes, campaign.LocationPostal, "Postal Code")

	return rows
}

func imageAssetRows(l *schema.Layout, c *campaign.Campaign) []schema.Row {
	rows := make([]schema.Row, 0, len(c.ImageAssets))
	for _, img := range c.ImageAssets {
		row := childRow(l, c)
		row.Set("Image Asset Name", img.Name)
		row.Set("Image Asset URL", img.URL)
		row.Set("Image Asset Status", orStatus(img.Status))
		rows = append(rows, row)
	}
	return rows
}

func videoAssetRows(l *schema.Layout, c *campaign.Campaign) []schema.Row {
	rows := make([]schema.Row, 0, len(c.VideoAssets))
	for _, v := range c.VideoAssets {
		row := childRow(l, c)
		row.Set("Video Asset ID", v.ID)
		row.Set("Video Asset Name", v.Name)
		row.Set("Video Asset URL", v.URL)
		row.Set("Video Asset Status", orStatus(v.Status))
		rows = append(rows, row)
	}
	return rows
}
