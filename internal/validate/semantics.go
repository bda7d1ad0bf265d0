package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/schema"
)

// Field length ceilings of the editor, in characters.
const (
	SitelinkTextMaxLen     = 25
	SitelinkDescMaxLen     = 35
	CalloutTextMaxLen      = 25
	AppLinkTextMaxLen      = 25
	MessageTextMaxLen      = 35
	LeadFormHeadlineMaxLen = 30
	LeadFormDescMaxLen     = 90

	// MaxPriceItems is the platform limit; the layout only holds schema.MaxPriceItems.
	MaxPriceItems = 8
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func field(collection string, i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", collection, i, name)
}

// Semantics checks every extension record of the campaign. Errors are
// field-level defects; warnings flag records the export will not write.
func Semantics(c *campaign.Campaign) Result {
	var r Result

	checkCampaign(&r, c)
	checkSitelinks(&r, c.Sitelinks)
	checkCallouts(&r, c.Callouts)
	checkSnippets(&r, c.Snippets)
	checkCalls(&r, c.CallExtensions)
	checkApps(&r, c.AppExtensions)
	checkMessages(&r, c.MessageExtensions)
	checkLeadForms(&r, c.LeadFormExtensions)
	checkPrices(&r, c.PriceExtensions)
	checkPromotions(&r, c.Promotions)
	checkImages(&r, c.ImageAssets)
	checkVideos(&r, c.VideoAssets)
	checkAds(&r, c.AdGroups)

	return r.finish()
}

func checkCampaign(r *Result, c *campaign.Campaign) {
	if strings.TrimSpace(c.Name) == "" {
		r.errorf("campaignName", "Campaign name is required")
	}
	for g, ag := range c.AdGroups {
		for k, kw := range ag.Keywords {
			if !kw.MatchType.Valid() {
				r.errorf(fmt.Sprintf("adGroups[%d].keywords[%d].matchType", g, k),
					fmt.Sprintf("Keyword %d in ad group %q: Match type must be Broad, Phrase or Exact", k+1, ag.Name))
			}
		}
	}
}

func checkSitelinks(r *Result, items []campaign.Sitelink) {
	if len(items) > schema.MaxSitelinks {
		r.warnf("sitelinks", fmt.Sprintf("Too many sitelinks (%d). Only first %d will be exported.", len(items), schema.MaxSitelinks))
	}
	for i, sl := range items {
		n := i + 1
		if sl.Text == "" || length(sl.Text) > SitelinkTextMaxLen {
			r.errorf(field("sitelinks", i, "text"), fmt.Sprintf("Sitelink %d: Text must be 1-%d characters", n, SitelinkTextMaxLen))
		}
		if length(sl.Description1) > SitelinkDescMaxLen {
			r.errorf(field("sitelinks", i, "description1"), fmt.Sprintf("Sitelink %d: Description 1 must be ≤%d characters", n, SitelinkDescMaxLen))
		}
		if length(sl.Description2) > SitelinkDescMaxLen {
			r.errorf(field("sitelinks", i, "description2"), fmt.Sprintf("Sitelink %d: Description 2 must be ≤%d characters", n, SitelinkDescMaxLen))
		}
		if sl.FinalURL == "" {
			r.errorf(field("sitelinks", i, "finalUrl"), fmt.Sprintf("Sitelink %d: Final URL is required", n))
		}
	}
}

func checkCallouts(r *Result, items []campaign.Callout) {
	if len(items) > schema.MaxCallouts {
		r.warnf("callouts", fmt.Sprintf("Too many callouts (%d). Only first %d will be exported.", len(items), schema.MaxCallouts))
	}
	for i, co := range items {
		if co.Text == "" || length(co.Text) > CalloutTextMaxLen {
			r.errorf(field("callouts", i, "text"), fmt.Sprintf("Callout %d: Text must be 1-%d characters", i+1, CalloutTextMaxLen))
		}
	}
}

func checkSnippets(r *Result, items []campaign.Snippet) {
	if len(items) > schema.MaxSnippets {
		r.warnf("snippets", fmt.Sprintf("Too many structured snippets (%d). Only first %d will be exported.", len(items), schema.MaxSnippets))
	}
	for i, sn := range items {
		if sn.Header == "" {
			r.errorf(field("snippets", i, "header"), fmt.Sprintf("Structured Snippet %d: Header is required", i+1))
		}
		if sn.Values == "" {
			r.errorf(field("snippets", i, "values"), fmt.Sprintf("Structured Snippet %d: Values are required", i+1))
		}
	}
}

// singleBlock warns when a kind with one column block holds more than one record.
func singleBlock(r *Result, collection, label string, n int) {
	if n > schema.MaxSingleBlock {
		r.warnf(collection, fmt.Sprintf("Too many %s (%d). Only the first will be exported.", label, n))
	}
}

func checkCalls(r *Result, items []campaign.CallExtension) {
	singleBlock(r, "callExtensions", "call extensions", len(items))
	for i, ce := range items {
		n := i + 1
		if ce.PhoneNumber == "" {
			r.errorf(field("callExtensions", i, "phoneNumber"), fmt.Sprintf("Call Extension %d: Phone number is required", n))
			continue
		}
		if !phonePattern.MatchString(ce.PhoneNumber) {
			r.errorf(field("callExtensions", i, "phoneNumber"), fmt.Sprintf("Call Extension %d: Invalid phone number format", n))
		}
	}
}

func checkApps(r *Result, items []campaign.AppExtension) {
	singleBlock(r, "appExtensions", "app extensions", len(items))
	for i, app := range items {
		n := i + 1
		if app.AppID == "" {
			r.errorf(field("appExtensions", i, "appId"), fmt.Sprintf("App Extension %d: App ID is required", n))
		}
		if app.LinkText == "" || length(app.LinkText) > AppLinkTextMaxLen {
			r.errorf(field("appExtensions", i, "linkText"), fmt.Sprintf("App Extension %d: Link text must be 1-%d characters", n, AppLinkTextMaxLen))
		}
		if app.FinalURL == "" {
			r.errorf(field("appExtensions", i, "finalUrl"), fmt.Sprintf("App Extension %d: Final URL is required", n))
		}
	}
}

func checkMessages(r *Result, items []campaign.MessageExtension) {
	singleBlock(r, "messageExtensions", "message extensions", len(items))
	for i, msg := range items {
		n := i + 1
		if msg.Text == "" || length(msg.Text) > MessageTextMaxLen {
			r.errorf(field("messageExtensions", i, "text"), fmt.Sprintf("Message Extension %d: Text must be 1-%d characters", n, MessageTextMaxLen))
		}
		if msg.BusinessName == "" {
			r.errorf(field("messageExtensions", i, "businessName"), fmt.Sprintf("Message Extension %d: Business name is required", n))
		}
		if msg.PhoneNumber == "" {
			r.errorf(field("messageExtensions", i, "phoneNumber"), fmt.Sprintf("Message Extension %d: Phone number is required", n))
		}
	}
}

func checkLeadForms(r *Result, items []campaign.LeadFormExtension) {
	singleBlock(r, "leadFormExtensions", "lead form extensions", len(items))
	for i, lf := range items {
		n := i + 1
		if lf.Name == "" {
			r.errorf(field("leadFormExtensions", i, "name"), fmt.Sprintf("Lead Form Extension %d: Name is required", n))
		}
		if lf.Headline == "" || length(lf.Headline) > LeadFormHeadlineMaxLen {
			r.errorf(field("leadFormExtensions", i, "headline"), fmt.Sprintf("Lead Form Extension %d: Headline must be 1-%d characters", n, LeadFormHeadlineMaxLen))
		}
		if lf.Description == "" || length(lf.Description) > LeadFormDescMaxLen {
			r.errorf(field("leadFormExtensions", i, "description"), fmt.Sprintf("Lead Form Extension %d: Description must be 1-%d characters", n, LeadFormDescMaxLen))
		}
	}
}

func checkPrices(r *Result, items []campaign.PriceExtension) {
	singleBlock(r, "priceExtensions", "price extensions", len(items))
	for i, pe := range items {
		n := i + 1
		if pe.Type == "" {
			r.errorf(field("priceExtensions", i, "type"), fmt.Sprintf("Price Extension %d: Type is required", n))
		}
		if len(pe.Items) == 0 {
			r.errorf(field("priceExtensions", i, "items"), fmt.Sprintf("Price Extension %d: At least one price item is required", n))
		}
		if len(pe.Items) > MaxPriceItems {
			r.warnf(field("priceExtensions", i, "items"), fmt.Sprintf("Price Extension %d: Too many items (%d). Maximum is %d.", n, len(pe.Items), MaxPriceItems))
		}
		// Only the first price extension is written.
		if i == 0 && len(pe.Items) > schema.MaxPriceItems {
			r.warnf(field("priceExtensions", i, "items"), fmt.Sprintf("Price Extension %d: Only first %d items will be exported.", n, schema.MaxPriceItems))
		}
	}
}

func checkPromotions(r *Result, items []campaign.Promotion) {
	singleBlock(r, "promotions", "promotions", len(items))
	for i, p := range items {
		n := i + 1
		if p.Target == "" {
			r.errorf(field("promotions", i, "target"), fmt.Sprintf("Promotion %d: Target is required", n))
		}
		if p.PercentOff == "" && p.MoneyAmountOff == "" {
			r.errorf(field("promotions", i, "percentOff"), fmt.Sprintf("Promotion %d: Either percent off or money amount off is required", n))
		}
	}
}

func checkImages(r *Result, items []campaign.ImageAsset) {
	for i, img := range items {
		if img.Name == "" {
			r.errorf(field("imageAssets", i, "name"), fmt.Sprintf("Image Asset %d: Name is required", i+1))
		}
		if img.URL == "" {
			r.errorf(field("imageAssets", i, "url"), fmt.Sprintf("Image Asset %d: URL is required", i+1))
		}
	}
}

func checkVideos(r *Result, items []campaign.VideoAsset) {
	for i, v := range items {
		if v.Name == "" {
			r.errorf(field("videoAssets", i, "name"), fmt.Sprintf("Video Asset %d: Name is required", i+1))
		}
		if v.URL == "" {
			r.errorf(field("videoAssets", i, "url"), fmt.Sprintf("Video Asset %d: URL is required", i+1))
		}
	}
}

// checkAds warns about ads the export will skip for lack of text.
func checkAds(r *Result, groups []campaign.AdGroup) {
	for g, ag := range groups {
		for i, ad := range ag.Ads {
			if hasText(ad.Headlines) && hasText(ad.Descriptions) {
				continue
			}
			r.warnf(fmt.Sprintf("adGroups[%d].ads[%d]", g, i),
				fmt.Sprintf("Ad %d in ad group %q has no headlines or no descriptions and will be skipped.", i+1, ag.Name))
		}
	}
}

func hasText(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
