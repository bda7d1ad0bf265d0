package legacy

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
)

// decoder turns one legacy record into a typed extension.
// campaignURL is the campaign landing page, used where a record has no URL.
type decoder func(obj gjson.Result, campaignURL string) campaign.Extension

// collection describes where a kind can be found in a legacy payload.
type collection struct {
	kind   campaign.ExtensionKind
	keys   []string // dedicated array keys, most current first
	limit  int      // 0 means no limit
	decode decoder
}

var collections = []collection{
	{campaign.KindSitelink, []string{"sitelinks"}, 4, decodeSitelink},
	{campaign.KindCallout, []string{"callouts"}, 4, decodeCallout},
	{campaign.KindSnippet, []string{"structured_snippets", "structuredSnippets", "snippets"}, 2, decodeSnippet},
	{campaign.KindCall, []string{"callExtensions", "call_extensions"}, 0, decodeCall},
	{campaign.KindPrice, []string{"priceExtensions", "price_extensions"}, 0, decodePrice},
	{campaign.KindApp, []string{"appExtensions", "app_extensions"}, 0, decodeApp},
	{campaign.KindMessage, []string{"messageExtensions", "message_extensions"}, 0, decodeMessage},
	{campaign.KindLeadForm, []string{"leadFormExtensions", "lead_form_extensions"}, 0, decodeLeadForm},
	{campaign.KindPromo, []string{"promotions"}, 0, decodePromotion},
	{campaign.KindImage, []string{"imageAssets", "image_assets"}, 0, decodeImage},
	{campaign.KindVideo, []string{"videoAssets", "video_assets"}, 0, decodeVideo},
}

// tagAliases maps type tags seen in older payloads onto current kinds.
var tagAliases = map[string]campaign.ExtensionKind{
	"structured_snippet": campaign.KindSnippet,
	"lead_form":          campaign.KindLeadForm,
	"promo":              campaign.KindPromo,
}

func parseTag(tag string) (campaign.ExtensionKind, bool) {
	if k, ok := campaign.ParseExtensionKind(tag); ok {
		return k, true
	}
	k, ok := tagAliases[strings.ToLower(strings.TrimSpace(tag))]
	return k, ok
}

// extensions resolves every collection. A dedicated array wins; otherwise
// entries of the generic "extensions" array whose type tag matches are used.
func extensions(root gjson.Result, campaignURL string) []campaign.Extension {
	tagged := make(map[campaign.ExtensionKind][]gjson.Result)
	if items, ok := array(root, "extensions"); ok {
		for _, item := range items {
			if kind, ok := parseTag(item.Get("type").String()); ok {
				tagged[kind] = append(tagged[kind], item)
			}
		}
	}

	var out []campaign.Extension
	for _, col := range collections {
		items, ok := array(root, col.keys...)
		if !ok {
			items = tagged[col.kind]
		}
		if col.limit > 0 && len(items) > col.limit {
			items = items[:col.limit]
		}
		for _, item := range items {
			out = append(out, col.decode(item, campaignURL))
		}
	}
	return out
}

func status(obj gjson.Result) string {
	return strOr(obj, campaign.StatusEnabled, "status")
}

func decodeSitelink(obj gjson.Result, campaignURL string) campaign.Extension {
	return campaign.Sitelink{
		Text:         str(obj, "text", "linkText", "link_text"),
		Description1: str(obj, "description1", "descriptionLine1", "description_line_1"),
		Description2: str(obj, "description2", "descriptionLine2", "description_line_2"),
		FinalURL:     strOr(obj, campaignURL, "finalUrl", "final_url", "url"),
		Status:       status(obj),
		StartDate:    str(obj, "startDate", "start_date"),
		EndDate:      str(obj, "endDate", "end_date"),
	}
}

func decodeCallout(obj gjson.Result, _ string) campaign.Extension {
	return campaign.Callout{
		Text:      str(obj, "text", "calloutText", "callout_text"),
		Status:    status(obj),
		StartDate: str(obj, "startDate", "start_date"),
		EndDate:   str(obj, "endDate", "end_date"),
	}
}

func decodeSnippet(obj gjson.Result, _ string) campaign.Extension {
	return campaign.Snippet{
		Header: str(obj, "header"),
		Values: joinedValues(obj, "values"),
		Status: status(obj),
	}
}

func decodeCall(obj gjson.Result, _ string) campaign.Extension {
	return campaign.CallExtension{
		PhoneNumber:     str(obj, "phoneNumber", "phone", "phone_number"),
		CountryCode:     strOr(obj, "US", "countryCode", "country_code"),
		VerificationURL: str(obj, "verificationUrl", "verification_url"),
		Status:          status(obj),
		Scheduling:      str(obj, "scheduling"),
		StartDate:       str(obj, "startDate", "start_date"),
		EndDate:         str(obj, "endDate", "end_date"),
	}
}

// decodePrice reads the price type from priceType first. In the tagged form
// "type" is the discriminator, so it only counts when it is not "price".
func decodePrice(obj gjson.Result, _ string) campaign.Extension {
	priceType := str(obj, "priceType", "price_type")
	if priceType == "" {
		if t := str(obj, "type"); !strings.EqualFold(t, string(campaign.KindPrice)) {
			priceType = t
		}
	}
	if priceType == "" {
		priceType = "Services"
	}

	pe := campaign.PriceExtension{
		Type:           priceType,
		PriceQualifier: str(obj, "priceQualifier", "price_qualifier"),
	}
	items, _ := array(obj, "items")
	for _, item := range items {
		pe.Items = append(pe.Items, campaign.PriceItem{
			Header:   str(item, "header"),
			Price:    str(item, "price"),
			FinalURL: str(item, "finalUrl", "final_url", "url"),
		})
	}
	return pe
}

func decodeApp(obj gjson.Result, _ string) campaign.Extension {
	return campaign.AppExtension{
		AppID:    str(obj, "appId", "app_id"),
		AppStore: strOr(obj, "Google Play", "appStore", "app_store"),
		LinkText: strOr(obj, "Download App", "linkText", "link_text"),
		FinalURL: str(obj, "finalUrl", "final_url"),
		Status:   status(obj),
	}
}

func decodeMessage(obj gjson.Result, _ string) campaign.Extension {
	return campaign.MessageExtension{
		Text:         str(obj, "text", "messageText", "message_text"),
		FinalURL:     str(obj, "finalUrl", "final_url"),
		BusinessName: str(obj, "businessName", "business_name"),
		CountryCode:  strOr(obj, "US", "countryCode", "country_code"),
		PhoneNumber:  str(obj, "phoneNumber", "phone_number", "phone"),
		Status:       status(obj),
	}
}

func decodeLeadForm(obj gjson.Result, _ string) campaign.Extension {
	return campaign.LeadFormExtension{
		ID:           str(obj, "id"),
		Name:         str(obj, "name"),
		Headline:     str(obj, "headline"),
		Description:  str(obj, "description"),
		CallToAction: strOr(obj, "Learn More", "callToAction", "call_to_action"),
		Status:       status(obj),
	}
}

func decodePromotion(obj gjson.Result, _ string) campaign.Extension {
	return campaign.Promotion{
		Target:           str(obj, "target"),
		DiscountModifier: str(obj, "discountModifier", "discount_modifier"),
		PercentOff:       str(obj, "percentOff", "percent_off"),
		MoneyAmountOff:   str(obj, "moneyAmountOff", "money_amount_off"),
		FinalURL:         str(obj, "finalUrl", "final_url"),
		Status:           status(obj),
		StartDate:        str(obj, "startDate", "start_date"),
		EndDate:          str(obj, "endDate", "end_date"),
	}
}

func decodeImage(obj gjson.Result, _ string) campaign.Extension {
	return campaign.ImageAsset{
		Name:   str(obj, "name"),
		URL:    str(obj, "url"),
		Status: status(obj),
	}
}

func decodeVideo(obj gjson.Result, _ string) campaign.Extension {
	return campaign.VideoAsset{
		ID:     str(obj, "id", "videoId", "video_id"),
		Name:   str(obj, "name"),
		URL:    str(obj, "url"),
		Status: status(obj),
	}
}
