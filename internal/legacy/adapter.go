// Package legacy converts campaign payloads produced by older clients into
// the canonical campaign model.
//
// Older payloads name fields inconsistently (camelCase and snake_case), keep
// ads in a flat list next to the ad groups, and may carry every extension in
// one "extensions" array discriminated by a "type" tag. Lookups go through
// gjson so that any of those shapes can be read without declaring a struct
// per variant. Missing values fall back to the same defaults the exporter
// uses, and every entity comes out with an explicit status.
package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
)

// ErrInvalidJSON is returned by AdaptJSON when the payload is not valid JSON.
var ErrInvalidJSON = errors.New("invalid json")

const (
	defaultCampaignName = "Campaign"
	defaultAdGroupName  = "Ad Group"
	defaultAdsGroupName = "Ad Group 1"
	defaultDailyBudget  = 100
	defaultMaxCPC       = 2
	defaultCountryCode  = "US"
)

// AdaptJSON parses a legacy payload and converts it.
func AdaptJSON(data []byte) (*campaign.Campaign, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("adapt legacy campaign: %w", ErrInvalidJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("adapt legacy campaign: %w: expected an object", ErrInvalidJSON)
	}
	return adapt(root), nil
}

// Adapt converts an already decoded legacy record.
func Adapt(record map[string]any) *campaign.Campaign {
	data, err := json.Marshal(record)
	if err != nil {
		// Only reachable with values JSON cannot represent; treat as empty.
		data = []byte("{}")
	}
	return adapt(gjson.ParseBytes(data))
}

func adapt(root gjson.Result) *campaign.Campaign {
	url := str(root, "url", "finalUrl", "final_url")

	b := campaign.NewBuilder(strOr(root, defaultCampaignName, "campaignName", "campaign_name", "name")).
		Budget(orAmount(num(root, "dailyBudget", "daily_budget", "budget"), defaultDailyBudget)).
		Type(strOr(root, "Search", "campaignType", "campaign_type")).
		BidStrategy(strOr(root, "Maximize Conversions", "bidStrategy", "bid_strategy")).
		Networks(strOr(root, "Google search", "networks")).
		Dates(str(root, "startDate", "start_date"), str(root, "endDate", "end_date")).
		Status(campaign.StatusEnabled).
		URL(url).
		NegativeKeywords(stringList(root, "negativeKeywords", "negative_keywords")...).
		Locations(locations(root.Get("locations")))

	groups := adGroups(root, url)
	groups = bucketAds(groups, root, url)
	b.AdGroup(groups...)

	b.Extension(extensions(root, url)...)

	if info := root.Get("businessInfo"); info.IsObject() {
		b.Business(campaign.BusinessInfo{
			Name:     str(info, "name"),
			Address:  str(info, "address"),
			Phone:    str(info, "phone"),
			Website:  str(info, "website"),
			Location: str(info, "location"),
		})
	}

	return b.Build()
}

func orAmount(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func locations(loc gjson.Result) campaign.Locations {
	return campaign.Locations{
		Countries:   stringList(loc, "countries"),
		States:      stringList(loc, "states", "regions"),
		Cities:      stringList(loc, "cities"),
		ZipCodes:    stringList(loc, "zipCodes", "zip_codes", "postalCodes"),
		CountryCode: strOr(loc, defaultCountryCode, "countryCode", "country_code"),
	}
}

func adGroups(root gjson.Result, campaignURL string) []campaign.AdGroup {
	items, _ := array(root, "adGroups", "ad_groups")
	groups := make([]campaign.AdGroup, 0, len(items))

	for _, ag := range items {
		group := campaign.AdGroup{
			Name:   strOr(ag, defaultAdGroupName, "name", "adgroup_name", "adGroupName"),
			MaxCPC: orAmount(num(ag, "maxCpc", "max_cpc"), defaultMaxCPC),
			Status: campaign.StatusEnabled,
			Ads:    []campaign.Ad{},
		}

		kws, _ := array(ag, "keywords")
		group.Keywords = make([]campaign.Keyword, 0, len(kws))
		for _, kw := range kws {
			group.Keywords = append(group.Keywords, keyword(kw, campaignURL))
		}

		groups = append(groups, group)
	}

	return groups
}

// keyword accepts either a bare string or an object.
func keyword(kw gjson.Result, campaignURL string) campaign.Keyword {
	if !kw.IsObject() {
		return campaign.Keyword{
			Text:      kw.String(),
			MatchType: campaign.MatchBroad,
			Status:    campaign.StatusEnabled,
			FinalURL:  campaignURL,
		}
	}
	return campaign.Keyword{
		Text:      str(kw, "text", "keyword"),
		MatchType: matchType(str(kw, "matchType", "match_type")),
		Status:    campaign.StatusEnabled,
		MaxCPCBid: num(kw, "maxCpcBid", "max_cpc_bid"),
		FinalURL:  strOr(kw, campaignURL, "finalUrl", "final_url"),
	}
}

// matchType normalizes case for the three known types and passes anything
// else through unchanged.
func matchType(s string) campaign.MatchType {
	if s == "" {
		return campaign.MatchBroad
	}
	for _, m := range []campaign.MatchType{campaign.MatchBroad, campaign.MatchPhrase, campaign.MatchExact} {
		if strings.EqualFold(s, string(m)) {
			return m
		}
	}
	return campaign.MatchType(s)
}

func adType(s string) campaign.AdType {
	switch strings.ToLower(s) {
	case "call_only", "callonly":
		return campaign.AdCallOnly
	case "dki":
		return campaign.AdDKI
	}
	return campaign.AdRSA
}

// ad reads a flat legacy ad. Numbered headline fields come first, followed
// by entries of a headlines array when one is present.
func ad(obj gjson.Result, campaignURL string) campaign.Ad {
	var headlines, descriptions []string
	for i := 1; i <= 5; i++ {
		if h := str(obj, fmt.Sprintf("headline%d", i)); h != "" {
			headlines = append(headlines, h)
		}
	}
	headlines = append(headlines, stringList(obj, "headlines")...)

	for i := 1; i <= 2; i++ {
		if d := str(obj, fmt.Sprintf("description%d", i)); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	descriptions = append(descriptions, stringList(obj, "descriptions")...)

	return campaign.Ad{
		Type:            adType(str(obj, "type")),
		Headlines:       headlines,
		Descriptions:    descriptions,
		Path1:           str(obj, "path1", "path_1"),
		Path2:           str(obj, "path2", "path_2"),
		FinalURL:        strOr(obj, campaignURL, "finalUrl", "final_url"),
		MobileURL:       str(obj, "mobileUrl", "mobile_url"),
		PhoneNumber:     str(obj, "phoneNumber", "phone_number"),
		VerificationURL: str(obj, "verificationUrl", "verification_url"),
		BusinessName:    str(obj, "businessName", "business_name"),
		Status:          campaign.StatusEnabled,
	}
}

// bucketAds places every ad in the group it names. Ads naming an unknown
// group go to the first group; with no groups at all one is synthesized.
func bucketAds(groups []campaign.AdGroup, root gjson.Result, campaignURL string) []campaign.AdGroup {
	items, _ := array(root, "ads")

	for _, item := range items {
		name := strOr(item, defaultAdsGroupName, "adGroup", "ad_group")

		target := -1
		for i := range groups {
			if groups[i].Name == name {
				target = i
				break
			}
		}
		if target < 0 && len(groups) > 0 {
			target = 0
		}
		if target < 0 {
			groups = append(groups, campaign.AdGroup{
				Name:     name,
				MaxCPC:   defaultMaxCPC,
				Status:   campaign.StatusEnabled,
				Keywords: []campaign.Keyword{},
			})
			target = len(groups) - 1
		}

		groups[target].Ads = append(groups[target].Ads, ad(item, campaignURL))
	}

	return groups
}
