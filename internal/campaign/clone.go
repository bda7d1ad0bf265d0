package campaign

import "slices"

// Clone returns a deep copy of the campaign.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}

	out := *c
	out.NegativeKeywords = slices.Clone(c.NegativeKeywords)

	if c.AdGroups != nil {
		out.AdGroups = make([]AdGroup, len(c.AdGroups))
		for i, ag := range c.AdGroups {
			out.AdGroups[i] = ag.clone()
		}
	}

	if c.Locations != nil {
		loc := Locations{
			Countries:   slices.Clone(c.Locations.Countries),
			States:      slices.Clone(c.Locations.States),
			Cities:      slices.Clone(c.Locations.Cities),
			ZipCodes:    slices.Clone(c.Locations.ZipCodes),
			CountryCode: c.Locations.CountryCode,
		}
		out.Locations = &loc
	}

	if c.Business != nil {
		info := *c.Business
		out.Business = &info
	}

	out.Sitelinks = slices.Clone(c.Sitelinks)
	out.Callouts = slices.Clone(c.Callouts)
	out.Snippets = slices.Clone(c.Snippets)
	out.CallExtensions = slices.Clone(c.CallExtensions)
	out.Promotions = slices.Clone(c.Promotions)
	out.AppExtensions = slices.Clone(c.AppExtensions)
	out.MessageExtensions = slices.Clone(c.MessageExtensions)
	out.LeadFormExtensions = slices.Clone(c.LeadFormExtensions)
	out.ImageAssets = slices.Clone(c.ImageAssets)
	out.VideoAssets = slices.Clone(c.VideoAssets)

	if c.PriceExtensions != nil {
		out.PriceExtensions = make([]PriceExtension, len(c.PriceExtensions))
		for i, pe := range c.PriceExtensions {
			pe.Items = slices.Clone(pe.Items)
			out.PriceExtensions[i] = pe
		}
	}

	return &out
}

func (ag AdGroup) clone() AdGroup {
	ag.Keywords = slices.Clone(ag.Keywords)
	if ag.Ads != nil {
		ads := make([]Ad, len(ag.Ads))
		for i, ad := range ag.Ads {
			ad.Headlines = slices.Clone(ad.Headlines)
			ad.Descriptions = slices.Clone(ad.Descriptions)
			ads[i] = ad
		}
		ag.Ads = ads
	}
	return ag
}
