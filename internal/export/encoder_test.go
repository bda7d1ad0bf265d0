package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/schema"
)

// parseOutput reads encoded bytes back into named records.
func parseOutput(t *testing.T, data []byte) (header []string, records []map[string]string) {
	t.Helper()

	require.True(t, bytes.HasPrefix(data, BOM), "output must start with BOM")

	r := csv.NewReader(bytes.NewReader(data[len(BOM):]))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	header = all[0]
	for _, rec := range all[1:] {
		m := make(map[string]string, len(header))
		for i, name := range header {
			m[name] = rec[i]
		}
		records = append(records, m)
	}
	return header, records
}

func rowsWhere(records []map[string]string, col string) []map[string]string {
	var out []map[string]string
	for _, r := range records {
		if r[col] != "" {
			out = append(out, r)
		}
	}
	return out
}

func springSale() *campaign.Campaign {
	return campaign.NewBuilder("Spring Sale").
		AdGroup(campaign.AdGroup{
			Name:     "Shoes",
			Keywords: []campaign.Keyword{{Text: "running shoes", MatchType: campaign.MatchBroad}},
			Ads: []campaign.Ad{{
				Type:         campaign.AdRSA,
				Headlines:    []string{"Buy Now", "Shop Today"},
				Descriptions: []string{"Great deals"},
				FinalURL:     "https://example.com/shoes",
			}},
		}).
		Build()
}

func TestEncode_SpringSale(t *testing.T) {
	res := NewEncoder().Encode(springSale())

	header, records := parseOutput(t, res.Data)
	assert.Equal(t, schema.EditorColumns, header)

	ads := rowsWhere(records, "Ad Type")
	require.Len(t, ads, 1)
	ad := ads[0]

	assert.Equal(t, "Responsive search ad", ad["Ad Type"])
	assert.Equal(t, []string{"Buy Now", "Shop Today", "Buy Now"},
		[]string{ad["Headline 1"], ad["Headline 2"], ad["Headline 3"]})
	assert.Empty(t, ad["Headline 4"])
	assert.Equal(t, []string{"Great deals", "Contact us today."},
		[]string{ad["Description 1"], ad["Description 2"]})
	assert.Equal(t, "Spring Sale", ad["Campaign"])
	assert.Equal(t, "Enabled", ad["Campaign Status"])
	assert.Equal(t, "Shoes", ad["Ad Group"])

	kws := rowsWhere(records, "Keyword")
	require.Len(t, kws, 1)
	assert.Equal(t, "running shoes", kws[0]["Keyword"])
	assert.Equal(t, "Broad", kws[0]["Criterion Type"])
	assert.Equal(t, "2", kws[0]["Max CPC"])
	assert.Empty(t, kws[0]["Max CPC Bid"])

	assert.Equal(t, RowCounts{Campaign: 1, AdGroups: 1, Keywords: 1, Ads: 1}, res.Report.Counts)
	assert.Empty(t, res.Report.SkippedAds)
}

func TestEncode_EveryRowHasLayoutWidth(t *testing.T) {
	c := fullCampaign()
	data := NewEncoder().Encode(c).Data

	r := csv.NewReader(bytes.NewReader(data[len(BOM):]))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	require.NoError(t, err)

	for i, rec := range all {
		assert.Len(t, rec, schema.EditorColumnCount, "row %d", i)
	}
}

func TestEncode_RowOrder(t *testing.T) {
	rows, _ := NewEncoder().Rows(fullCampaign())

	var kinds []string
	for _, row := range rows[1:] {
		switch {
		case row.Get("Campaign Daily Budget") != "":
			kinds = append(kinds, "campaign")
		case row.Get("Keyword") != "":
			kinds = append(kinds, "keyword")
		case row.Get("Ad Type") != "":
			kinds = append(kinds, "ad")
		case row.Get("Ad Group") != "":
			kinds = append(kinds, "adgroup")
		case row.Get("Keyword (Negative)") != "":
			kinds = append(kinds, "negative")
		case row.Get("Location") != "":
			kinds = append(kinds, "location:"+row.Get("Location Type"))
		case row.Get("Image Asset Name") != "":
			kinds = append(kinds, "image")
		case row.Get("Video Asset ID") != "":
			kinds = append(kinds, "video")
		}
	}

	want := []string{
		"campaign",
		"adgroup", "adgroup",
		"keyword", "keyword",
		"ad", "ad",
		"negative",
		"location:Country", "location:Region", "location:City", "location:Postal Code",
		"image", "image",
		"video",
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_CRLFAndDeterminism(t *testing.T) {
	c := fullCampaign()
	first := NewEncoder().Encode(c).Data
	second := NewEncoder().Encode(c).Data

	assert.Equal(t, first, second)
	body := string(first[len(BOM):])
	lines := strings.Split(body, "\r\n")
	assert.Equal(t, "Campaign", strings.Split(lines[0], ",")[0])
	assert.False(t, strings.HasSuffix(body, "\r\n"))
}

func TestEncode_CampaignDefaults(t *testing.T) {
	rows, _ := NewEncoder().Rows(campaign.NewBuilder("X").Build())
	require.Len(t, rows, 2)
	row := rows[1]

	want := map[string]string{
		"Campaign":              "X",
		"Campaign Daily Budget": "100",
		"Campaign Type":         "Search",
		"Bid Strategy Type":     "Maximize Conversions",
		"Networks":              "Google search",
		"EU political ads":      "No",
		"Desktop Bid adj.":      "0%",
		"Mobile Bid adj.":       "0%",
		"Tablet Bid adj.":       "0%",
		"Campaign Status":       "Enabled",
	}
	for col, v := range want {
		assert.Equal(t, v, row.Get(col), "column %s", col)
	}
}

func TestEncode_CampaignOverrides(t *testing.T) {
	c := campaign.NewBuilder("X").
		Budget(42.5).
		Type("Display").
		BidStrategy("Manual CPC").
		Networks("Google search;Search Partners").
		Dates("2026-03-01", "2026-04-01").
		Status("Paused").
		Labels("spring").
		Build()

	rows, _ := NewEncoder().Rows(c)
	row := rows[1]

	assert.Equal(t, "42.5", row.Get("Campaign Daily Budget"))
	assert.Equal(t, "Display", row.Get("Campaign Type"))
	assert.Equal(t, "Manual CPC", row.Get("Bid Strategy Type"))
	assert.Equal(t, "Google search;Search Partners", row.Get("Networks"))
	assert.Equal(t, "2026-03-01", row.Get("Start Date"))
	assert.Equal(t, "2026-04-01", row.Get("End Date"))
	assert.Equal(t, "Paused", row.Get("Campaign Status"))
	assert.Equal(t, "spring", row.Get("Campaign Labels"))
}

func TestEncode_ChildRowsRepeatCampaign(t *testing.T) {
	c := fullCampaign()
	c.Status = "Paused"
	rows, _ := NewEncoder().Rows(c)

	for i, row := range rows[2:] {
		assert.Equal(t, c.Name, row.Get("Campaign"), "row %d", i+2)
		assert.Equal(t, "Enabled", row.Get("Campaign Status"), "row %d", i+2)
	}
}

func TestEncode_ExtensionsRoundTripThroughRegistry(t *testing.T) {
	c := fullCampaign()
	_, records := parseOutput(t, NewEncoder().Encode(c).Data)
	row := records[0]

	for i, sl := range c.Sitelinks {
		n := i + 1
		assert.Equal(t, sl.Text, row[schema.SitelinkColumn(n, "Text")])
		assert.Equal(t, sl.Description1, row[schema.SitelinkColumn(n, "Description 1")])
		assert.Equal(t, sl.Description2, row[schema.SitelinkColumn(n, "Description 2")])
		assert.Equal(t, sl.FinalURL, row[schema.SitelinkColumn(n, "Final URL")])
		assert.Equal(t, "Enabled", row[schema.SitelinkColumn(n, "Status")])
	}
	assert.Equal(t, "Free Shipping", row[schema.CalloutColumn(1, "Text")])
	assert.Equal(t, "24/7 Support", row[schema.CalloutColumn(2, "Text")])

	assert.Equal(t, "Brands", row["Structured Snippet Header"])
	assert.Equal(t, "Nike; Adidas", row["Structured Snippet Values"])
	assert.Equal(t, "Styles", row["Structured Snippet 1 Header"])
	assert.Equal(t, "Trail; Road", row["Structured Snippet 1 Values"])
	assert.Empty(t, row["Structured Snippet 2 Header"])

	assert.Equal(t, "+1 555 010 0000", row["PhoneNumber"])
	assert.Equal(t, "Enabled", row["Call Extension Status"])

	assert.Equal(t, "Services", row["Price Extension Type"])
	assert.Equal(t, "From", row["Price Extension Price Qualifier"])
	assert.Equal(t, "Fitting", row["Price Extension Item Header"])
	assert.Equal(t, "Fitting", row[schema.PriceItemColumn(1, "Header")])
	assert.Equal(t, "$25", row[schema.PriceItemColumn(2, "Price")])

	assert.Equal(t, "Running shoes", row["Promotion Target"])
	assert.Equal(t, "20", row["Promotion Percent Off"])
	assert.Equal(t, "com.example.app", row["App ID"])
	assert.Equal(t, "Google Play", row["App Store"])
	assert.Equal(t, "Text us", row["Message Text"])
	assert.Equal(t, "Get a quote", row["Lead Form Headline"])
	assert.Equal(t, "Learn More", row["Lead Form Call-to-action"])

	assert.Equal(t, "Acme Shoes", row["Business Name"])
	assert.Equal(t, "https://acme.example", row["Business Website"])
}

func TestEncode_ExtensionCeilings(t *testing.T) {
	b := campaign.NewBuilder("Ceilings")
	for _, text := range []string{"a", "b", "c", "d", "e", "f"} {
		b.Extension(campaign.Sitelink{Text: text, FinalURL: "https://example.com/" + text})
	}
	for _, text := range []string{"c1", "c2", "c3", "c4", "c5"} {
		b.Extension(campaign.Callout{Text: text})
	}
	b.Extension(
		campaign.Snippet{Header: "H1", Values: "a"},
		campaign.Snippet{Header: "H2", Values: "b"},
		campaign.Snippet{Header: "H3", Values: "c"},
		campaign.CallExtension{PhoneNumber: "111"},
		campaign.CallExtension{PhoneNumber: "222"},
		campaign.PriceExtension{Type: "Brands", Items: []campaign.PriceItem{
			{Header: "1"}, {Header: "2"}, {Header: "3"}, {Header: "4"}, {Header: "5"},
		}},
	)

	res := NewEncoder().Encode(b.Build())
	_, records := parseOutput(t, res.Data)
	row := records[0]

	assert.Equal(t, "d", row[schema.SitelinkColumn(4, "Text")])
	assert.NotContains(t, string(res.Data), "https://example.com/e")
	assert.Equal(t, "c4", row[schema.CalloutColumn(4, "Text")])
	assert.NotContains(t, string(res.Data), "c5")
	assert.Empty(t, row["Structured Snippet 2 Header"])
	assert.Equal(t, "111", row["PhoneNumber"])
	assert.Equal(t, "4", row[schema.PriceItemColumn(4, "Header")])

	assert.Equal(t, []Dropped{
		{Kind: "sitelink", Supplied: 6, Written: 4},
		{Kind: "callout", Supplied: 5, Written: 4},
		{Kind: "snippet", Supplied: 3, Written: 2},
		{Kind: "call", Supplied: 2, Written: 1},
		{Kind: "price item", Supplied: 5, Written: 4},
	}, res.Report.Dropped)
}

func TestEncode_HeadlineAndDescriptionLimits(t *testing.T) {
	long := strings.Repeat("h", 40)
	longDesc := strings.Repeat("d", 120)

	var headlines []string
	for i := 0; i < 17; i++ {
		headlines = append(headlines, long)
	}

	c := campaign.NewBuilder("Limits").AdGroup(campaign.AdGroup{
		Name: "G",
		Ads: []campaign.Ad{{
			Headlines:    headlines,
			Descriptions: []string{longDesc, "b", "c", "d", "e"},
			Path1:        "this-path-is-way-too-long",
			Path2:        "ok",
		}},
	}).Build()

	_, records := parseOutput(t, NewEncoder().Encode(c).Data)
	ad := rowsWhere(records, "Ad Type")[0]

	for n := 1; n <= schema.MaxHeadlines; n++ {
		assert.Len(t, ad[schema.HeadlineColumn(n)], schema.HeadlineMaxLen)
	}
	assert.Len(t, ad["Description 1"], schema.DescriptionMaxLen)
	assert.Equal(t, "d", ad["Description 4"])
	assert.Equal(t, "this-path-is-wa", ad["Path 1"])
	assert.Equal(t, "ok", ad["Path 2"])
}

func TestEncode_TruncationCountsCharacters(t *testing.T) {
	headline := strings.Repeat("é", 35)
	c := campaign.NewBuilder("Unicode").AdGroup(campaign.AdGroup{
		Name: "G",
		Ads:  []campaign.Ad{{Headlines: []string{headline}, Descriptions: []string{"d"}}},
	}).Build()

	rows, _ := NewEncoder().Rows(c)
	var got string
	for _, row := range rows {
		if row.Get("Ad Type") != "" {
			got = row.Get("Headline 1")
		}
	}
	assert.Equal(t, strings.Repeat("é", 30), got)
}

func TestEncode_SkipsAdWithoutHeadlines(t *testing.T) {
	orig := campaign.Ad{Headlines: []string{"  ", ""}, Descriptions: []string{"Great deals"}}
	c := campaign.NewBuilder("Skip").AdGroup(campaign.AdGroup{
		Name: "G",
		Ads:  []campaign.Ad{orig},
	}).Build()

	core, logs := observer.New(zapcore.WarnLevel)
	res := NewEncoder(WithLogger(zap.New(core))).Encode(c)

	_, records := parseOutput(t, res.Data)
	assert.Empty(t, rowsWhere(records, "Ad Type"))
	assert.Equal(t, []SkippedAd{{AdGroup: "G", Index: 0, Headlines: 0, Descriptions: 1}}, res.Report.SkippedAds)
	assert.Equal(t, 1, logs.FilterMessage("skipping ad without headlines or descriptions").Len())
	assert.Len(t, res.Report.Diagnostics(), 1)
}

func TestEncode_SkipsAdWithoutDescriptions(t *testing.T) {
	c := campaign.NewBuilder("Skip").AdGroup(campaign.AdGroup{
		Name: "G",
		Ads:  []campaign.Ad{{Headlines: []string{"h"}}},
	}).Build()

	res := NewEncoder().Encode(c)
	assert.Zero(t, res.Report.Counts.Ads)
	require.Len(t, res.Report.SkippedAds, 1)
	assert.Equal(t, 0, res.Report.SkippedAds[0].Descriptions)
}

func TestEncode_CallOnlyAd(t *testing.T) {
	c := campaign.NewBuilder("Calls").AdGroup(campaign.AdGroup{
		Name: "G",
		Ads: []campaign.Ad{{
			Type:            campaign.AdCallOnly,
			Headlines:       []string{"Call now"},
			Descriptions:    []string{"Open 24/7"},
			PhoneNumber:     "+1 555 010 0000",
			VerificationURL: "https://example.com/verify",
			BusinessName:    "Acme",
			MobileURL:       "https://m.example.com",
		}},
	}).Build()

	rows, _ := NewEncoder().Rows(c)
	ad := rows[len(rows)-1]

	assert.Equal(t, "Call-only ad", ad.Get("Ad Type"))
	assert.Equal(t, "+1 555 010 0000", ad.Get("PhoneNumber"))
	assert.Equal(t, "https://example.com/verify", ad.Get("VerificationURL"))
	assert.Equal(t, "Acme", ad.Get("Business Name"))
	assert.Equal(t, "Yes", ad.Get("Call Only Ads"))
	assert.Equal(t, "https://m.example.com", ad.Get("Mobile Final URL"))
}

func TestEncode_KeywordFinalURLFallback(t *testing.T) {
	c := campaign.NewBuilder("URLs").
		URL("https://example.com").
		AdGroup(campaign.AdGroup{
			Name:   "G",
			MaxCPC: 1.25,
			Keywords: []campaign.Keyword{
				{Text: "a", MatchType: campaign.MatchExact},
				{Text: "b", MatchType: campaign.MatchPhrase, FinalURL: "https://example.com/b", MaxCPCBid: 3},
			},
		}).Build()

	rows, _ := NewEncoder().Rows(c)
	kwA, kwB := rows[3], rows[4]

	assert.Equal(t, "https://example.com", kwA.Get("Final URL"))
	assert.Equal(t, "1.25", kwA.Get("Max CPC"))
	assert.Equal(t, "Exact", kwA.Get("Criterion Type"))
	assert.Equal(t, "https://example.com/b", kwB.Get("Final URL"))
	assert.Equal(t, "3", kwB.Get("Max CPC Bid"))
	assert.Equal(t, "Enabled", kwB.Get("Ad Group Status"))
}

func TestEncode_LocationRows(t *testing.T) {
	c := campaign.NewBuilder("Geo").Locations(campaign.Locations{
		Countries: []string{"Canada"},
		States:    []string{"Ontario"},
		Cities:    []string{"Toronto"},
		ZipCodes:  []string{"M5V"},
	}).Build()

	rows, _ := NewEncoder().Rows(c)
	locs := rows[2:]
	require.Len(t, locs, 4)

	assert.Equal(t, "Country", locs[0].Get("Location Type"))
	assert.Empty(t, locs[0].Get("State/Region"))
	assert.Equal(t, "Ontario", locs[1].Get("State/Region"))
	assert.Equal(t, "Toronto", locs[2].Get("City"))
	assert.Equal(t, "M5V", locs[3].Get("Postal Code"))
	for _, row := range locs {
		assert.Equal(t, "US", row.Get("Country Code"))
		assert.Equal(t, "Enabled", row.Get("Location Status"))
	}
}

func TestEncode_OneRowPerAsset(t *testing.T) {
	b := campaign.NewBuilder("Assets")
	for i := 0; i < 5; i++ {
		b.Extension(campaign.ImageAsset{Name: "img", URL: "https://example.com/i.png"})
	}
	for i := 0; i < 3; i++ {
		b.Extension(campaign.VideoAsset{ID: "vid", Name: "v", URL: "https://youtu.be/x"})
	}

	_, records := parseOutput(t, NewEncoder().Encode(b.Build()).Data)
	assert.Len(t, rowsWhere(records, "Image Asset Name"), 5)
	assert.Len(t, rowsWhere(records, "Video Asset ID"), 3)
}

func TestEncode_EscapesEmbeddedCharacters(t *testing.T) {
	c := campaign.NewBuilder(`Shoes, "Boots" & More`).
		NegativeKeywords("line\nbreak", " leading space").
		Build()

	data := NewEncoder().Encode(c).Data
	assert.Contains(t, string(data), `"Shoes, ""Boots"" & More"`)
	assert.Contains(t, string(data), ", leading space,")

	_, records := parseOutput(t, data)
	negs := rowsWhere(records, "Keyword (Negative)")
	require.Len(t, negs, 2)
	assert.Equal(t, "line\nbreak", negs[0]["Keyword (Negative)"])
	assert.Equal(t, " leading space", negs[1]["Keyword (Negative)"])
	assert.Equal(t, "Phrase", negs[0]["Criterion Type (Negative)"])
}

func TestSerializeAndWriteTo(t *testing.T) {
	c := springSale()
	s := Serialize(c)

	var buf bytes.Buffer
	n, err := WriteTo(&buf, c)
	require.NoError(t, err)
	assert.Equal(t, int64(len(s)), n)
	assert.Equal(t, s, buf.String())
}

func fullCampaign() *campaign.Campaign {
	return campaign.NewBuilder("Full Campaign").
		Budget(75).
		URL("https://acme.example").
		AdGroup(
			campaign.AdGroup{
				Name:     "Running",
				Keywords: []campaign.Keyword{{Text: "running shoes", MatchType: campaign.MatchBroad}},
				Ads: []campaign.Ad{{
					Type:         campaign.AdRSA,
					Headlines:    []string{"Fast Shoes", "Light Shoes", "Buy Today"},
					Descriptions: []string{"Free returns.", "Ships today."},
					FinalURL:     "https://acme.example/running",
				}},
			},
			campaign.AdGroup{
				Name:     "Trail",
				MaxCPC:   3,
				Keywords: []campaign.Keyword{{Text: "trail shoes", MatchType: campaign.MatchExact}},
				Ads: []campaign.Ad{{
					Type:         campaign.AdDKI,
					Headlines:    []string{"{KeyWord:Trail Shoes}"},
					Descriptions: []string{"Grip, comfort, speed."},
					FinalURL:     "https://acme.example/trail",
				}},
			},
		).
		NegativeKeywords("free").
		Locations(campaign.Locations{
			Countries: []string{"United States"},
			States:    []string{"Texas"},
			Cities:    []string{"Austin"},
			ZipCodes:  []string{"78701"},
		}).
		Extension(
			campaign.Sitelink{Text: "Sale", Description1: "Up to 50% off", Description2: "This week", FinalURL: "https://acme.example/sale"},
			campaign.Sitelink{Text: "New", FinalURL: "https://acme.example/new"},
			campaign.Callout{Text: "Free Shipping"},
			campaign.Callout{Text: "24/7 Support"},
			campaign.Snippet{Header: "Brands", Values: "Nike; Adidas"},
			campaign.Snippet{Header: "Styles", Values: "Trail; Road"},
			campaign.CallExtension{PhoneNumber: "+1 555 010 0000", CountryCode: "US"},
			campaign.PriceExtension{Type: "Services", PriceQualifier: "From", Items: []campaign.PriceItem{
				{Header: "Fitting", Price: "$10", FinalURL: "https://acme.example/fit"},
				{Header: "Gait analysis", Price: "$25", FinalURL: "https://acme.example/gait"},
			}},
			campaign.Promotion{Target: "Running shoes", PercentOff: "20", FinalURL: "https://acme.example/promo"},
			campaign.AppExtension{AppID: "com.example.app", AppStore: "Google Play", LinkText: "Download App", FinalURL: "https://acme.example/app"},
			campaign.MessageExtension{Text: "Text us", BusinessName: "Acme", CountryCode: "US", PhoneNumber: "+15550100000"},
			campaign.LeadFormExtension{Name: "Quote", Headline: "Get a quote", Description: "We reply fast", CallToAction: "Learn More"},
			campaign.ImageAsset{Name: "hero", URL: "https://acme.example/hero.png"},
			campaign.ImageAsset{Name: "logo", URL: "https://acme.example/logo.png"},
			campaign.VideoAsset{ID: "abc123", Name: "promo", URL: "https://youtu.be/abc123"},
		).
		Business(campaign.BusinessInfo{Name: "Acme Shoes", Website: "https://acme.example"}).
		Build()
}
