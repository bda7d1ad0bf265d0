package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/export"
	"github.com/JonMunkholm/AdsExport/internal/schema"
)

func validCampaign() *campaign.Campaign {
	return campaign.NewBuilder("Spring Sale").
		URL("https://example.com").
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
		Extension(
			campaign.Sitelink{Text: "Contact", Description1: "Reach us", FinalURL: "https://example.com/contact"},
			campaign.Callout{Text: "Free shipping"},
			campaign.Snippet{Header: "Brands", Values: "Acme; Globex"},
			campaign.CallExtension{PhoneNumber: "+1 (555) 123-4567"},
			campaign.PriceExtension{Type: "Services", Items: []campaign.PriceItem{{Header: "Basic", Price: "10", FinalURL: "https://example.com"}}},
			campaign.Promotion{Target: "Shoes", PercentOff: "20"},
			campaign.AppExtension{AppID: "com.example", LinkText: "Get the app", FinalURL: "https://example.com/app"},
			campaign.MessageExtension{Text: "Text us", BusinessName: "Acme", PhoneNumber: "5551234567"},
			campaign.LeadFormExtension{Name: "Signup", Headline: "Join today", Description: "Get updates"},
			campaign.ImageAsset{Name: "hero", URL: "https://example.com/hero.png"},
			campaign.VideoAsset{ID: "v1", Name: "promo", URL: "https://youtu.be/x"},
		).
		Build()
}

func TestSemantics_ValidCampaign(t *testing.T) {
	res := Semantics(validCampaign())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.NotNil(t, res.Errors)
	assert.NotNil(t, res.Warnings)
}

func TestSemantics_TooManySitelinks(t *testing.T) {
	c := validCampaign()
	c.Sitelinks = nil
	for i := 1; i <= 6; i++ {
		c.Sitelinks = append(c.Sitelinks, campaign.Sitelink{
			Text:     fmt.Sprintf("Link %d", i),
			FinalURL: "https://example.com",
		})
	}

	res := Semantics(c)

	assert.True(t, res.Valid)
	var matching []string
	for _, w := range res.WarningStrings() {
		if strings.Contains(w, "Too many sitelinks") {
			matching = append(matching, w)
		}
	}
	require.Len(t, matching, 1)
	assert.Equal(t, "Too many sitelinks (6). Only first 4 will be exported.", matching[0])
}

func TestSemantics_CeilingWarnings(t *testing.T) {
	c := validCampaign()
	c.Callouts = make([]campaign.Callout, 5)
	for i := range c.Callouts {
		c.Callouts[i] = campaign.Callout{Text: "Callout"}
	}
	c.Snippets = append(c.Snippets, c.Snippets[0], c.Snippets[0])
	c.CallExtensions = append(c.CallExtensions, c.CallExtensions[0])
	c.Promotions = append(c.Promotions, c.Promotions[0], c.Promotions[0])

	res := Semantics(c)

	assert.True(t, res.Valid)
	assert.Equal(t, []string{
		"Too many callouts (5). Only first 4 will be exported.",
		"Too many structured snippets (3). Only first 2 will be exported.",
		"Too many call extensions (2). Only the first will be exported.",
		"Too many promotions (3). Only the first will be exported.",
	}, res.WarningStrings())
}

func TestSemantics_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *campaign.Campaign)
		want   string
	}{
		{
			name:   "sitelink text empty",
			mutate: func(c *campaign.Campaign) { c.Sitelinks[0].Text = "" },
			want:   "Sitelink 1: Text must be 1-25 characters",
		},
		{
			name:   "sitelink text too long",
			mutate: func(c *campaign.Campaign) { c.Sitelinks[0].Text = strings.Repeat("a", 26) },
			want:   "Sitelink 1: Text must be 1-25 characters",
		},
		{
			name:   "sitelink description 1",
			mutate: func(c *campaign.Campaign) { c.Sitelinks[0].Description1 = strings.Repeat("d", 36) },
			want:   "Sitelink 1: Description 1 must be ≤35 characters",
		},
		{
			name:   "sitelink description 2",
			mutate: func(c *campaign.Campaign) { c.Sitelinks[0].Description2 = strings.Repeat("d", 36) },
			want:   "Sitelink 1: Description 2 must be ≤35 characters",
		},
		{
			name:   "sitelink url",
			mutate: func(c *campaign.Campaign) { c.Sitelinks[0].FinalURL = "" },
			want:   "Sitelink 1: Final URL is required",
		},
		{
			name:   "callout text",
			mutate: func(c *campaign.Campaign) { c.Callouts[0].Text = strings.Repeat("c", 26) },
			want:   "Callout 1: Text must be 1-25 characters",
		},
		{
			name:   "snippet header",
			mutate: func(c *campaign.Campaign) { c.Snippets[0].Header = "" },
			want:   "Structured Snippet 1: Header is required",
		},
		{
			name:   "snippet values",
			mutate: func(c *campaign.Campaign) { c.Snippets[0].Values = "" },
			want:   "Structured Snippet 1: Values are required",
		},
		{
			name:   "call phone missing",
			mutate: func(c *campaign.Campaign) { c.CallExtensions[0].PhoneNumber = "" },
			want:   "Call Extension 1: Phone number is required",
		},
		{
			name:   "call phone format",
			mutate: func(c *campaign.Campaign) { c.CallExtensions[0].PhoneNumber = "555-CALL-NOW" },
			want:   "Call Extension 1: Invalid phone number format",
		},
		{
			name:   "app id",
			mutate: func(c *campaign.Campaign) { c.AppExtensions[0].AppID = "" },
			want:   "App Extension 1: App ID is required",
		},
		{
			name:   "app link text",
			mutate: func(c *campaign.Campaign) { c.AppExtensions[0].LinkText = "" },
			want:   "App Extension 1: Link text must be 1-25 characters",
		},
		{
			name:   "app url",
			mutate: func(c *campaign.Campaign) { c.AppExtensions[0].FinalURL = "" },
			want:   "App Extension 1: Final URL is required",
		},
		{
			name:   "message text",
			mutate: func(c *campaign.Campaign) { c.MessageExtensions[0].Text = strings.Repeat("m", 36) },
			want:   "Message Extension 1: Text must be 1-35 characters",
		},
		{
			name:   "message business",
			mutate: func(c *campaign.Campaign) { c.MessageExtensions[0].BusinessName = "" },
			want:   "Message Extension 1: Business name is required",
		},
		{
			name:   "message phone",
			mutate: func(c *campaign.Campaign) { c.MessageExtensions[0].PhoneNumber = "" },
			want:   "Message Extension 1: Phone number is required",
		},
		{
			name:   "lead form name",
			mutate: func(c *campaign.Campaign) { c.LeadFormExtensions[0].Name = "" },
			want:   "Lead Form Extension 1: Name is required",
		},
		{
			name:   "lead form headline",
			mutate: func(c *campaign.Campaign) { c.LeadFormExtensions[0].Headline = strings.Repeat("h", 31) },
			want:   "Lead Form Extension 1: Headline must be 1-30 characters",
		},
		{
			name:   "lead form description",
			mutate: func(c *campaign.Campaign) { c.LeadFormExtensions[0].Description = "" },
			want:   "Lead Form Extension 1: Description must be 1-90 characters",
		},
		{
			name:   "price type",
			mutate: func(c *campaign.Campaign) { c.PriceExtensions[0].Type = "" },
			want:   "Price Extension 1: Type is required",
		},
		{
			name:   "price items",
			mutate: func(c *campaign.Campaign) { c.PriceExtensions[0].Items = nil },
			want:   "Price Extension 1: At least one price item is required",
		},
		{
			name:   "promotion target",
			mutate: func(c *campaign.Campaign) { c.Promotions[0].Target = "" },
			want:   "Promotion 1: Target is required",
		},
		{
			name:   "promotion discount",
			mutate: func(c *campaign.Campaign) { c.Promotions[0].PercentOff = "" },
			want:   "Promotion 1: Either percent off or money amount off is required",
		},
		{
			name:   "image name",
			mutate: func(c *campaign.Campaign) { c.ImageAssets[0].Name = "" },
			want:   "Image Asset 1: Name is required",
		},
		{
			name:   "image url",
			mutate: func(c *campaign.Campaign) { c.ImageAssets[0].URL = "" },
			want:   "Image Asset 1: URL is required",
		},
		{
			name:   "video name",
			mutate: func(c *campaign.Campaign) { c.VideoAssets[0].Name = "" },
			want:   "Video Asset 1: Name is required",
		},
		{
			name:   "video url",
			mutate: func(c *campaign.Campaign) { c.VideoAssets[0].URL = "" },
			want:   "Video Asset 1: URL is required",
		},
		{
			name:   "campaign name",
			mutate: func(c *campaign.Campaign) { c.Name = "  " },
			want:   "Campaign name is required",
		},
		{
			name:   "keyword match type",
			mutate: func(c *campaign.Campaign) { c.AdGroups[0].Keywords[0].MatchType = "Modified Broad" },
			want:   `Keyword 1 in ad group "Shoes": Match type must be Broad, Phrase or Exact`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCampaign()
			tt.mutate(c)

			res := Semantics(c)

			assert.False(t, res.Valid)
			assert.Equal(t, []string{tt.want}, res.ErrorStrings())
		})
	}
}

func TestSemantics_IssueFields(t *testing.T) {
	c := validCampaign()
	c.Sitelinks = append(c.Sitelinks, campaign.Sitelink{Text: "Second"})

	res := Semantics(c)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "sitelinks[1].finalUrl", res.Errors[0].Field)
	assert.Equal(t, "Sitelink 2: Final URL is required", res.Errors[0].Message)
}

func TestSemantics_LengthsCountCharacters(t *testing.T) {
	c := validCampaign()
	c.Sitelinks[0].Text = strings.Repeat("é", 25)
	c.Callouts[0].Text = strings.Repeat("ü", 25)

	res := Semantics(c)

	assert.True(t, res.Valid, res.ErrorStrings())
}

func TestSemantics_PhoneFormats(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+1 (555) 123-4567", true},
		{"5551234567", true},
		{"+44 20 7946 0958", true},
		{"555.123.4567", false},
		{"call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			c := validCampaign()
			c.CallExtensions[0].PhoneNumber = tt.phone
			assert.Equal(t, tt.valid, Semantics(c).Valid)
		})
	}
}

func TestSemantics_PriceItemWarnings(t *testing.T) {
	items := func(n int) []campaign.PriceItem {
		out := make([]campaign.PriceItem, n)
		for i := range out {
			out[i] = campaign.PriceItem{Header: fmt.Sprintf("Item %d", i+1), Price: "1"}
		}
		return out
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "within layout", n: 4, want: []string{}},
		{name: "beyond layout", n: 6, want: []string{"Price Extension 1: Only first 4 items will be exported."}},
		{name: "beyond platform", n: 9, want: []string{
			"Price Extension 1: Too many items (9). Maximum is 8.",
			"Price Extension 1: Only first 4 items will be exported.",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCampaign()
			c.PriceExtensions[0].Items = items(tt.n)

			res := Semantics(c)

			assert.True(t, res.Valid)
			assert.Equal(t, tt.want, res.WarningStrings())
		})
	}
}

func TestSemantics_MatchTypeFieldPath(t *testing.T) {
	c := validCampaign()
	c.AdGroups[0].Keywords[0].MatchType = ""

	res := Semantics(c)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "adGroups[0].keywords[0].matchType", res.Errors[0].Field)
}

func TestSemantics_UnusableAdWarns(t *testing.T) {
	c := validCampaign()
	c.AdGroups[0].Ads = append(c.AdGroups[0].Ads, campaign.Ad{
		Headlines:    []string{"  ", ""},
		Descriptions: []string{"Text"},
	})

	res := Semantics(c)

	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "adGroups[0].ads[1]", res.Warnings[0].Field)
	assert.Contains(t, res.Warnings[0].Message, `"Shoes"`)
}

func TestResult_Merge(t *testing.T) {
	a := Result{Errors: []Issue{{Message: "a"}}}
	b := Result{Warnings: []Issue{{Message: "b"}}}

	merged := b.Merge(a)

	assert.False(t, merged.Valid)
	assert.Equal(t, []string{"a"}, merged.ErrorStrings())
	assert.Equal(t, []string{"b"}, merged.WarningStrings())

	clean := b.Merge(Result{})
	assert.True(t, clean.Valid)
}

func TestPhysicalFormat_ExportOutput(t *testing.T) {
	c := validCampaign()
	c.Name = "Sale, \"Big\"\nNow"

	res := PhysicalFormat(export.Serialize(c))

	assert.True(t, res.Valid, res.ErrorStrings())
	assert.Empty(t, res.Warnings)
}

func TestPhysicalFormat_WithoutBOM(t *testing.T) {
	text := strings.TrimPrefix(export.Serialize(validCampaign()), string(export.BOM))

	res := PhysicalFormat(text)

	assert.True(t, res.Valid, res.ErrorStrings())
}

func TestPhysicalFormat_Empty(t *testing.T) {
	for _, text := range []string{"", string(export.BOM)} {
		res := PhysicalFormat(text)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"CSV is empty"}, res.ErrorStrings())
	}
}

func TestPhysicalFormat_HeaderWidth(t *testing.T) {
	res := PhysicalFormat("Campaign,Ad Group,Keyword\r\nA,B,C")

	assert.False(t, res.Valid)
	errs := res.ErrorStrings()
	require.NotEmpty(t, errs)
	assert.Equal(t, fmt.Sprintf("CSV must have exactly %d columns, found 3", schema.EditorColumnCount), errs[0])
	assert.Contains(t, errs, fmt.Sprintf("Row 2 has 3 columns, expected %d", schema.EditorColumnCount))
	assert.Contains(t, errs, "Missing required header: Campaign Daily Budget")
	assert.NotContains(t, errs, "Missing required header: Campaign")
}

func TestPhysicalFormat_ShortDataRow(t *testing.T) {
	header := strings.Join(schema.EditorColumns, ",")
	full := strings.Repeat(",", schema.EditorColumnCount-1)
	text := header + "\r\n" + full + "\r\n" + "Spring Sale,Enabled"

	res := PhysicalFormat(text)

	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		fmt.Sprintf("Row 3 has 2 columns, expected %d", schema.EditorColumnCount),
	}, res.ErrorStrings())
	assert.Equal(t, "row 3", res.Errors[0].Field)
}

func TestPhysicalFormat_MissingRequiredHeader(t *testing.T) {
	cols := append([]string{}, schema.EditorColumns...)
	for i, name := range cols {
		if name == "Ad Type" {
			cols[i] = "Ad Kind"
		}
	}

	res := PhysicalFormat(strings.Join(cols, ","))

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Missing required header: Ad Type"}, res.ErrorStrings())
}

func TestPhysicalFormatReader_ShortInput(t *testing.T) {
	res := PhysicalFormatReader(strings.NewReader("a"))

	assert.False(t, res.Valid)
	assert.Contains(t, res.ErrorStrings(), fmt.Sprintf("CSV must have exactly %d columns, found 1", schema.EditorColumnCount))
}
