package campaign

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCampaign() *Campaign {
	return NewBuilder("Spring Sale").
		Budget(50).
		URL("https://example.com").
		AdGroup(AdGroup{
			Name:     "Shoes",
			Keywords: []Keyword{{Text: "running shoes", MatchType: MatchBroad}},
			Ads: []Ad{{
				Type:         AdRSA,
				Headlines:    []string{"Buy Now", "Shop Today"},
				Descriptions: []string{"Great deals"},
				FinalURL:     "https://example.com/shoes",
			}},
		}).
		NegativeKeywords("free", "cheap").
		Locations(Locations{Countries: []string{"United States"}, Cities: []string{"Austin"}}).
		Extension(
			Sitelink{Text: "Sale", FinalURL: "https://example.com/sale"},
			Callout{Text: "Free Shipping"},
			PriceExtension{Type: "Services", Items: []PriceItem{{Header: "Basic", Price: "$10"}}},
			ImageAsset{Name: "hero", URL: "https://example.com/hero.png"},
		).
		Build()
}

func TestBuilder_RoutesExtensions(t *testing.T) {
	c := sampleCampaign()

	assert.Equal(t, "Spring Sale", c.Name)
	assert.Len(t, c.Sitelinks, 1)
	assert.Len(t, c.Callouts, 1)
	assert.Len(t, c.PriceExtensions, 1)
	assert.Len(t, c.ImageAssets, 1)
	assert.Empty(t, c.VideoAssets)
}

func TestBuilder_BuildReturnsIndependentCopies(t *testing.T) {
	b := NewBuilder("A").AdGroup(AdGroup{Name: "G", Ads: []Ad{{Headlines: []string{"h"}}}})

	first := b.Build()
	first.AdGroups[0].Ads[0].Headlines[0] = "changed"

	second := b.Build()
	assert.Equal(t, "h", second.AdGroups[0].Ads[0].Headlines[0])
}

func TestClone_Deep(t *testing.T) {
	c := sampleCampaign()
	cp := c.Clone()

	if diff := cmp.Diff(c, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	cp.Locations.Cities[0] = "Dallas"
	cp.PriceExtensions[0].Items[0].Price = "$99"
	cp.NegativeKeywords[0] = "x"

	assert.Equal(t, "Austin", c.Locations.Cities[0])
	assert.Equal(t, "$10", c.PriceExtensions[0].Items[0].Price)
	assert.Equal(t, "free", c.NegativeKeywords[0])
}

func TestClone_Nil(t *testing.T) {
	var c *Campaign
	assert.Nil(t, c.Clone())
}

func TestParseExtensionKind(t *testing.T) {
	tests := []struct {
		tag  string
		want ExtensionKind
		ok   bool
	}{
		{"sitelink", KindSitelink, true},
		{" LeadForm ", KindLeadForm, true},
		{"promotion", KindPromo, true},
		{"video", KindVideo, true},
		{"structured_snippet", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseExtensionKind(tt.tag)
		assert.Equal(t, tt.ok, ok, "tag %q", tt.tag)
		assert.Equal(t, tt.want, got, "tag %q", tt.tag)
	}
}

func TestExtensionKinds_MatchVariants(t *testing.T) {
	variants := []Extension{
		Sitelink{}, Callout{}, Snippet{}, CallExtension{}, PriceExtension{},
		Promotion{}, AppExtension{}, MessageExtension{}, LeadFormExtension{},
		ImageAsset{}, VideoAsset{},
	}
	require.Len(t, variants, len(ExtensionKinds))

	c := &Campaign{}
	for _, v := range variants {
		c.AddExtension(v)
		assert.Equal(t, 1, c.ExtensionCount(v.Kind()), "kind %s", v.Kind())
	}
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(sampleCampaign())

	assert.Equal(t, Stats{
		AdGroups:         1,
		Keywords:         1,
		Ads:              1,
		NegativeKeywords: 2,
		Locations:        2,
		Sitelinks:        1,
		Callouts:         1,
		PriceExtensions:  1,
		ImageAssets:      1,
	}, s)
}

func TestAdType_EditorLabel(t *testing.T) {
	assert.Equal(t, "Responsive search ad", AdRSA.EditorLabel())
	assert.Equal(t, "Responsive search ad", AdDKI.EditorLabel())
	assert.Equal(t, "Call-only ad", AdCallOnly.EditorLabel())
	assert.Equal(t, "Responsive search ad", AdType("").EditorLabel())
}

func TestMatchType_Valid(t *testing.T) {
	assert.True(t, MatchExact.Valid())
	assert.False(t, MatchType("broad").Valid())
}
