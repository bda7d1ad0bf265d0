package campaign

// Builder assembles a Campaign for a single export call.
//
//	c := campaign.NewBuilder("Spring Sale").
//	    Budget(50).
//	    AdGroup(campaign.AdGroup{Name: "Shoes", ...}).
//	    Extension(campaign.Sitelink{Text: "Sale", FinalURL: "https://example.com/sale"}).
//	    Build()
//
// Build returns a deep copy, so a builder can be reused to derive variants.
type Builder struct {
	c Campaign
}

// NewBuilder starts a campaign with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{c: Campaign{Name: name}}
}

func (b *Builder) Budget(daily float64) *Builder {
	b.c.DailyBudget = daily
	return b
}

func (b *Builder) Type(campaignType string) *Builder {
	b.c.Type = campaignType
	return b
}

func (b *Builder) BidStrategy(strategy string) *Builder {
	b.c.BidStrategy = strategy
	return b
}

func (b *Builder) Networks(networks string) *Builder {
	b.c.Networks = networks
	return b
}

// Dates sets the campaign start and end dates as the editor expects them (free text).
func (b *Builder) Dates(start, end string) *Builder {
	b.c.StartDate = start
	b.c.EndDate = end
	return b
}

func (b *Builder) Status(status string) *Builder {
	b.c.Status = status
	return b
}

func (b *Builder) Labels(labels string) *Builder {
	b.c.Labels = labels
	return b
}

// URL sets the campaign landing page used by keywords without their own URL.
func (b *Builder) URL(url string) *Builder {
	b.c.URL = url
	return b
}

// AdGroup appends an ad group. Order is preserved in the output.
func (b *Builder) AdGroup(groups ...AdGroup) *Builder {
	b.c.AdGroups = append(b.c.AdGroups, groups...)
	return b
}

func (b *Builder) NegativeKeywords(keywords ...string) *Builder {
	b.c.NegativeKeywords = append(b.c.NegativeKeywords, keywords...)
	return b
}

func (b *Builder) Locations(loc Locations) *Builder {
	b.c.Locations = &loc
	return b
}

// Extension routes each record to its collection.
func (b *Builder) Extension(exts ...Extension) *Builder {
	for _, ext := range exts {
		b.c.AddExtension(ext)
	}
	return b
}

func (b *Builder) Business(info BusinessInfo) *Builder {
	b.c.Business = &info
	return b
}

// Build returns the assembled campaign.
func (b *Builder) Build() *Campaign {
	return b.c.Clone()
}
