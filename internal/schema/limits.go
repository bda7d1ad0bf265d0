package schema

// Write ceilings of the editor layout. The campaign row only has column blocks
// for this many items; anything beyond is not written.
const (
	MaxSitelinks  = 4
	MaxCallouts   = 4
	MaxSnippets   = 2
	MaxPriceItems = 4

	// Call, app, message, lead form, promotion and price extensions have a
	// single column block each.
	MaxSingleBlock = 1
)

// Ad text limits.
const (
	MinHeadlines        = 3
	MaxHeadlines        = 15
	MinDescriptions     = 2
	MaxDescriptions     = 4
	HeadlineMaxLen      = 30
	DescriptionMaxLen   = 90
	PathMaxLen          = 15
	FallbackHeadline    = "Learn More"
	FallbackDescription = "Contact us today."
)
