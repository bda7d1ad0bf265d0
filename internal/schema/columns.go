package schema

// EditorColumns is the ordered column catalogue of the Ads Editor bulk import
// format. The desktop editor parses rows strictly by position, so this slice
// is append-only: new columns go at the end, existing ones never move.
var EditorColumns = []string{
	// Campaign settings
	"Campaign",
	"Campaign Daily Budget",
	"Campaign Type",
	"Bid Strategy Type",
	"Networks",
	"EU political ads",
	"Desktop Bid adj.",
	"Mobile Bid adj.",
	"Tablet Bid adj.",
	"Start Date",
	"End Date",
	"Campaign Status",
	"Campaign Labels",

	// Ad group
	"Ad Group",
	"Max CPC",
	"Ad Group Status",
	"Ad Group Labels",

	// Keywords
	"Keyword",
	"Criterion Type",
	"Keyword Status",
	"Max CPC Bid",
	"Keyword Labels",
	"Bid Modifier",

	// Negative keywords
	"Keyword (Negative)",
	"Criterion Type (Negative)",
	"Negative Keyword Status",

	// Audiences
	"Audience ID",
	"Audience Name",
	"Audience Type",
	"Audience Status",

	// Location targeting
	"Location",
	"Location Type",
	"Location Status",
	"Bid Adjustment (%)",
	"City",
	"State/Region",
	"Postal Code",
	"Country Code",
	"Latitude",
	"Longitude",
	"Radius",
	"Radius Units",

	// Ads
	"Ad Type",
	"Final URL",
	"Final URL Suffix",
	"Mobile Final URL",
	"Tracking Template",
	"Custom Parameter",
	"Headline 1",
	"Headline 2",
	"Headline 3",
	"Headline 4",
	"Headline 5",
	"Headline 6",
	"Headline 7",
	"Headline 8",
	"Headline 9",
	"Headline 10",
	"Headline 11",
	"Headline 12",
	"Headline 13",
	"Headline 14",
	"Headline 15",
	"Description 1",
	"Description 2",
	"Description 3",
	"Description 4",
	"Path 1",
	"Path 2",
	"Dynamic Search Ad Description 1",
	"Dynamic Search Ad Description 2",
	"Dynamic Search Ad Domain Language",

	// Call extension / call-only ads
	"PhoneNumber",
	"VerificationURL",
	"Call Extension Status",
	"Call Extension Scheduling",
	"Call Only Ads",

	// Sitelinks
	"Sitelink 1 Text",
	"Sitelink 1 Description 1",
	"Sitelink 1 Description 2",
	"Sitelink 1 Final URL",
	"Sitelink 1 Status",
	"Sitelink 1 Start Date",
	"Sitelink 1 End Date",
	"Sitelink 2 Text",
	"Sitelink 2 Description 1",
	"Sitelink 2 Description 2",
	"Sitelink 2 Final URL",
	"Sitelink 2 Status",
	"Sitelink 2 Start Date",
	"Sitelink 2 End Date",
	"Sitelink 3 Text",
	"Sitelink 3 Description 1",
	"Sitelink 3 Description 2",
	"Sitelink 3 Final URL",
	"Sitelink 3 Status",
	"Sitelink 3 Start Date",
	"Sitelink 3 End Date",
	"Sitelink 4 Text",
	"Sitelink 4 Description 1",
	"Sitelink 4 Description 2",
	"Sitelink 4 Final URL",
	"Sitelink 4 Status",
	"Sitelink 4 Start Date",
	"Sitelink 4 End Date",

	// Callouts
	"Callout 1 Text",
	"Callout 1 Status",
	"Callout 1 Start Date",
	"Callout 1 End Date",
	"Callout 2 Text",
	"Callout 2 Status",
	"Callout 2 Start Date",
	"Callout 2 End Date",
	"Callout 3 Text",
	"Callout 3 Status",
	"Callout 3 Start Date",
	"Callout 3 End Date",
	"Callout 4 Text",
	"Callout 4 Status",
	"Callout 4 Start Date",
	"Callout 4 End Date",

	// Structured snippets
	"Structured Snippet Header",
	"Structured Snippet Values",
	"Structured Snippet 1 Header",
	"Structured Snippet 1 Values",
	"Structured Snippet 2 Header",
	"Structured Snippet 2 Values",

	// Price extension
	"Price Extension Type",
	"Price Extension Price Qualifier",
	"Price Extension Item Header",
	"Price Extension Item Price",
	"Price Extension Item Final URL",
	"Price Extension 1 Type",
	"Price Extension 1 Price Qualifier",
	"Price Extension 1 Item 1 Header",
	"Price Extension 1 Item 1 Price",
	"Price Extension 1 Item 1 Final URL",
	"Price Extension 1 Item 2 Header",
	"Price Extension 1 Item 2 Price",
	"Price Extension 1 Item 2 Final URL",
	"Price Extension 1 Item 3 Header",
	"Price Extension 1 Item 3 Price",
	"Price Extension 1 Item 3 Final URL",
	"Price Extension 1 Item 4 Header",
	"Price Extension 1 Item 4 Price",
	"Price Extension 1 Item 4 Final URL",

	// Promotion
	"Promotion Target",
	"Promotion Discount Modifier",
	"Promotion Percent Off",
	"Promotion Money Amount Off",
	"Promotion Final URL",
	"Promotion Status",
	"Promotion Start Date",
	"Promotion End Date",

	// App extension
	"App ID",
	"App Store",
	"App Link Text",
	"App Final URL",
	"App Status",

	// Message extension
	"Message Text",
	"Message Final URL",
	"Message Business Name",
	"Message Country Code",
	"Message Phone Number",
	"Message Status",

	// Lead form
	"Lead Form ID",
	"Lead Form Name",
	"Lead Form Headline",
	"Lead Form Description",
	"Lead Form Call-to-action",
	"Lead Form Status",

	// Assets
	"Image Asset Name",
	"Image Asset URL",
	"Image Asset Status",
	"Video Asset ID",
	"Video Asset Name",
	"Video Asset URL",
	"Video Asset Status",

	// Business information
	"Business Profile Location",
	"Business Name",
	"Business Address",
	"Business Phone",
	"Business Website",
}

// EditorColumnCount is the number of columns every exported row carries.
const EditorColumnCount = 183

// RequiredHeaders must appear verbatim in the header row of any export.
var RequiredHeaders = []string{
	"Campaign",
	"Campaign Daily Budget",
	"Campaign Type",
	"Bid Strategy Type",
	"Ad Group",
	"Keyword",
	"Ad Type",
	"Final URL",
}
