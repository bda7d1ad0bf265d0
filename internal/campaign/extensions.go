package campaign

import "strings"

// ExtensionKind is the discriminator of an extension or asset record.
// The string values match the "type" tags used by older campaign payloads.
type ExtensionKind string

const (
	KindSitelink ExtensionKind = "sitelink"
	KindCallout  ExtensionKind = "callout"
	KindSnippet  ExtensionKind = "snippet"
	KindCall     ExtensionKind = "call"
	KindPrice    ExtensionKind = "price"
	KindApp      ExtensionKind = "app"
	KindMessage  ExtensionKind = "message"
	KindLeadForm ExtensionKind = "leadform"
	KindPromo    ExtensionKind = "promotion"
	KindImage    ExtensionKind = "image"
	KindVideo    ExtensionKind = "video"
)

// ExtensionKinds lists every kind in campaign-row order.
var ExtensionKinds = []ExtensionKind{
	KindSitelink, KindCallout, KindSnippet, KindCall, KindPrice, KindPromo,
	KindApp, KindMessage, KindLeadForm, KindImage, KindVideo,
}

// ParseExtensionKind maps a type tag to its kind. Matching ignores case and
// surrounding whitespace. Returns false for unknown tags.
func ParseExtensionKind(tag string) (ExtensionKind, bool) {
	k := ExtensionKind(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range ExtensionKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Extension is a closed sum type over every extension and asset record.
// Only the types in this package implement it.
type Extension interface {
	Kind() ExtensionKind
	isExtension()
}

type Sitelink struct {
	Text         string `json:"text" yaml:"text"`
	Description1 string `json:"description1,omitempty" yaml:"description1,omitempty"`
	Description2 string `json:"description2,omitempty" yaml:"description2,omitempty"`
	FinalURL     string `json:"finalUrl" yaml:"finalUrl"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate    string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

type Callout struct {
	Text      string `json:"text" yaml:"text"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

// Snippet is a structured snippet; Values is the editor's "; "-joined list.
type Snippet struct {
	Header string `json:"header" yaml:"header"`
	Values string `json:"values" yaml:"values"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

type CallExtension struct {
	PhoneNumber      string `json:"phoneNumber" yaml:"phoneNumber"`
	CountryCode      string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
	VerificationURL  string `json:"verificationUrl,omitempty" yaml:"verificationUrl,omitempty"`
	Status           string `json:"status,omitempty" yaml:"status,omitempty"`
	Scheduling       string `json:"scheduling,omitempty" yaml:"scheduling,omitempty"`
	StartDate        string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	DevicePreference string `json:"devicePreference,omitempty" yaml:"devicePreference,omitempty"`
}

type PriceItem struct {
	Header   string `json:"header" yaml:"header"`
	Price    string `json:"price" yaml:"price"`
	FinalURL string `json:"finalUrl" yaml:"finalUrl"`
}

type PriceExtension struct {
	Type           string      `json:"type" yaml:"type"`
	PriceQualifier string      `json:"priceQualifier,omitempty" yaml:"priceQualifier,omitempty"`
	Items          []PriceItem `json:"items" yaml:"items"`
}

type Promotion struct {
	Target           string `json:"target" yaml:"target"`
	DiscountModifier string `json:"discountModifier,omitempty" yaml:"discountModifier,omitempty"`
	PercentOff       string `json:"percentOff,omitempty" yaml:"percentOff,omitempty"`
	MoneyAmountOff   string `json:"moneyAmountOff,omitempty" yaml:"moneyAmountOff,omitempty"`
	FinalURL         string `json:"finalUrl,omitempty" yaml:"finalUrl,omitempty"`
	Status           string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate        string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

type AppExtension struct {
	AppID            string `json:"appId" yaml:"appId"`
	AppStore         string `json:"appStore" yaml:"appStore"`
	LinkText         string `json:"linkText" yaml:"linkText"`
	FinalURL         string `json:"finalUrl" yaml:"finalUrl"`
	Status           string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate        string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	DevicePreference string `json:"devicePreference,omitempty" yaml:"devicePreference,omitempty"`
}

type MessageExtension struct {
	Text             string `json:"text" yaml:"text"`
	FinalURL         string `json:"finalUrl,omitempty" yaml:"finalUrl,omitempty"`
	BusinessName     string `json:"businessName" yaml:"businessName"`
	CountryCode      string `json:"countryCode" yaml:"countryCode"`
	PhoneNumber      string `json:"phoneNumber" yaml:"phoneNumber"`
	Status           string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate        string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	DevicePreference string `json:"devicePreference,omitempty" yaml:"devicePreference,omitempty"`
}

type LeadFormExtension struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Headline     string `json:"headline" yaml:"headline"`
	Description  string `json:"description" yaml:"description"`
	CallToAction string `json:"callToAction" yaml:"callToAction"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate    string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

type ImageAsset struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

type VideoAsset struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

func (Sitelink) Kind() ExtensionKind          { return KindSitelink }
func (Callout) Kind() ExtensionKind           { return KindCallout }
func (Snippet) Kind() ExtensionKind           { return KindSnippet }
func (CallExtension) Kind() ExtensionKind     { return KindCall }
func (PriceExtension) Kind() ExtensionKind    { return KindPrice }
func (Promotion) Kind() ExtensionKind         { return KindPromo }
func (AppExtension) Kind() ExtensionKind      { return KindApp }
func (MessageExtension) Kind() ExtensionKind  { return KindMessage }
func (LeadFormExtension) Kind() ExtensionKind { return KindLeadForm }
func (ImageAsset) Kind() ExtensionKind        { return KindImage }
func (VideoAsset) Kind() ExtensionKind        { return KindVideo }

func (Sitelink) isExtension()          {}
func (Callout) isExtension()           {}
func (Snippet) isExtension()           {}
func (CallExtension) isExtension()     {}
func (PriceExtension) isExtension()    {}
func (Promotion) isExtension()         {}
func (AppExtension) isExtension()      {}
func (MessageExtension) isExtension()  {}
func (LeadFormExtension) isExtension() {}
func (ImageAsset) isExtension()        {}
func (VideoAsset) isExtension()        {}

// AddExtension appends ext to the collection matching its variant.
func (c *Campaign) AddExtension(ext Extension) {
	switch e := ext.(type) {
	case Sitelink:
		c.Sitelinks = append(c.Sitelinks, e)
	case Callout:
		c.Callouts = append(c.Callouts, e)
	case Snippet:
		c.Snippets = append(c.Snippets, e)
	case CallExtension:
		c.CallExtensions = append(c.CallExtensions, e)
	case PriceExtension:
		c.PriceExtensions = append(c.PriceExtensions, e)
	case Promotion:
		c.Promotions = append(c.Promotions, e)
	case AppExtension:
		c.AppExtensions = append(c.AppExtensions, e)
	case MessageExtension:
		c.MessageExtensions = append(c.MessageExtensions, e)
	case LeadFormExtension:
		c.LeadFormExtensions = append(c.LeadFormExtensions, e)
	case ImageAsset:
		c.ImageAssets = append(c.ImageAssets, e)
	case VideoAsset:
		c.VideoAssets = append(c.VideoAssets, e)
	}
}

// ExtensionCount returns how many records of the given kind the campaign holds.
func (c *Campaign) ExtensionCount(kind ExtensionKind) int {
	switch kind {
	case KindSitelink:
		return len(c.Sitelinks)
	case KindCallout:
		return len(c.Callouts)
	case KindSnippet:
		return len(c.Snippets)
	case KindCall:
		return len(c.CallExtensions)
	case KindPrice:
		return len(c.PriceExtensions)
	case KindPromo:
		return len(c.Promotions)
	case KindApp:
		return len(c.AppExtensions)
	case KindMessage:
		return len(c.MessageExtensions)
	case KindLeadForm:
		return len(c.LeadFormExtensions)
	case KindImage:
		return len(c.ImageAssets)
	case KindVideo:
		return len(c.VideoAssets)
	}
	return 0
}
