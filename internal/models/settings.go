// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// WebsiteSettings is the singleton site-wide configuration.
type WebsiteSettings struct {
	// General
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	SiteURL         string `json:"siteUrl"`
	AdminEmail      string `json:"adminEmail"`

	// SEO
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`

	// Contact
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`

	SocialMedia SocialMedia    `json:"socialMedia"`
	Features    FeatureToggles `json:"features"`
	Appearance  Appearance     `json:"appearance"`
	Analytics   *Analytics     `json:"analytics,omitempty"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
}

type FeatureToggles struct {
	EnableRegistration bool `json:"enableRegistration"`
	EnableComments     bool `json:"enableComments"`
	EnableNewsletter   bool `json:"enableNewsletter"`
	EnableAnalytics    bool `json:"enableAnalytics"`
}

type Appearance struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoURL        string `json:"logoUrl"`
	DarkLogoURL    string `json:"darkLogoUrl"`
	FaviconURL     string `json:"faviconUrl"`
}

type Analytics struct {
	GoogleAnalyticsID string `json:"googleAnalyticsId,omitempty"`
	FacebookPixelID   string `json:"facebookPixelId,omitempty"`
}

// Clone returns a deep copy of the settings.
func (s *WebsiteSettings) Clone() *WebsiteSettings {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Analytics != nil {
		a := *s.Analytics
		cp.Analytics = &a
	}
	return &cp
}

// SettingsPatch is a partial settings update. Each nested object is merged
// independently so unspecified nested keys survive.
type SettingsPatch struct {
	SiteName        *string `json:"siteName,omitempty"`
	SiteDescription *string `json:"siteDescription,omitempty"`
	SiteURL         *string `json:"siteUrl,omitempty"`
	AdminEmail      *string `json:"adminEmail,omitempty"`

	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	MetaKeywords    *string `json:"metaKeywords,omitempty"`

	ContactEmail   *string `json:"contactEmail,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
	ContactAddress *string `json:"contactAddress,omitempty"`

	SocialMedia *SocialMediaPatch `json:"socialMedia,omitempty"`
	Features    *FeaturesPatch    `json:"features,omitempty"`
	Appearance  *AppearancePatch  `json:"appearance,omitempty"`
	Analytics   *AnalyticsPatch   `json:"analytics,omitempty"`
}

type SocialMediaPatch struct {
	Facebook  *string `json:"facebook,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
}

type FeaturesPatch struct {
	EnableRegistration *bool `json:"enableRegistration,omitempty"`
	EnableComments     *bool `json:"enableComments,omitempty"`
	EnableNewsletter   *bool `json:"enableNewsletter,omitempty"`
	EnableAnalytics    *bool `json:"enableAnalytics,omitempty"`
}

type AppearancePatch struct {
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	DarkLogoURL    *string `json:"darkLogoUrl,omitempty"`
	FaviconURL     *string `json:"faviconUrl,omitempty"`
}

type AnalyticsPatch struct {
	GoogleAnalyticsID *string `json:"googleAnalyticsId,omitempty"`
	FacebookPixelID   *string `json:"facebookPixelId,omitempty"`
}

// WebsiteStats summarises the stored content.
type WebsiteStats struct {
	TotalPages     int   `json:"totalPages"`
	PublishedPages int   `json:"publishedPages"`
	DraftPages     int   `json:"draftPages"`
	TotalSections  int   `json:"totalSections"`
	MediaFiles     int   `json:"mediaFiles"`
	TotalMediaSize int64 `json:"totalMediaSize"`
	ImageFiles     int   `json:"imageFiles"`
	VideoFiles     int   `json:"videoFiles"`
	DocumentFiles  int   `json:"documentFiles"`
}
