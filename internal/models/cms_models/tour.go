package cms_models

// Media is a Strapi upload record. URL may be absolute or relative to the
// media origin.
type Media struct {
	ID              int    `json:"id"`
	DocumentID      string `json:"documentId"`
	Name            string `json:"name"`
	AlternativeText string `json:"alternativeText,omitempty"`
	URL             string `json:"url"`
	Mime            string `json:"mime,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

type ItineraryItem struct {
	ID      int    `json:"id"`
	Caption string `json:"itenary_caption"`
}

type FAQItem struct {
	ID          int    `json:"id"`
	Caption     string `json:"caption"`
	Description string `json:"faq_desc"`
}

type NoteItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	// warning | calm | good | emergency | destroy
	NoteType string `json:"notes_type"`
}

type ImportantNote struct {
	ID          int    `json:"id"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

// GalleryEntry is a direct-URL gallery image, distinct from the media-backed
// Gallery field.
type GalleryEntry struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// Tour is the raw CMS tour record as returned with populate=*.
// Itinerary keeps the source schema's field name, typo included.
type Tour struct {
	ID               int     `json:"id"`
	DocumentID       string  `json:"documentId"`
	Title            string  `json:"title"`
	Location         string  `json:"location"`
	Price            float64 `json:"price"`
	Description      string  `json:"description"`
	IntroductionText string  `json:"introduction_text"`
	PostLabel        string  `json:"post_label,omitempty"`
	Slug             string  `json:"slug,omitempty"`

	FeaturedImage *Media  `json:"featured_image,omitempty"`
	Gallery       []Media `json:"gallery,omitempty"`

	FeaturesMain          []FeatureNode `json:"features_main,omitempty"`
	Includes              []RichNode    `json:"includes,omitempty"`
	WhatToBring           []RichNode    `json:"what_to_bring,omitempty"`
	AdditionalInformation []RichNode    `json:"additional_information,omitempty"`

	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`

	Itinerary          []ItineraryItem `json:"itenary,omitempty"`
	FAQMain            []FAQItem       `json:"faq_main,omitempty"`
	NotesMain          []NoteItem      `json:"notes_main,omitempty"`
	MainImportantNotes *ImportantNote  `json:"main_important_notes,omitempty"`
	GalleryMain        []GalleryEntry  `json:"gallery_main,omitempty"`

	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}
