package response_models

import "honesttour/internal/models/cms_models"

// TourView is the denormalized, UI-ready projection of a CMS tour record.
// All fields are deterministic functions of the record except Rating and
// ReviewCount, which may be synthesized when the CMS carries no real values.
type TourView struct {
	ID          int     `json:"id"`
	DocumentID  string  `json:"document_id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	// Short text for cards, full text for the detail page.
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`

	// First image is the primary card image.
	Image  string   `json:"image"`
	Images []string `json:"images"`

	Amenities []string `json:"amenities"`

	Contact Contact `json:"contact"`
	Hours   string  `json:"hours"`

	Itinerary          []cms_models.ItineraryItem `json:"itinerary,omitempty"`
	FAQ                []cms_models.FAQItem       `json:"faq,omitempty"`
	Notes              []cms_models.NoteItem      `json:"notes,omitempty"`
	MainImportantNotes *cms_models.ImportantNote  `json:"main_important_notes,omitempty"`

	// Flattened plain-text projections of the rich-content trees.
	IncludesText       []string `json:"includes_text"`
	WhatToBringText    []string `json:"what_to_bring_text"`
	AdditionalInfoText []string `json:"additional_info_text"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// FilterMetadata describes the filterable surface of the current tour set.
type FilterMetadata struct {
	Categories []string   `json:"categories"`
	Locations  []string   `json:"locations"`
	PriceRange PriceRange `json:"price_range"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
