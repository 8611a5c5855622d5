package services

import (
	"math"
	"math/rand"
	"strings"

	"honesttour/internal/models/cms_models"
	"honesttour/internal/models/response_models"
	"honesttour/pkg/utils"
)

const defaultCategory = "Tour Experience"

var defaultAmenities = []string{"Professional Guide", "Transportation", "Entrance Fees"}

// Category-keyed fallback images used when a tour record carries no media.
var fallbackImages = map[string]string{
	"best seller": "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400&h=300&fit=crop",
	"hotel":       "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=400&h=300&fit=crop",
	"resort":      "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop",
	"temple":      "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=400&h=300&fit=crop",
	"beach":       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=300&fit=crop",
	"tour":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
	"spa":         "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=400&h=300&fit=crop",
	"default":     "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=400&h=300&fit=crop",
}

// tourTransformer maps raw CMS tour records onto view models. Everything it
// produces is a pure function of the input except Rating and ReviewCount,
// which are synthesized with jitter when the record has no real values. One
// transformer serves all requests, so the jitter comes from the top-level
// rand functions, which are safe for concurrent use.
type tourTransformer struct {
	mediaOrigin string
}

func newTourTransformer(mediaOrigin string) *tourTransformer {
	return &tourTransformer{
		mediaOrigin: strings.TrimRight(mediaOrigin, "/"),
	}
}

func (t *tourTransformer) Transform(tour cms_models.Tour) (response_models.TourView, error) {
	if tour.Title == "" || tour.Location == "" {
		return response_models.TourView{}, utils.ErrMalformedTour
	}

	category := tour.PostLabel
	if category == "" {
		category = defaultCategory
	}

	rating := tour.Rating
	if rating <= 0 {
		rating = t.synthesizeRating(tour.Price)
	}
	reviewCount := tour.ReviewCount
	if reviewCount <= 0 {
		reviewCount = t.synthesizeReviewCount(rating)
	}

	images := t.resolveImages(tour, category)

	description := tour.IntroductionText
	if description == "" {
		description = tour.Description
	}

	return response_models.TourView{
		ID:                 tour.ID,
		DocumentID:         tour.DocumentID,
		Name:               tour.Title,
		Location:           tour.Location,
		Category:           category,
		Price:              tour.Price,
		Rating:             rating,
		ReviewCount:        reviewCount,
		Description:        description,
		FullDescription:    tour.Description,
		Image:              images[0],
		Images:             images,
		Amenities:          t.extractAmenities(tour),
		Contact:            response_models.Contact{Phone: "+62 812 3456 7890", Email: "info@thehonesttour.com"},
		Hours:              "8:00 AM - 6:00 PM",
		Itinerary:          tour.Itinerary,
		FAQ:                tour.FAQMain,
		Notes:              tour.NotesMain,
		MainImportantNotes: tour.MainImportantNotes,
		IncludesText:       extractRichText(tour.Includes),
		WhatToBringText:    extractRichText(tour.WhatToBring),
		AdditionalInfoText: extractRichText(tour.AdditionalInformation),
	}, nil
}

// resolveImages returns the ordered image list, first entry primary.
// Priority: gallery_main direct URLs, then the media gallery, then the
// featured image, then the category fallback.
func (t *tourTransformer) resolveImages(tour cms_models.Tour, category string) []string {
	if len(tour.GalleryMain) > 0 {
		urls := make([]string, 0, len(tour.GalleryMain))
		for _, entry := range tour.GalleryMain {
			urls = append(urls, entry.URL)
		}
		return urls
	}

	if len(tour.Gallery) > 0 {
		urls := make([]string, 0, len(tour.Gallery))
		for i := range tour.Gallery {
			urls = append(urls, t.resolveImageURL(&tour.Gallery[i], category))
		}
		return urls
	}

	return []string{t.resolveImageURL(tour.FeaturedImage, category)}
}

// resolveImageURL resolves one media record to a usable URL. Absolute URLs
// pass through, relative upload paths get the media origin prepended, and a
// missing record falls back to the category image table.
func (t *tourTransformer) resolveImageURL(media *cms_models.Media, category string) string {
	if media != nil && media.URL != "" {
		if strings.HasPrefix(media.URL, "/") {
			return t.mediaOrigin + media.URL
		}
		return media.URL
	}

	key := "default"
	if category != "" {
		key = strings.ToLower(category)
	}
	if u, ok := fallbackImages[key]; ok {
		return u
	}
	return fallbackImages["default"]
}

// extractAmenities prefers features_main; tagged feature objects map
// directly, anything else goes through the rich-text extractor. Empty
// features_main falls back to the includes tree. Capped at six entries,
// defaulted when nothing survives.
func (t *tourTransformer) extractAmenities(tour cms_models.Tour) []string {
	var amenities []string

	if len(tour.FeaturesMain) > 0 {
		if tour.FeaturesMain[0].Features != "" {
			for _, entry := range tour.FeaturesMain {
				if entry.Features != "" {
					amenities = append(amenities, entry.Features)
				}
			}
		} else {
			nodes := make([]cms_models.RichNode, 0, len(tour.FeaturesMain))
			for _, entry := range tour.FeaturesMain {
				nodes = append(nodes, entry.AsRichNode())
			}
			amenities = extractRichText(nodes)
		}
	} else {
		amenities = extractRichText(tour.Includes)
	}

	if len(amenities) > 6 {
		amenities = amenities[:6]
	}
	if len(amenities) == 0 {
		out := make([]string, len(defaultAmenities))
		copy(out, defaultAmenities)
		return out
	}
	return amenities
}

// extractRichText flattens a rich-content tree into the de-duplicated list
// of its non-empty text fragments, first-seen order. Text leaves contribute
// their trimmed text; list items contribute their child texts joined by
// single spaces; containers recurse.
func extractRichText(nodes []cms_models.RichNode) []string {
	out := []string{}
	seen := make(map[string]struct{})

	add := func(text string) {
		if text == "" {
			return
		}
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}

	var walk func(node cms_models.RichNode)
	walk = func(node cms_models.RichNode) {
		switch node.Type {
		case cms_models.NodeText:
			add(strings.TrimSpace(node.Text))
		case cms_models.NodeListItem:
			parts := make([]string, 0, len(node.Children))
			for _, child := range node.Children {
				if child.Type == cms_models.NodeText && child.Text != "" {
					parts = append(parts, strings.TrimSpace(child.Text))
				}
			}
			add(strings.TrimSpace(strings.Join(parts, " ")))
		default:
			for _, child := range node.Children {
				walk(child)
			}
		}
	}

	for _, node := range nodes {
		walk(node)
	}
	return out
}

// synthesizeRating backfills a rating for records the CMS stores none for:
// price-derived base capped at 4.9 plus jitter in [0, 0.3), one decimal.
func (t *tourTransformer) synthesizeRating(price float64) float64 {
	base := math.Min(4.2+price/200, 4.9)
	return math.Round((base+rand.Float64()*0.3)*10) / 10
}

func (t *tourTransformer) synthesizeReviewCount(rating float64) int {
	return int(math.Floor(1000 + rating*500 + rand.Float64()*2000))
}
