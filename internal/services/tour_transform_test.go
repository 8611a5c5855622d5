package services

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honesttour/internal/models/cms_models"
	"honesttour/pkg/utils"
)

func TestExtractRichText(t *testing.T) {
	tests := []struct {
		name  string
		nodes []cms_models.RichNode
		want  []string
	}{
		{
			name:  "empty tree",
			nodes: nil,
			want:  []string{},
		},
		{
			name: "paragraph with text leaves",
			nodes: []cms_models.RichNode{
				{Type: cms_models.NodeParagraph, Children: []cms_models.RichNode{
					{Type: cms_models.NodeText, Text: "  Hotel pickup  "},
					{Type: cms_models.NodeText, Text: "Lunch"},
				}},
			},
			want: []string{"Hotel pickup", "Lunch"},
		},
		{
			name: "list items join child texts with spaces",
			nodes: []cms_models.RichNode{
				{Type: cms_models.NodeList, Children: []cms_models.RichNode{
					{Type: cms_models.NodeListItem, Children: []cms_models.RichNode{
						{Type: cms_models.NodeText, Text: "Private"},
						{Type: cms_models.NodeText, Text: "transport", Bold: true},
					}},
					{Type: cms_models.NodeListItem, Children: []cms_models.RichNode{
						{Type: cms_models.NodeText, Text: "Entrance tickets"},
					}},
				}},
			},
			want: []string{"Private transport", "Entrance tickets"},
		},
		{
			name: "duplicates keep first-seen order",
			nodes: []cms_models.RichNode{
				{Type: cms_models.NodeText, Text: "Guide"},
				{Type: cms_models.NodeText, Text: "Water"},
				{Type: cms_models.NodeText, Text: "Guide"},
			},
			want: []string{"Guide", "Water"},
		},
		{
			name: "whitespace-only leaves are dropped",
			nodes: []cms_models.RichNode{
				{Type: cms_models.NodeText, Text: "   "},
				{Type: cms_models.NodeText, Text: "Snorkel gear"},
			},
			want: []string{"Snorkel gear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractRichText(tt.nodes))
		})
	}
}

func TestResolveImageURL(t *testing.T) {
	tr := newTourTransformer("http://localhost:1337/")

	tests := []struct {
		name     string
		media    *cms_models.Media
		category string
		want     string
	}{
		{
			name:  "absolute url passes through",
			media: &cms_models.Media{URL: "https://cdn.example.com/a.jpg"},
			want:  "https://cdn.example.com/a.jpg",
		},
		{
			name:  "relative upload path gets the media origin",
			media: &cms_models.Media{URL: "/uploads/a.jpg"},
			want:  "http://localhost:1337/uploads/a.jpg",
		},
		{
			name:     "missing media falls back by category",
			media:    nil,
			category: "Temple",
			want:     fallbackImages["temple"],
		},
		{
			name:     "unknown category falls back to default",
			media:    nil,
			category: "Submarine",
			want:     fallbackImages["default"],
		},
		{
			name:  "empty url treated as missing",
			media: &cms_models.Media{URL: ""},
			want:  fallbackImages["default"],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.resolveImageURL(tt.media, tt.category))
		})
	}
}

func TestResolveImagesPriority(t *testing.T) {
	tr := newTourTransformer("http://localhost:1337")

	base := cms_models.Tour{
		GalleryMain:   []cms_models.GalleryEntry{{URL: "https://x/1.jpg"}, {URL: "https://x/2.jpg"}},
		Gallery:       []cms_models.Media{{URL: "/uploads/g1.jpg"}},
		FeaturedImage: &cms_models.Media{URL: "/uploads/f.jpg"},
	}

	got := tr.resolveImages(base, "Beach")
	assert.Equal(t, []string{"https://x/1.jpg", "https://x/2.jpg"}, got)

	base.GalleryMain = nil
	got = tr.resolveImages(base, "Beach")
	assert.Equal(t, []string{"http://localhost:1337/uploads/g1.jpg"}, got)

	base.Gallery = nil
	got = tr.resolveImages(base, "Beach")
	assert.Equal(t, []string{"http://localhost:1337/uploads/f.jpg"}, got)

	base.FeaturedImage = nil
	got = tr.resolveImages(base, "Beach")
	assert.Equal(t, []string{fallbackImages["beach"]}, got)
}

func TestExtractAmenities(t *testing.T) {
	tr := newTourTransformer("")

	t.Run("tagged feature objects map directly", func(t *testing.T) {
		tour := cms_models.Tour{FeaturesMain: []cms_models.FeatureNode{
			{Features: "WiFi"}, {Features: "Pool"},
		}}
		assert.Equal(t, []string{"WiFi", "Pool"}, tr.extractAmenities(tour))
	})

	t.Run("rich nodes go through the extractor", func(t *testing.T) {
		tour := cms_models.Tour{FeaturesMain: []cms_models.FeatureNode{
			{Type: cms_models.NodeParagraph, Children: []cms_models.RichNode{
				{Type: cms_models.NodeText, Text: "Sunset dinner"},
			}},
		}}
		assert.Equal(t, []string{"Sunset dinner"}, tr.extractAmenities(tour))
	})

	t.Run("empty features fall back to includes", func(t *testing.T) {
		tour := cms_models.Tour{Includes: []cms_models.RichNode{
			{Type: cms_models.NodeText, Text: "Breakfast"},
		}}
		assert.Equal(t, []string{"Breakfast"}, tr.extractAmenities(tour))
	})

	t.Run("capped at six", func(t *testing.T) {
		features := make([]cms_models.FeatureNode, 8)
		for i := range features {
			features[i] = cms_models.FeatureNode{Features: string(rune('a' + i))}
		}
		got := tr.extractAmenities(cms_models.Tour{FeaturesMain: features})
		assert.Len(t, got, 6)
	})

	t.Run("nothing survives yields the defaults", func(t *testing.T) {
		assert.Equal(t, defaultAmenities, tr.extractAmenities(cms_models.Tour{}))
	})
}

func TestSynthesizedRatingBounds(t *testing.T) {
	tr := newTourTransformer("")

	for _, price := range []float64{0, 25, 100, 500, 2000} {
		for i := 0; i < 50; i++ {
			rating := tr.synthesizeRating(price)
			assert.GreaterOrEqual(t, rating, 4.2)
			assert.LessOrEqual(t, rating, 5.2)
			// one decimal place
			assert.Equal(t, rating, math.Round(rating*10)/10)

			count := tr.synthesizeReviewCount(rating)
			assert.GreaterOrEqual(t, count, 1000)
			assert.Less(t, count, 6000)
		}
	}
}

func TestTransformConcurrent(t *testing.T) {
	tr := newTourTransformer("http://localhost:1337")
	tour := cms_models.Tour{Title: "Day Trip", Location: "Nusa Penida", Price: 45}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				view, err := tr.Transform(tour)
				if err != nil {
					t.Errorf("Transform: %v", err)
					return
				}
				if view.Rating < 4.2 || view.Rating > 5.2 {
					t.Errorf("rating out of bounds: %v", view.Rating)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTransformRequiresTitleAndLocation(t *testing.T) {
	tr := newTourTransformer("")

	_, err := tr.Transform(cms_models.Tour{Location: "Bali"})
	assert.ErrorIs(t, err, utils.ErrMalformedTour)

	_, err = tr.Transform(cms_models.Tour{Title: "Ubud Tour"})
	assert.ErrorIs(t, err, utils.ErrMalformedTour)
}

func TestTransformCMSValuesWin(t *testing.T) {
	tr := newTourTransformer("")

	view, err := tr.Transform(cms_models.Tour{
		ID:          7,
		Title:       "Ubud Jungle Tour",
		Location:    "Ubud, Bali",
		PostLabel:   "Temple",
		Price:       85,
		Rating:      4.6,
		ReviewCount: 1234,
	})
	require.NoError(t, err)

	assert.Equal(t, "Temple", view.Category)
	assert.Equal(t, 4.6, view.Rating)
	assert.Equal(t, 1234, view.ReviewCount)
	assert.Equal(t, view.Images[0], view.Image)
}

func TestTransformDefaultsCategory(t *testing.T) {
	tr := newTourTransformer("")

	view, err := tr.Transform(cms_models.Tour{Title: "Day Trip", Location: "Nusa Penida"})
	require.NoError(t, err)
	assert.Equal(t, defaultCategory, view.Category)
}
