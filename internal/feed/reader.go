// Package feed reads static per-category product dumps and normalizes their
// loose, optional-everywhere shape into typed records at the ingestion
// boundary, so the rest of the service never touches raw feed JSON.
package feed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Record is one normalized product from a feed file.
type Record struct {
	ID              string
	NameEn          string
	NameAr          string
	Price           float64
	OriginalPrice   float64
	Images          []string
	Rating          float64
	Reviews         int
	DiscountPercent float64
	InStock         bool
	Tags            []string
	CategoryName    string
	CategorySlug    string
	BrandName       string
	BrandSlug       string
	Refurbished     bool
}

// dump is the outer envelope of a feed file: search-export style with one
// result set holding the hits.
type dump struct {
	Results []struct {
		Hits []hit `json:"hits"`
	} `json:"results"`
}

// hit is the raw product shape. Nearly every field is optional and several
// change type between files, hence the json.RawMessage and json.Number use.
type hit struct {
	ObjectID         json.Number     `json:"objectID"`
	PostTitle        string          `json:"post_title"`
	PostTitleAr      string          `json:"post_title_ar"`
	Price            float64         `json:"price"`
	RegularPrice     json.Number     `json:"regular_price"`
	Discount         float64         `json:"discount"`
	InStock          int             `json:"in_stock"`
	Images           json.RawMessage `json:"images"`
	AdditionalImages []string        `json:"additional_images"`
	RatingReviews    *struct {
		Rating  float64 `json:"rating"`
		Reviews int     `json:"reviews"`
	} `json:"rating_reviews"`
	Tags []struct {
		Title string `json:"title"`
	} `json:"tags"`
	Taxonomies *struct {
		ProductCat   []string `json:"product_cat"`
		ProductBrand []string `json:"product_brand"`
		Hierarchical *struct {
			ProductCat *struct {
				Lvl1 string `json:"lvl1"`
			} `json:"product_cat"`
		} `json:"taxonomies_hierarchical"`
	} `json:"taxonomies"`
}

// LoadDir reads every .json file in dir and returns the normalized records.
// Unparsable files are skipped with a log line; a missing directory is an
// error.
func LoadDir(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed directory %s: %w", dir, err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fileRecords, err := loadFile(path)
		if err != nil {
			log.Printf("Skipping feed file %s: %v", entry.Name(), err)
			continue
		}
		records = append(records, fileRecords...)
	}
	return records, nil
}

func loadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var d dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse feed file: %w", err)
	}
	if len(d.Results) == 0 {
		return nil, nil
	}

	refurbishedFile := strings.Contains(strings.ToLower(filepath.Base(path)), "refurbished")

	records := make([]Record, 0, len(d.Results[0].Hits))
	for _, h := range d.Results[0].Hits {
		r, ok := normalize(h, refurbishedFile)
		if !ok {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// normalize maps one raw hit onto a Record. Hits without an ID, a title or a
// positive price are dropped.
func normalize(h hit, refurbishedFile bool) (Record, bool) {
	id := h.ObjectID.String()
	if id == "" || h.PostTitle == "" || h.Price <= 0 {
		return Record{}, false
	}

	r := Record{
		ID:              id,
		NameEn:          h.PostTitle,
		NameAr:          h.PostTitleAr,
		Price:           h.Price,
		DiscountPercent: h.Discount,
		InStock:         h.InStock == 1,
	}
	if r.NameAr == "" {
		r.NameAr = h.PostTitle
	}
	if orig, err := strconv.ParseFloat(h.RegularPrice.String(), 64); err == nil {
		r.OriginalPrice = orig
	}
	if h.RatingReviews != nil {
		r.Rating = h.RatingReviews.Rating
		r.Reviews = h.RatingReviews.Reviews
	}

	// images can be a single URL string or an array of URLs.
	var single string
	var many []string
	if err := json.Unmarshal(h.Images, &many); err != nil {
		if err := json.Unmarshal(h.Images, &single); err == nil && single != "" {
			many = []string{single}
		}
	}
	many = append(many, h.AdditionalImages...)
	for _, img := range many {
		if img != "" {
			r.Images = append(r.Images, img)
		}
	}

	for _, t := range h.Tags {
		if t.Title != "" {
			r.Tags = append(r.Tags, t.Title)
		}
	}

	title := strings.ToLower(h.PostTitle)
	r.Refurbished = refurbishedFile ||
		strings.Contains(title, "renewed") ||
		strings.Contains(title, "refurbished") ||
		hasTag(r.Tags, "renewed")

	r.CategoryName = categoryName(h, r.Refurbished)
	r.CategorySlug = Slugify(r.CategoryName)
	r.BrandName = brandName(h)
	r.BrandSlug = Slugify(r.BrandName)

	return r, true
}

func categoryName(h hit, refurbished bool) string {
	if refurbished {
		return "Used iPhones"
	}
	if h.Taxonomies != nil {
		if h.Taxonomies.Hierarchical != nil && h.Taxonomies.Hierarchical.ProductCat != nil &&
			h.Taxonomies.Hierarchical.ProductCat.Lvl1 != "" {
			return h.Taxonomies.Hierarchical.ProductCat.Lvl1
		}
		if len(h.Taxonomies.ProductCat) > 0 {
			return strings.Join(h.Taxonomies.ProductCat, " > ")
		}
	}
	return "Uncategorized"
}

func brandName(h hit) string {
	if h.Taxonomies != nil && len(h.Taxonomies.ProductBrand) > 0 && h.Taxonomies.ProductBrand[0] != "" {
		return h.Taxonomies.ProductBrand[0]
	}
	return "Unknown"
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases, collapses non-alphanumeric runs to single dashes and
// caps the result at 190 characters, matching the stored slug column width.
func Slugify(name string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 190 {
		slug = slug[:190]
	}
	return slug
}
