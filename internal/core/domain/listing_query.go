package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Identity describes the authenticated caller. A nil *Identity means the
// request is anonymous.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// Defaults and bounds for the listing endpoint.
const (
	DefaultPage   = 1
	DefaultLimit  = 12
	MaxLimit      = 50
	DefaultStatus = StatusAvailable
	SortKeyNewest = "newest"
)

// ListingQuery is the normalized form of the raw query parameters.
// Every field except SortKey, Status, Page and Limit is optional; a zero
// value (or nil pointer) means the caller did not supply the parameter.
type ListingQuery struct {
	Category     string
	Type         string
	Location     string
	PriceMin     *float64
	PriceMax     *float64
	BedroomsMin  *int
	BathroomsMin *int
	SizeMin      *float64
	SizeMax      *float64
	Search       string
	SortKey      string
	Status       string
	Page         int
	Limit        int

	// OwnerID is set only when myProperties=true and the caller is
	// authenticated; an anonymous myProperties request is ignored.
	OwnerID *uuid.UUID
}

// NormalizeListingQuery converts the raw, all-string parameter bag into a
// typed ListingQuery. Malformed values never produce an error: numeric
// parse failures and unrecognized enum values are dropped so the listing
// degrades to a broader result set instead of failing.
func NormalizeListingQuery(raw map[string]string, identity *Identity) ListingQuery {
	q := ListingQuery{
		Category:     normalizeEnum(raw["category"], ValidCategories),
		Type:         normalizeEnum(raw["type"], ValidPropertyTypes),
		Location:     strings.TrimSpace(raw["location"]),
		PriceMin:     parseFloatParam(raw["minPrice"]),
		PriceMax:     parseFloatParam(raw["maxPrice"]),
		BedroomsMin:  parseIntParam(raw["bedrooms"]),
		BathroomsMin: parseIntParam(raw["bathrooms"]),
		SizeMin:      parseFloatParam(raw["minSize"]),
		SizeMax:      parseFloatParam(raw["maxSize"]),
		Search:       strings.TrimSpace(raw["search"]),
		SortKey:      normalizeSortKey(raw["sortBy"]),
		Status:       normalizeStatus(raw["status"]),
		Page:         parsePage(raw["page"]),
		Limit:        parseLimit(raw["limit"]),
	}

	if identity != nil && strings.EqualFold(raw["myProperties"], "true") {
		ownerID := identity.UserID
		q.OwnerID = &ownerID
	}

	return q
}

// FilterSpec translates the normalized query into the store-agnostic
// conjunction of predicate clauses. The result is deterministic for
// identical input.
func (q ListingQuery) FilterSpec() FilterSpec {
	return FilterSpec{
		ActiveOnly:       true,
		OwnerID:          q.OwnerID,
		Category:         q.Category,
		Type:             q.Type,
		LocationContains: q.Location,
		PriceMin:         q.PriceMin,
		PriceMax:         q.PriceMax,
		BedroomsMin:      q.BedroomsMin,
		BathroomsMin:     q.BathroomsMin,
		SizeMin:          q.SizeMin,
		SizeMax:          q.SizeMax,
		Status:           q.Status,
		Search:           q.Search,
	}
}

// Offset returns the number of records to skip for the requested page.
func (q ListingQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func normalizeEnum(value string, valid map[string]struct{}) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if _, ok := valid[value]; !ok {
		return ""
	}
	return value
}

// normalizeStatus falls back to the "available" default both when the
// parameter is absent and when it names an unknown status.
func normalizeStatus(value string) string {
	if s := normalizeEnum(value, ValidStatuses); s != "" {
		return s
	}
	return DefaultStatus
}

func normalizeSortKey(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if _, ok := sortSpecs[value]; !ok {
		return SortKeyNewest
	}
	return value
}

func parsePage(value string) int {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

func parseLimit(value string) int {
	limit, err := strconv.Atoi(value)
	if err != nil {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func parseFloatParam(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntParam(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}
