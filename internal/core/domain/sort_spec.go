package domain

// Logical sort fields understood by the property store.
const (
	SortFieldPrice     = "price"
	SortFieldSize      = "size"
	SortFieldBedrooms  = "bedrooms"
	SortFieldCreatedAt = "createdAt"
)

// SortSpec is a single ordering directive. Ties are broken by the
// store's native order (id ascending in the SQL adapter) so that
// repeated queries return pages in a reproducible order.
type SortSpec struct {
	Field      string
	Descending bool
}

var sortSpecs = map[string]SortSpec{
	"price-low":   {Field: SortFieldPrice, Descending: false},
	"price-high":  {Field: SortFieldPrice, Descending: true},
	"size-small":  {Field: SortFieldSize, Descending: false},
	"size-large":  {Field: SortFieldSize, Descending: true},
	"bedrooms":    {Field: SortFieldBedrooms, Descending: true},
	SortKeyNewest: {Field: SortFieldCreatedAt, Descending: true},
}

// SortSpecForKey maps a sort key to its ordering directive. Unrecognized
// keys fall back to newest-first, identical to omitting the key.
func SortSpecForKey(key string) SortSpec {
	if spec, ok := sortSpecs[key]; ok {
		return spec
	}
	return sortSpecs[SortKeyNewest]
}
