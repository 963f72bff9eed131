package postgres

import (
	"fmt"
	"property-service/internal/core/domain"
	"strings"
)

// locationExpr is the flat, searchable form of the structured location
// columns. The engine only knows "location matches a substring"; how the
// store represents the location is this adapter's concern.
const locationExpr = "concat_ws(', ', p.address, p.city, p.state, p.country)"

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0, 8),
		args:       make([]interface{}, 0, 8),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// addRangeFilter appends the lower and upper bound clauses for whichever
// bounds are present.
func (qb *queryBuilder) addRangeFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) addMinFilter(fieldName string, min *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilter translates the store-agnostic FilterSpec into a WHERE
// clause. The clause order is fixed, so identical specs always produce
// the identical query text and argument list.
func applyFilter(filter domain.FilterSpec) (string, []interface{}) {
	qb := newQueryBuilder()

	if filter.ActiveOnly {
		qb.conditions = append(qb.conditions, "p.is_active = true")
	}

	// Owner scoping narrows, it never replaces the activity guard.
	if filter.OwnerID != nil {
		qb.addCondition("%s = $%d", "p.owner_id", *filter.OwnerID)
	}

	if filter.Category != "" {
		qb.addCondition("%s = $%d", "p.category", filter.Category)
	}
	if filter.Type != "" {
		qb.addCondition("%s = $%d", "p.type", filter.Type)
	}

	// Case-insensitive substring match over the flattened location.
	if filter.LocationContains != "" {
		qb.addCondition("%s ILIKE $%d", locationExpr, "%"+filter.LocationContains+"%")
	}

	qb.addRangeFilter("p.price", filter.PriceMin, filter.PriceMax)
	qb.addMinFilter("p.bedrooms", filter.BedroomsMin)
	qb.addMinFilter("p.bathrooms", filter.BathroomsMin)
	qb.addRangeFilter("p.size", filter.SizeMin, filter.SizeMax)

	if filter.Status != "" {
		qb.addCondition("%s = $%d", "p.status", filter.Status)
	}

	// Free-text search is an OR block across the presentation fields,
	// AND-ed against everything above.
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		condition := fmt.Sprintf(
			"(p.title ILIKE $%d OR p.description ILIKE $%d OR %s ILIKE $%d OR p.type ILIKE $%d)",
			qb.argId, qb.argId+1, locationExpr, qb.argId+2, qb.argId+3,
		)
		qb.conditions = append(qb.conditions, condition)
		qb.args = append(qb.args, pattern, pattern, pattern, pattern)
		qb.argId += 4
	}

	return qb.build()
}

var sortColumns = map[string]string{
	domain.SortFieldPrice:     "p.price",
	domain.SortFieldSize:      "p.size",
	domain.SortFieldBedrooms:  "p.bedrooms",
	domain.SortFieldCreatedAt: "p.created_at",
}

// orderClause maps the sort spec onto an ORDER BY. Ties are always
// broken by id so that pagination is reproducible.
func orderClause(sort domain.SortSpec) string {
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = "p.created_at"
	}
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, p.id ASC", column, direction)
}
