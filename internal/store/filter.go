package store

// Op is a comparison applied to a single document field.
type Op string

const (
	OpEq  Op = "eq"
	OpNe  Op = "ne"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Clause constrains one field. Filters are built from clauses so the
// catalog code never has to know the store's native query syntax.
type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter is an ordered set of clauses combined with AND. The zero value
// matches every document.
type Filter []Clause

func (f Filter) Eq(field string, value interface{}) Filter {
	return append(f, Clause{Field: field, Op: OpEq, Value: value})
}

func (f Filter) Ne(field string, value interface{}) Filter {
	return append(f, Clause{Field: field, Op: OpNe, Value: value})
}

func (f Filter) Gte(field string, value interface{}) Filter {
	return append(f, Clause{Field: field, Op: OpGte, Value: value})
}

func (f Filter) Lte(field string, value interface{}) Filter {
	return append(f, Clause{Field: field, Op: OpLte, Value: value})
}

// Sort directions for Query.
const (
	SortAsc  = 1
	SortDesc = -1
)

// Query bundles a filter with result shaping. A zero SortField means
// store order; a zero Limit means no explicit cap.
type Query struct {
	Filter    Filter
	SortField string
	SortOrder int
	Limit     int64
}
