package domain

// Record kinds known to the record store. Each kind corresponds to
// one entity type.
const (
	KindProduct    = "product_c"
	KindCategory   = "category_c"
	KindCollection = "collection_c"
	KindReview     = "review_c"
)

// Operators understood by the record store's query language.
const (
	OpEqualTo              = "EqualTo"
	OpNotEqualTo           = "NotEqualTo"
	OpExactMatch           = "ExactMatch"
	OpGreaterThanOrEqualTo = "GreaterThanOrEqualTo"
	OpLessThanOrEqualTo    = "LessThanOrEqualTo"
	OpContains             = "Contains"
)

// Sort directions.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// RawRecord is an untyped record as the store returns it: one entry
// per storage column. The store makes no shape guarantee, so the
// mapper validates before converting.
type RawRecord map[string]any

// FieldSpec selects one field in a query. The nesting mirrors the
// store's wire format.
type FieldSpec struct {
	Field FieldName `json:"field"`
}

// FieldName names a storage column.
type FieldName struct {
	Name string `json:"Name"`
}

// Fields builds a field selection list from column names.
func Fields(names ...string) []FieldSpec {
	specs := make([]FieldSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, FieldSpec{Field: FieldName{Name: name}})
	}
	return specs
}

// Condition is a single top-level predicate; the store ANDs them.
type Condition struct {
	FieldName string `json:"FieldName"`
	Operator  string `json:"Operator"`
	Values    []any  `json:"Values"`
}

// WhereGroup combines sub-groups with an explicit operator, for
// predicates the flat where list cannot express (OR across fields).
// Note the group conditions use lower-cased key names on the wire.
type WhereGroup struct {
	Operator  string     `json:"operator"`
	SubGroups []SubGroup `json:"subGroups"`
}

// SubGroup is one branch of a WhereGroup.
type SubGroup struct {
	Conditions []GroupCondition `json:"conditions"`
}

// GroupCondition is a predicate inside a WhereGroup.
type GroupCondition struct {
	FieldName string `json:"fieldName"`
	Operator  string `json:"operator"`
	Values    []any  `json:"values"`
}

// SortOrder orders results by one field.
type SortOrder struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

// PagingInfo limits and offsets the result window.
type PagingInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// QueryDescriptor is the declarative read request sent to the record
// store.
type QueryDescriptor struct {
	Fields      []FieldSpec  `json:"fields"`
	Where       []Condition  `json:"where,omitempty"`
	WhereGroups []WhereGroup `json:"whereGroups,omitempty"`
	OrderBy     []SortOrder  `json:"orderBy,omitempty"`
	PagingInfo  *PagingInfo  `json:"pagingInfo,omitempty"`
}

// QueryResponse is the envelope for list reads. Success=false means
// the operation failed and Data must be ignored.
type QueryResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    []RawRecord `json:"data"`
}

// SingleResponse is the envelope for by-id reads.
type SingleResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    RawRecord `json:"data"`
}

// RecordPayload carries records for create and update calls.
type RecordPayload struct {
	Records []RawRecord `json:"records"`
}

// DeletePayload names the records to delete.
type DeletePayload struct {
	RecordIDs []int `json:"RecordIds"`
}

// WriteResult is the per-record outcome inside a WriteResponse.
type WriteResult struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    RawRecord `json:"data"`
}

// WriteResponse is the envelope for create/update/delete calls.
type WriteResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Results []WriteResult `json:"results,omitempty"`
}
