package repository

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// Comparator enumerates the supported filter operations.
type Comparator int

const (
	OpEq Comparator = iota
	OpGt
	OpGte
	OpLt
	OpLte
	OpContains
)

var comparators = map[string]Comparator{
	"gt":    OpGt,
	"gte":   OpGte,
	"lt":    OpLt,
	"lte":   OpLte,
	"regex": OpContains,
}

// Filter is a single typed predicate over a book field.
type Filter struct {
	Field string
	Op    Comparator
	Value any
}

type SortKey struct {
	Field string
	Desc  bool
}

// ListQuery is an immutable description of a book list request. The With*
// helpers return refined copies; Compile translates the final value into a
// gorm query exactly once.
type ListQuery struct {
	Filters []Filter
	Keyword string
	Sort    []SortKey
	Fields  []string
	Page    int
	Limit   int
}

// bookColumns maps client-facing field names to columns. It doubles as the
// allow-list: anything absent never reaches the generated SQL.
var bookColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"author":      "author",
	"genre":       "genre",
	"isbn":        "isbn",
	"description": "description",
	"copies":      "copies",
	"available":   "available",
	"image":       "image",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

func NewListQuery() ListQuery {
	return ListQuery{Page: defaultPage, Limit: defaultLimit}
}

func (q ListQuery) WithFilter(field string, op Comparator, value any) ListQuery {
	filters := make([]Filter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, Filter{Field: field, Op: op, Value: value})
	return q
}

func (q ListQuery) WithKeyword(keyword string) ListQuery {
	q.Keyword = keyword
	return q
}

func (q ListQuery) WithSort(keys ...SortKey) ListQuery {
	q.Sort = append([]SortKey(nil), keys...)
	return q
}

func (q ListQuery) WithFields(fields ...string) ListQuery {
	q.Fields = append([]string(nil), fields...)
	return q
}

// WithPage clamps page to >= 1 and limit to [1, 100].
func (q ListQuery) WithPage(page, limit int) ListQuery {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	q.Page = page
	q.Limit = limit
	return q
}

// reserved params are consumed structurally; everything else is a filter.
var reservedParams = map[string]bool{
	"page":    true,
	"limit":   true,
	"sort":    true,
	"fields":  true,
	"keyword": true,
}

// ParseListQuery builds a ListQuery from raw request parameters. Bare
// parameters become equality filters; "field[op]" keys with op in
// {gt, gte, lt, lte, regex} become comparison filters. Unparseable numbers
// fall back to their defaults.
func ParseListQuery(values url.Values) ListQuery {
	q := NewListQuery()

	q = q.WithPage(intParam(values, "page", defaultPage), intParam(values, "limit", defaultLimit))

	if kw := values.Get("keyword"); kw != "" {
		q = q.WithKeyword(kw)
	}

	if sort := values.Get("sort"); sort != "" {
		q = q.WithSort(parseSortKeys(sort)...)
	}

	if fields := values.Get("fields"); fields != "" {
		q = q.WithFields(splitList(fields)...)
	}

	for key, vals := range values {
		if reservedParams[key] || len(vals) == 0 {
			continue
		}
		field, op := parseFilterKey(key)
		q = q.WithFilter(field, op, coerceValue(field, vals[0]))
	}

	return q
}

// Compile applies filter, search, sort, field selection and pagination, in
// that order, onto a base book query.
func (q ListQuery) Compile(db *gorm.DB) *gorm.DB {
	db = q.CompileCount(db)

	for _, key := range q.sortOrDefault() {
		column, ok := bookColumns[key.Field]
		if !ok {
			continue
		}
		if key.Desc {
			db = db.Order(column + " DESC")
		} else {
			db = db.Order(column + " ASC")
		}
	}

	if columns := q.selectColumns(); len(columns) > 0 {
		db = db.Select(columns)
	}

	return db.Offset((q.Page - 1) * q.Limit).Limit(q.Limit)
}

// CompileCount applies only the predicate steps, for totals.
func (q ListQuery) CompileCount(db *gorm.DB) *gorm.DB {
	for _, f := range q.Filters {
		// Column names always come from the allow-list, never from input.
		column, ok := bookColumns[f.Field]
		if !ok {
			// Filters on unknown fields match nothing.
			db = db.Where("1 = 0")
			continue
		}
		switch f.Op {
		case OpGt:
			db = db.Where(column+" > ?", f.Value)
		case OpGte:
			db = db.Where(column+" >= ?", f.Value)
		case OpLt:
			db = db.Where(column+" < ?", f.Value)
		case OpLte:
			db = db.Where(column+" <= ?", f.Value)
		case OpContains:
			db = db.Where("LOWER("+column+") LIKE ?", likePattern(f.Value))
		default:
			db = db.Where(column+" = ?", f.Value)
		}
	}

	if q.Keyword != "" {
		kw := "%" + strings.ToLower(q.Keyword) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(genre) LIKE ?",
			kw, kw, kw,
		)
	}

	return db
}

func (q ListQuery) sortOrDefault() []SortKey {
	if len(q.Sort) > 0 {
		return q.Sort
	}
	return []SortKey{{Field: "createdAt", Desc: true}}
}

func (q ListQuery) selectColumns() []string {
	if len(q.Fields) == 0 {
		return nil
	}

	columns := []string{"id"}
	for _, f := range q.Fields {
		column, ok := bookColumns[f]
		if !ok || column == "id" {
			continue
		}
		columns = append(columns, column)
	}
	return columns
}

// parseFilterKey splits "copies[gte]" into field and comparator. Bare keys
// are equality filters.
func parseFilterKey(key string) (string, Comparator) {
	open := strings.IndexByte(key, '[')
	if open < 1 || !strings.HasSuffix(key, "]") {
		return key, OpEq
	}

	op, ok := comparators[key[open+1:len(key)-1]]
	if !ok {
		// Unknown operator: keep the raw key so the filter matches nothing.
		return key, OpEq
	}
	return key[:open], op
}

func parseSortKeys(sort string) []SortKey {
	var keys []SortKey
	for _, field := range splitList(sort) {
		if strings.HasPrefix(field, "-") {
			keys = append(keys, SortKey{Field: field[1:], Desc: true})
		} else {
			keys = append(keys, SortKey{Field: field})
		}
	}
	return keys
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// coerceValue types raw parameter values according to the target field so
// comparisons work on numeric and boolean columns across drivers. Text
// columns always receive strings, even for numeric-looking input like ISBNs.
func coerceValue(field, s string) any {
	switch field {
	case "copies":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case "available":
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return s
}

func likePattern(v any) string {
	s, ok := v.(string)
	if !ok {
		return "%"
	}
	return "%" + strings.ToLower(s) + "%"
}

func intParam(values url.Values, key string, def int) int {
	s := values.Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
