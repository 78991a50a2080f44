package apper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/internal/domain"
)

// Policy controls how the mapper treats records that do not coerce
// cleanly.
type Policy int

const (
	// PolicyLenient substitutes zero values for unparsable numerics and
	// empty slices for unparsable list fields, logging each at warn
	// level. This matches the store's lossy read semantics.
	PolicyLenient Policy = iota

	// PolicyStrict returns a wrapped domain.ErrInvalidRecord instead of
	// defaulting, so callers can reject or quarantine bad records.
	PolicyStrict
)

// Mapper converts between the store's flat field-per-column records
// and domain entities. It is a pure transform; the only side effect is
// warn logging under the lenient policy.
type Mapper struct {
	policy Policy
}

// NewMapper creates a mapper with the given coercion policy.
func NewMapper(policy Policy) *Mapper {
	return &Mapper{policy: policy}
}

// ProductFromRecord converts a raw product record to a domain Product.
// A record without an Id is invalid under both policies.
func (m *Mapper) ProductFromRecord(rec domain.RawRecord) (domain.Product, error) {
	r, err := m.newReader(rec, domain.KindProduct)
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:          r.id,
		Name:        r.str(FieldName),
		Brand:       r.str(FieldBrand),
		Category:    r.str(FieldCategory),
		Subcategory: r.str(FieldSubcategory),
		Price:       r.float(FieldPrice),
		SalePrice:   r.optFloat(FieldSalePrice),
		Images:      r.stringList(FieldImages),
		Description: r.str(FieldDescription),
		Ingredients: r.stringList(FieldIngredients),
		Rating:      r.float(FieldRating),
		ReviewCount: r.int(FieldReviewCount),
		InStock:     r.boolean(FieldInStock),
		Tags:        r.stringList(FieldTags),
	}
	return p, r.err()
}

// CategoryFromRecord converts a raw category record to a domain Category.
func (m *Mapper) CategoryFromRecord(rec domain.RawRecord) (domain.Category, error) {
	r, err := m.newReader(rec, domain.KindCategory)
	if err != nil {
		return domain.Category{}, err
	}

	c := domain.Category{
		ID:            r.id,
		Name:          r.str(FieldName),
		Slug:          r.str(FieldSlug),
		Description:   r.str(FieldDescription),
		Image:         r.str(FieldImage),
		Subcategories: r.subcategoryList(FieldSubcategories),
	}
	return c, r.err()
}

// CollectionFromRecord converts a raw collection record to a domain Collection.
func (m *Mapper) CollectionFromRecord(rec domain.RawRecord) (domain.Collection, error) {
	r, err := m.newReader(rec, domain.KindCollection)
	if err != nil {
		return domain.Collection{}, err
	}

	c := domain.Collection{
		ID:          r.id,
		Name:        r.str(FieldName),
		Slug:        r.str(FieldSlug),
		Description: r.str(FieldDescription),
		Image:       r.str(FieldImage),
		Featured:    r.boolean(FieldFeatured),
		ProductIDs:  r.stringList(FieldProductIDs),
	}
	return c, r.err()
}

// ReviewFromRecord converts a raw review record to a domain Review.
func (m *Mapper) ReviewFromRecord(rec domain.RawRecord) (domain.Review, error) {
	r, err := m.newReader(rec, domain.KindReview)
	if err != nil {
		return domain.Review{}, err
	}

	rv := domain.Review{
		ID:           r.id,
		ProductID:    r.str(FieldProductID),
		Rating:       r.int(FieldRating),
		Title:        r.str(FieldTitle),
		Content:      r.str(FieldContent),
		ReviewerName: r.str(FieldReviewerName),
		Date:         r.str(FieldDate),
		Helpful:      r.int(FieldHelpful),
	}
	return rv, r.err()
}

// ProductPatchToRecord emits a raw record containing only the fields
// set on the patch. Fields left nil are not written, preserving the
// store's partial-update semantics. The caller adds the Id for updates.
func (m *Mapper) ProductPatchToRecord(patch domain.ProductPatch) domain.RawRecord {
	rec := domain.RawRecord{}
	setString(rec, FieldName, patch.Name)
	setString(rec, FieldBrand, patch.Brand)
	setString(rec, FieldCategory, patch.Category)
	setString(rec, FieldSubcategory, patch.Subcategory)
	setFloat(rec, FieldPrice, patch.Price)
	setFloat(rec, FieldSalePrice, patch.SalePrice)
	setList(rec, FieldImages, patch.Images)
	setString(rec, FieldDescription, patch.Description)
	setList(rec, FieldIngredients, patch.Ingredients)
	setFloat(rec, FieldRating, patch.Rating)
	setInt(rec, FieldReviewCount, patch.ReviewCount)
	setBool(rec, FieldInStock, patch.InStock)
	setList(rec, FieldTags, patch.Tags)
	return rec
}

// CategoryPatchToRecord emits a raw record for a category patch.
func (m *Mapper) CategoryPatchToRecord(patch domain.CategoryPatch) domain.RawRecord {
	rec := domain.RawRecord{}
	setString(rec, FieldName, patch.Name)
	setString(rec, FieldSlug, patch.Slug)
	setString(rec, FieldDescription, patch.Description)
	setString(rec, FieldImage, patch.Image)
	setList(rec, FieldSubcategories, patch.Subcategories)
	return rec
}

// CollectionPatchToRecord emits a raw record for a collection patch.
func (m *Mapper) CollectionPatchToRecord(patch domain.CollectionPatch) domain.RawRecord {
	rec := domain.RawRecord{}
	setString(rec, FieldName, patch.Name)
	setString(rec, FieldSlug, patch.Slug)
	setString(rec, FieldDescription, patch.Description)
	setString(rec, FieldImage, patch.Image)
	setBool(rec, FieldFeatured, patch.Featured)
	setList(rec, FieldProductIDs, patch.ProductIDs)
	return rec
}

// ReviewToRecord builds the storage record for a new review. The date
// and zeroed helpful counter are stamped here, not taken from the
// caller.
func (m *Mapper) ReviewToRecord(draft domain.NewReview, date string) domain.RawRecord {
	return domain.RawRecord{
		FieldProductID:    draft.ProductID,
		FieldRating:       draft.Rating,
		FieldTitle:        draft.Title,
		FieldContent:      draft.Content,
		FieldReviewerName: draft.ReviewerName,
		FieldDate:         date,
		FieldHelpful:      0,
	}
}

// recordReader walks one raw record, collecting coercion problems.
type recordReader struct {
	rec    domain.RawRecord
	kind   string
	id     int
	policy Policy
	errs   []error
}

func (m *Mapper) newReader(rec domain.RawRecord, kind string) (*recordReader, error) {
	id, ok := recordID(rec)
	if !ok {
		return nil, fmt.Errorf("%w: %s record has no Id", domain.ErrInvalidRecord, kind)
	}
	return &recordReader{rec: rec, kind: kind, id: id, policy: m.policy}, nil
}

// err returns the joined coercion errors under the strict policy and
// nil under the lenient one.
func (r *recordReader) err() error {
	if r.policy != PolicyStrict || len(r.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, errors.Join(r.errs...))
}

func (r *recordReader) fail(field, format string, args ...any) {
	if r.policy == PolicyStrict {
		r.errs = append(r.errs, fmt.Errorf("%s: "+format, append([]any{field}, args...)...))
		return
	}
	log.WithFields(log.Fields{
		"kind":  r.kind,
		"id":    r.id,
		"field": field,
	}).Warnf("record coercion: "+format, args...)
}

func (r *recordReader) str(field string) string {
	raw, ok := r.rec[field]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		r.fail(field, "expected string, got %T", raw)
		return ""
	}
	return s
}

func (r *recordReader) float(field string) float64 {
	raw, ok := r.rec[field]
	if !ok || raw == nil {
		return 0
	}
	v, err := toFloat(raw)
	if err != nil {
		r.fail(field, "%v", err)
		return 0
	}
	return v
}

func (r *recordReader) optFloat(field string) *float64 {
	raw, ok := r.rec[field]
	if !ok || raw == nil || raw == "" {
		return nil
	}
	v, err := toFloat(raw)
	if err != nil {
		r.fail(field, "%v", err)
		return nil
	}
	return &v
}

func (r *recordReader) int(field string) int {
	raw, ok := r.rec[field]
	if !ok || raw == nil {
		return 0
	}
	v, err := toFloat(raw)
	if err != nil {
		r.fail(field, "%v", err)
		return 0
	}
	return int(v)
}

func (r *recordReader) boolean(field string) bool {
	raw, ok := r.rec[field]
	if !ok || raw == nil {
		return false
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(field, "cannot parse %q as bool", v)
			return false
		}
		return b
	default:
		r.fail(field, "expected bool, got %T", raw)
		return false
	}
}

// stringList decodes a serialized text field into an ordered string
// slice. Absent or unparsable data yields an empty slice; decode
// errors never propagate past the strict policy.
func (r *recordReader) stringList(field string) []string {
	items, ok := r.listItems(field)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			r.fail(field, "list item is %T, not string", item)
		}
	}
	return out
}

func (r *recordReader) subcategoryList(field string) []domain.Subcategory {
	raw, ok := r.rec[field]
	if !ok || raw == nil || raw == "" {
		return []domain.Subcategory{}
	}
	s, ok := raw.(string)
	if !ok {
		r.fail(field, "expected serialized list, got %T", raw)
		return []domain.Subcategory{}
	}
	var subs []domain.Subcategory
	if err := json.Unmarshal([]byte(s), &subs); err != nil {
		r.fail(field, "cannot decode list: %v", err)
		return []domain.Subcategory{}
	}
	return subs
}

func (r *recordReader) listItems(field string) ([]any, bool) {
	raw, ok := r.rec[field]
	if !ok || raw == nil || raw == "" {
		return nil, false
	}
	s, ok := raw.(string)
	if !ok {
		// Some store deployments return the list already decoded.
		if items, ok := raw.([]any); ok {
			return items, true
		}
		r.fail(field, "expected serialized list, got %T", raw)
		return nil, false
	}
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		r.fail(field, "cannot decode list: %v", err)
		return nil, false
	}
	return items, true
}

func recordID(rec domain.RawRecord) (int, bool) {
	raw, ok := rec[FieldID]
	if !ok || raw == nil {
		return 0, false
	}
	v, err := toFloat(raw)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as number", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
}

func setString(rec domain.RawRecord, field string, v *string) {
	if v != nil {
		rec[field] = *v
	}
}

func setFloat(rec domain.RawRecord, field string, v *float64) {
	if v != nil {
		rec[field] = *v
	}
}

func setInt(rec domain.RawRecord, field string, v *int) {
	if v != nil {
		rec[field] = *v
	}
}

func setBool(rec domain.RawRecord, field string, v *bool) {
	if v != nil {
		rec[field] = *v
	}
}

// setList serializes a list-valued patch field back to the store's
// text encoding.
func setList[T any](rec domain.RawRecord, field string, v *[]T) {
	if v == nil {
		return
	}
	encoded, err := json.Marshal(*v)
	if err != nil {
		// Marshalling slices of plain structs and strings cannot fail;
		// keep the field out of the patch rather than corrupt it.
		log.WithField("field", field).Warnf("cannot encode list field: %v", err)
		return
	}
	rec[field] = string(encoded)
}
