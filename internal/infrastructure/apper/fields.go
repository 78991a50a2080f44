package apper

// Storage column names in the record store. Every custom column
// carries the store's "_c" suffix; "Id" is store-assigned.
const (
	FieldID = "Id"

	FieldName        = "name_c"
	FieldBrand       = "brand_c"
	FieldCategory    = "category_c"
	FieldSubcategory = "subcategory_c"
	FieldPrice       = "price_c"
	FieldSalePrice   = "sale_price_c"
	FieldImages      = "images_c"
	FieldDescription = "description_c"
	FieldIngredients = "ingredients_c"
	FieldRating      = "rating_c"
	FieldReviewCount = "review_count_c"
	FieldInStock     = "in_stock_c"
	FieldTags        = "tags_c"

	FieldSlug          = "slug_c"
	FieldImage         = "image_c"
	FieldSubcategories = "subcategories_c"

	FieldFeatured   = "featured_c"
	FieldProductIDs = "product_ids_c"

	FieldProductID    = "product_id_c"
	FieldTitle        = "title_c"
	FieldContent      = "content_c"
	FieldReviewerName = "reviewer_name_c"
	FieldDate         = "date_c"
	FieldHelpful      = "helpful_c"
)

// ProductFields is the full product column selection.
var ProductFields = []string{
	FieldID, FieldName, FieldBrand, FieldCategory, FieldSubcategory,
	FieldPrice, FieldSalePrice, FieldImages, FieldDescription,
	FieldIngredients, FieldRating, FieldReviewCount, FieldInStock,
	FieldTags,
}

// CategoryFields is the full category column selection.
var CategoryFields = []string{
	FieldID, FieldName, FieldSlug, FieldDescription, FieldImage,
	FieldSubcategories,
}

// CollectionFields is the full collection column selection.
var CollectionFields = []string{
	FieldID, FieldName, FieldSlug, FieldDescription, FieldImage,
	FieldFeatured, FieldProductIDs,
}

// ReviewFields is the full review column selection.
var ReviewFields = []string{
	FieldID, FieldProductID, FieldRating, FieldTitle, FieldContent,
	FieldReviewerName, FieldDate, FieldHelpful,
}
