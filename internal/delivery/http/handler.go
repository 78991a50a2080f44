package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/usecase"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	catalog     *usecase.CatalogService
	categories  *usecase.CategoryService
	collections *usecase.CollectionService
	reviews     *usecase.ReviewService
}

// NewHandler creates an HTTP handler with its service dependencies.
func NewHandler(
	catalog *usecase.CatalogService,
	categories *usecase.CategoryService,
	collections *usecase.CollectionService,
	reviews *usecase.ReviewService,
) *Handler {
	return &Handler{
		catalog:     catalog,
		categories:  categories,
		collections: collections,
		reviews:     reviews,
	}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "glowmarket-backend",
		"version": "1.0.0",
	})
}

// ListProducts serves the catalog, filtered and sorted when query
// parameters are present.
func (h *Handler) ListProducts(c *gin.Context) {
	if c.Request.URL.RawQuery == "" {
		c.JSON(http.StatusOK, h.catalog.GetAll(c.Request.Context()))
		return
	}
	filter := parseProductFilter(c)
	c.JSON(http.StatusOK, h.catalog.Filter(c.Request.Context(), filter))
}

// GetProduct serves one product by id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product := h.catalog.GetByID(c.Request.Context(), id)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// SearchProducts matches a term against name, brand and description.
func (h *Handler) SearchProducts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	c.JSON(http.StatusOK, h.catalog.Search(c.Request.Context(), term))
}

// FeaturedProducts serves the top-rated products.
func (h *Handler) FeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.GetFeatured(c.Request.Context(), queryLimit(c)))
}

// RelatedProducts serves same-category products for a seed product.
func (h *Handler) RelatedProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.catalog.GetRelated(c.Request.Context(), id, queryLimit(c)))
}

// ListCategories serves all categories.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.categories.GetAll(c.Request.Context()))
}

// GetCategory serves one category by slug.
func (h *Handler) GetCategory(c *gin.Context) {
	category := h.categories.GetBySlug(c.Request.Context(), c.Param("slug"))
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetSubcategories serves a category's subcategory descriptors.
func (h *Handler) GetSubcategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.categories.GetSubcategories(c.Request.Context(), c.Param("slug")))
}

// ListCollections serves all collections.
func (h *Handler) ListCollections(c *gin.Context) {
	c.JSON(http.StatusOK, h.collections.GetAll(c.Request.Context()))
}

// FeaturedCollections serves the collections flagged as featured.
func (h *Handler) FeaturedCollections(c *gin.Context) {
	c.JSON(http.StatusOK, h.collections.GetFeatured(c.Request.Context()))
}

// GetCollection serves one collection by slug.
func (h *Handler) GetCollection(c *gin.Context) {
	collection := h.collections.GetBySlug(c.Request.Context(), c.Param("slug"))
	if collection == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		return
	}
	c.JSON(http.StatusOK, collection)
}

// CollectionProducts expands a collection into its member products.
// The path segment accepts a collection id or a slug.
func (h *Handler) CollectionProducts(c *gin.Context) {
	ctx := c.Request.Context()

	ref := c.Param("slug")
	id, err := strconv.Atoi(ref)
	if err != nil {
		collection := h.collections.GetBySlug(ctx, ref)
		if collection == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
			return
		}
		id = collection.ID
	}
	c.JSON(http.StatusOK, h.collections.GetCollectionProducts(ctx, id))
}

// ProductReviews serves a product's reviews, newest first.
func (h *Handler) ProductReviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reviews.GetByProductID(c.Request.Context(), id))
}

// ProductRating serves a product's aggregated review statistics.
func (h *Handler) ProductRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"average":      h.reviews.AverageRating(ctx, id),
		"distribution": h.reviews.RatingDistribution(ctx, id),
	})
}

// reviewBody is the write payload for review creation; the product id
// comes from the path.
type reviewBody struct {
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReviewerName string `json:"reviewerName"`
}

// CreateReview stores a new review for a product.
func (h *Handler) CreateReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := h.reviews.Create(c.Request.Context(), domain.NewReview{
		ProductID:    strconv.Itoa(id),
		Rating:       body.Rating,
		Title:        body.Title,
		Content:      body.Content,
		ReviewerName: body.ReviewerName,
	})
	if review == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not store review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// MarkReviewHelpful increments a review's helpful-vote counter.
func (h *Handler) MarkReviewHelpful(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review := h.reviews.MarkHelpful(c.Request.Context(), id)
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

// parseProductFilter reads filter options from query parameters. An
// absent parameter produces no predicate; price bounds are kept as
// pointers so an explicit 0 stays distinguishable from "not set".
func parseProductFilter(c *gin.Context) domain.ProductFilter {
	filter := domain.ProductFilter{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Brands:      c.QueryArray("brand"),
		SortBy:      c.Query("sort"),
		Tags:        c.QueryArray("tag"),
		InStock:     c.Query("in_stock") == "true",
	}
	if raw := c.Query("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PriceMin = &v
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PriceMax = &v
		}
	}
	return filter
}
