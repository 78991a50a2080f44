package domain

// Review is a customer review of a product. ProductID is a foreign
// key into the product kind, stored as a string; it is not enforced
// locally. Date is an ISO yyyy-mm-dd string as stored.
type Review struct {
	ID           int    `json:"Id"`
	ProductID    string `json:"productId"`
	Rating       int    `json:"rating"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReviewerName string `json:"reviewerName"`
	Date         string `json:"date"`
	Helpful      int    `json:"helpful"`
}

// NewReview is the caller-supplied part of a review. The service
// stamps the date and zeroes the helpful counter on create.
type NewReview struct {
	ProductID    string `json:"productId" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReviewerName string `json:"reviewerName"`
}
