package repoargs

import "github.com/fsdevblog/groph-shop/internal/domain"

type CreateReview struct {
	CustomerID int64
	ItemID     int64
	Rating     int
	Comment    string
	Status     domain.ReviewStatusType
}

type UpdateReview struct {
	Rating  int
	Comment string
}
