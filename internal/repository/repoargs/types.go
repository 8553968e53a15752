package repoargs

type RepositoryName string

const (
	CustomerRepoName RepositoryName = "customer"
	ItemRepoName     RepositoryName = "item"
	OrderRepoName    RepositoryName = "order"
	WishlistRepoName RepositoryName = "wishlist"
	ReviewRepoName   RepositoryName = "review"
)
