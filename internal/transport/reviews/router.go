package reviews

import (
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultServiceTimeout учитывает до двух удаленных вызовов с таймаутом 5 секунд
	// внутри клиентов.
	DefaultServiceTimeout = 15 * time.Second
)

const (
	SubmitRoute          = "/reviews/:reviewID" // POST: в позиции :reviewID стоит идентификатор товара
	ReviewRoute          = "/reviews/:reviewID"
	CustomerReviewsRoute = "/reviews/customer/"
	ProductReviewsRoute  = "/reviews/product/:itemID"
	FlagRoute            = "/reviews/flag/:reviewID"
	ApproveRoute         = "/reviews/approve/:reviewID"
	HealthRoute          = "/health"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	ReviewService ReviewServicer
	Customers     CustomerDirectory
	Inventory     InventoryStore
	DB            DBPinger
	JWTSecretKey  []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	reviewsHandler := NewReviewsHandler(args.ReviewService, args.Customers, args.Inventory)
	healthHandler := NewHealthHandler(args.DB, args.Customers, args.Inventory)

	r.GET(HealthRoute, healthHandler.Check)

	auth := r.Group("")
	auth.Use(middlewares.AuthRequired(args.JWTSecretKey))

	readerRoles := middlewares.RoleRequired(domain.RoleAdmin, domain.RoleProductManager, domain.RoleCustomer)
	ownerRoles := middlewares.RoleRequired(domain.RoleCustomer, domain.RoleAdmin)
	moderationRoles := middlewares.RoleRequired(domain.RoleAdmin, domain.RoleProductManager, domain.RoleModerator)

	auth.GET(CustomerReviewsRoute,
		middlewares.RoleRequired(domain.RoleAdmin, domain.RoleCustomer),
		reviewsHandler.CustomerReviews)
	auth.GET(ProductReviewsRoute, readerRoles, reviewsHandler.ProductReviews)
	auth.GET(ReviewRoute, readerRoles, reviewsHandler.Show)

	auth.POST(SubmitRoute, ownerRoles, reviewsHandler.Submit)
	auth.PUT(ReviewRoute, ownerRoles, reviewsHandler.Update)
	auth.DELETE(ReviewRoute, ownerRoles, reviewsHandler.Delete)

	auth.PUT(FlagRoute,
		middlewares.RoleRequired(domain.RoleAdmin, domain.RoleProductManager,
			domain.RoleModerator, domain.RoleCustomer),
		reviewsHandler.Flag)
	auth.PUT(ApproveRoute, moderationRoles, reviewsHandler.Approve)

	return r
}
