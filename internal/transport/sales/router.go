package sales

import (
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultServiceTimeout покрывает всю оркестрацию покупки: до четырех удаленных
	// вызовов, каждый со своим таймаутом 5 секунд внутри клиента.
	DefaultServiceTimeout = 30 * time.Second
)

const (
	PurchaseRoute       = "/purchase/:itemID"
	WishlistAddRoute    = "/inventory/:itemID/wishlist/add"
	WishlistRemoveRoute = "/inventory/:itemID/wishlist/remove"
	HealthRoute         = "/health"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	OrderService    OrderServicer
	WishlistService WishlistServicer
	DB              DBPinger
	CustomerHealth  HealthChecker
	InventoryHealth HealthChecker
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	purchaseHandler := NewPurchaseHandler(args.OrderService)
	wishlistHandler := NewWishlistHandler(args.WishlistService)
	healthHandler := NewHealthHandler(args.DB, args.CustomerHealth, args.InventoryHealth)

	r.GET(HealthRoute, healthHandler.Check)

	auth := r.Group("")
	auth.Use(middlewares.AuthRequired(args.JWTSecretKey))

	auth.POST(PurchaseRoute,
		middlewares.RoleRequired(domain.RoleAdmin, domain.RoleCustomer),
		purchaseHandler.Purchase)
	auth.POST(WishlistAddRoute,
		middlewares.RoleRequired(domain.RoleCustomer, domain.RoleAdmin, domain.RoleProductManager),
		wishlistHandler.Add)
	auth.DELETE(WishlistRemoveRoute,
		middlewares.RoleRequired(domain.RoleCustomer, domain.RoleAdmin),
		wishlistHandler.Remove)

	return r
}
