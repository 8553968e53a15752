package customers

import (
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RegisterRoute       = "/customers"
	LoginRoute          = "/login"
	CustomersRoute      = "/customers"
	CustomerRoute       = "/customers/:username"
	ChangePasswordRoute = "/customers/:username/change-password"
	WalletAddRoute      = "/customers/:username/wallet/add"
	WalletDeductRoute   = "/customers/:username/wallet/deduct"
	OrdersRoute         = "/customers/:username/orders"
	WishlistRoute       = "/customers/:username/wishlist"
	HealthRoute         = "/health"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	CustomerService CustomerServicer
	Orders          OrderLister
	Wishlist        WishlistLister
	DB              DBPinger
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

	authHandler := NewAuthHandler(args.CustomerService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	walletHandler := NewWalletHandler(args.CustomerService)
	ledgerHandler := NewLedgerHandler(args.CustomerService, args.Orders, args.Wishlist)
	healthHandler := NewHealthHandler(args.DB)

	r.GET(HealthRoute, healthHandler.Check)
	r.POST(RegisterRoute, authHandler.Register)
	r.POST(LoginRoute, authHandler.Login)

	auth := r.Group("")
	auth.Use(middlewares.AuthRequired(args.JWTSecretKey))

	selfOrStaff := middlewares.RoleRequired(domain.RoleAdmin, domain.RoleCustomer, domain.RoleProductManager)

	auth.GET(CustomersRoute, middlewares.RoleRequired(domain.RoleAdmin), customersHandler.Index)
	auth.GET(CustomerRoute, selfOrStaff, customersHandler.Show)
	auth.PUT(CustomerRoute, selfOrStaff, customersHandler.Update)
	auth.POST(ChangePasswordRoute, selfOrStaff, customersHandler.ChangePassword)
	auth.DELETE(CustomerRoute, selfOrStaff, customersHandler.Delete)

	auth.POST(WalletAddRoute, selfOrStaff, walletHandler.Add)
	auth.POST(WalletDeductRoute, selfOrStaff, walletHandler.Deduct)

	auth.GET(OrdersRoute, selfOrStaff, ledgerHandler.Orders)
	auth.GET(WishlistRoute, selfOrStaff, ledgerHandler.Wishlist)

	return r
}
