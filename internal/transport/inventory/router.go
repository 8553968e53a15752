package inventory

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

// В позиции :itemID живут и числовые идентификаторы, и имена категорий: роутер не
// различает их, разбор выполняет обработчик каталога.
const (
	InventoryRoute   = "/inventory"
	ItemRoute        = "/inventory/:itemID"
	StockAddRoute    = "/inventory/:itemID/stock/add"
	StockRemoveRoute = "/inventory/:itemID/stock/remove"
	HealthRoute      = "/health"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	ItemService  ItemServicer
	DB           DBPinger
	JWTSecretKey []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	itemsHandler := NewItemsHandler(args.ItemService)
	stockHandler := NewStockHandler(args.ItemService)
	healthHandler := NewHealthHandler(args.DB)

	r.GET(HealthRoute, healthHandler.Check)

	auth := r.Group("")
	auth.Use(middlewares.AuthRequired(args.JWTSecretKey))

	catalogRoles := middlewares.RoleRequired(domain.RoleAdmin, domain.RoleCustomer, domain.RoleProductManager)
	managerRoles := middlewares.RoleRequired(domain.RoleAdmin, domain.RoleProductManager)

	auth.GET(InventoryRoute, catalogRoles, itemsHandler.Index)
	auth.GET(ItemRoute, catalogRoles, itemsHandler.Show)
	auth.POST(InventoryRoute, managerRoles, itemsHandler.Create)
	auth.PUT(ItemRoute, managerRoles, itemsHandler.Update)
	auth.DELETE(ItemRoute, managerRoles, itemsHandler.Delete)

	auth.POST(StockAddRoute, managerRoles, stockHandler.Add)
	auth.POST(StockRemoveRoute,
		middlewares.RoleRequired(domain.RoleAdmin, domain.RoleProductManager, domain.RoleCustomer),
		stockHandler.Remove)

	return r
}
