// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-kantor/kantor/internal/middleware"
	"github.com/go-kantor/kantor/internal/nbp"
	"github.com/go-kantor/kantor/internal/ratesdelivery"
	"github.com/go-kantor/kantor/internal/ratesservice"
	"github.com/go-kantor/kantor/internal/sessiondelivery"
	"github.com/go-kantor/kantor/internal/sessionrepo"
	"github.com/go-kantor/kantor/internal/sessionservice"
	"github.com/go-kantor/kantor/internal/tradedelivery"
	"github.com/go-kantor/kantor/internal/traderepo"
	"github.com/go-kantor/kantor/internal/tradeservice"
	"github.com/go-kantor/kantor/internal/transactiondelivery"
	"github.com/go-kantor/kantor/internal/transactionrepo"
	"github.com/go-kantor/kantor/internal/transactionservice"
	"github.com/go-kantor/kantor/internal/userdelivery"
	"github.com/go-kantor/kantor/internal/userrepo"
	"github.com/go-kantor/kantor/internal/userservice"
	"github.com/go-kantor/kantor/internal/walletdelivery"
	"github.com/go-kantor/kantor/internal/walletrepo"
	"github.com/go-kantor/kantor/internal/walletservice"
	"github.com/go-kantor/kantor/pkg/configpkg"
	"github.com/go-kantor/kantor/pkg/currencypkg"
	"github.com/go-kantor/kantor/pkg/tokenpkg"
)

const version = "1.0.0"

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	walletRepo := walletrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	tradeRepo := traderepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)

	nbpClient := nbp.NewClient(config.NBPBaseURL, config.NBPTimeout)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo, walletRepo)
	walletService := walletservice.New(walletRepo, tradeRepo)
	tradeService := tradeservice.New(tradeRepo, nbpClient)
	transactionService := transactionservice.New(transactionRepo)
	ratesService := ratesservice.New(nbpClient)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	walletHandler := walletdelivery.NewHandler(walletService)
	tradeHandler := tradedelivery.NewHandler(tradeService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	ratesHandler := ratesdelivery.NewHandler(ratesService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/health", health)

	engine.POST("/auth/register", userHandler.Register)
	engine.POST("/auth/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	engine.GET("/rates/current", ratesHandler.Current)
	engine.GET("/rates/history", ratesHandler.History)
	engine.GET("/rates/buy-sell", ratesHandler.BuySell)
	engine.GET("/rates/available", ratesHandler.Available)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/wallet/balances", walletHandler.Balances)
	authRoutes.POST("/wallet/fund", walletHandler.Fund)

	authRoutes.POST("/trade/buy", tradeHandler.Buy)
	authRoutes.POST("/trade/sell", tradeHandler.Sell)

	authRoutes.GET("/transactions", transactionHandler.List)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency_code", currencypkg.ValidCurrencyCode)
		if err != nil {
			return nil, errors.New("cannot register currency code validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}

func health(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
	})
}
