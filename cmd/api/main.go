package main

import (
	"context"

	"metahair/internal/config"
	"metahair/internal/domain/model"
	"metahair/internal/handler"
	"metahair/internal/infra/db"
	"metahair/internal/infra/email"
	"metahair/internal/infra/paystack"
	infraRepo "metahair/internal/infra/repository"
	"metahair/internal/notify"
	"metahair/internal/pkg/logging"
	"metahair/internal/server"
	"metahair/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（本番はENV直指定）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.MustNewLogger("metahair-api", cfg.GoEnv)
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.OrderItem{},
		&model.Product{},
		&model.Category{},
		&model.ShippingMethod{},
		&model.Settings{},
		&model.AuditLog{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	shippingRepo := infraRepo.NewShippingMethodGormRepository(gormDB)
	settingsRepo := infraRepo.NewSettingsGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//決済検証クライアント
	verifier := paystack.NewClient(cfg.PaystackSecretKey)

	//通知。APIキーが無ければ送信しない
	var sender notify.Sender
	if cfg.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppURL)
	} else {
		sender = notify.NewNopSender(logger)
	}
	dispatcher := notify.NewDispatcher(sender, logger)
	dispatcher.Start(context.Background())
	defer dispatcher.Stop()

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(orderRepo, shippingRepo, logger)
	paymentUC := usecase.NewPaymentUsecase(
		txManager, orderRepo, productRepo, settingsRepo,
		verifier, dispatcher, cfg.AdminEmail, logger,
	)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, auditRepo, logger)
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	shippingUC := usecase.NewShippingUsecase(shippingRepo)
	adminAuthUC := usecase.NewAdminAuthUsecase(settingsRepo, cfg.JWTSecret)

	//設定行が無ければ初期PINで作る
	if err := adminAuthUC.EnsureBootstrap(context.Background(), cfg.AdminEmail, cfg.AdminPin); err != nil {
		logger.Fatal("settings bootstrap failed", zap.Error(err))
	}

	//Handler生成
	handlers := server.Handlers{
		Orders:        handler.NewOrderHandler(orderUC),
		Payments:      handler.NewPaymentHandler(paymentUC),
		AdminOrders:   handler.NewAdminOrderHandler(orderUC, adminOrderUC),
		Products:      handler.NewProductHandler(catalogUC),
		AdminProducts: handler.NewAdminProductHandler(catalogUC),
		Shipping:      handler.NewShippingHandler(shippingUC),
		AdminAuth:     handler.NewAdminAuthHandler(adminAuthUC, cfg),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting server", zap.String("addr", addr))
	if err := server.Start(addr, cfg, handlers); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
