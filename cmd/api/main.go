package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(cfg config.Config) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(adminID int64, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(adminID, 10),
		"role": "admin",
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envはあれば読む（本番は環境変数だけ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = db.Close(gormDB)
	}()

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Reservation{},
		&model.AdminUser{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reservationRepo := infraRepo.NewReservationGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := newJWTIssuer(cfg)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	reservationUC := usecase.NewReservationUsecase(reservationRepo)
	loginUC := auth.NewLoginUsecase(adminRepo, verifier, issuer, clock)

	//Handler生成
	handlers := server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		Order:        handler.NewOrderHandler(orderUC),
		Reservation:  handler.NewReservationHandler(reservationUC),
		Auth:         handler.NewAuthHandler(loginUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
	}

	e := server.New(cfg, handlers)

	//Server起動（シグナルで落とす）
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
