package application

import (
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/bistrolabs/ordering-service/internal/domain"
	"github.com/bistrolabs/ordering-service/internal/ports"
)

type Service struct {
	cfg       Config
	logger    *slog.Logger
	users     ports.UserRepository
	carts     ports.CartRepository
	payments  ports.PaymentRepository
	menu      ports.MenuRepository
	reviews   ports.ReviewRepository
	menuCache ports.MenuCache
	charges   ports.ChargeClient
	tokens    ports.TokenSigner
	nowFn     func() time.Time
}

type Dependencies struct {
	Config    Config
	Logger    *slog.Logger
	Users     ports.UserRepository
	Carts     ports.CartRepository
	Payments  ports.PaymentRepository
	Menu      ports.MenuRepository
	Reviews   ports.ReviewRepository
	MenuCache ports.MenuCache
	Charges   ports.ChargeClient
	Tokens    ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		users:     deps.Users,
		carts:     deps.Carts,
		payments:  deps.Payments,
		menu:      deps.Menu,
		reviews:   deps.Reviews,
		menuCache: deps.MenuCache,
		charges:   deps.Charges,
		tokens:    deps.Tokens,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}
	return email, nil
}
