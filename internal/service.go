package internal

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZEBDA1/McHess/internal/model"
)

type IService interface {
	Login(string, string) (string, error)
	GetPacks(context.Context) ([]model.Pack, error)
	GetPack(context.Context, string) (model.Pack, error)
	UpdatePack(context.Context, string, model.PackInput) (model.Pack, error)
	CreateOrder(context.Context, model.OrderInput) (model.Order, error)
	GetOrders(context.Context) ([]model.Order, error)
	GetOrdersByEmail(context.Context, string) ([]model.Order, error)
	SetOrderStatus(context.Context, string, string) error
	Deliver(context.Context, string, string) error
}

func NewService(repository IRepository, notifier INotifier, adminLogin, adminPassword, jwtSecret string, logger *zap.SugaredLogger) *Service {
	return &Service{
		Repository:    repository,
		Notifier:      notifier,
		adminLogin:    adminLogin,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		logger:        logger,
	}
}

type Service struct {
	Repository IRepository
	Notifier   INotifier

	adminLogin    string
	adminPassword string
	jwtSecret     string

	logger *zap.SugaredLogger
}

// Login is a placeholder credential check against the configured admin
// account; the token only serves as a routing gate for the admin screens.
func (s Service) Login(login, password string) (string, error) {
	if login != s.adminLogin || password != s.adminPassword {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}

func (s Service) GetPacks(ctx context.Context) ([]model.Pack, error) {
	return s.Repository.GetPacks(ctx)
}

func (s Service) GetPack(ctx context.Context, id string) (model.Pack, error) {
	return s.Repository.GetPackByID(ctx, id)
}

func (s Service) UpdatePack(ctx context.Context, id string, i model.PackInput) (model.Pack, error) {
	err := ValidatePackInput(i)
	if err != nil {
		return model.Pack{}, err
	}

	return s.Repository.UpdatePack(ctx, id, i)
}

// CreateOrder snapshots the pack name and price into the new order at status
// pending. Nothing is written when the pack is unknown or the email is empty.
func (s Service) CreateOrder(ctx context.Context, i model.OrderInput) (model.Order, error) {
	if strings.TrimSpace(i.CustomerEmail) == "" {
		return model.Order{}, ErrEmptyCustomerEmail
	}

	pack, err := s.Repository.GetPackByID(ctx, i.PackID)
	if err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		ID:            newID(),
		PackID:        pack.ID,
		PackName:      pack.Name,
		CustomerEmail: i.CustomerEmail,
		Amount:        pack.Price,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	err = s.Repository.CreateOrder(ctx, order)
	if err != nil {
		return model.Order{}, err
	}

	s.Notifier.OrderCreated(ctx, order)
	return order, nil
}

func (s Service) GetOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, ErrNoRecords
	}
	return orders, nil
}

func (s Service) GetOrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return s.Repository.GetOrdersByEmail(ctx, email)
}

// SetOrderStatus moves a pending order into one of the two terminal states.
// The repository write is a compare-and-set, so a concurrent transition on
// the same order surfaces as ErrOrderFinalized instead of a silent overwrite.
func (s Service) SetOrderStatus(ctx context.Context, id, status string) error {
	if status != model.OrderStatusDelivered && status != model.OrderStatusCancelled {
		return ErrInvalidStatus
	}

	err := s.Repository.SetOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}

	s.notifyStatusChanged(ctx, id)
	return nil
}

func (s Service) Deliver(ctx context.Context, id, deliveryInfo string) error {
	if strings.TrimSpace(deliveryInfo) == "" {
		return ErrEmptyDeliveryInfo
	}

	err := s.Repository.DeliverOrder(ctx, id, deliveryInfo)
	if err != nil {
		return err
	}

	s.notifyStatusChanged(ctx, id)
	return nil
}

func (s Service) notifyStatusChanged(ctx context.Context, id string) {
	order, err := s.Repository.GetOrderByID(ctx, id)
	if err != nil {
		s.logger.Errorf("notify status change: %s", err.Error())
		return
	}
	s.Notifier.OrderStatusChanged(ctx, order)
}

// ValidatePackInput is the typed parse-or-reject step at the catalog
// boundary; it runs both client-side before the network call and server-side
// before any write.
func ValidatePackInput(i model.PackInput) error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyPackName
	}
	if strings.TrimSpace(i.Description) == "" {
		return ErrEmptyPackDescription
	}
	if _, _, err := ParsePointsRange(i.PointsRange); err != nil {
		return err
	}
	if !i.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

// ParsePointsRange parses "low-high" with both bounds positive and low < high.
func ParsePointsRange(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidPointsRange
	}

	low, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidPointsRange
	}
	high, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidPointsRange
	}

	if low <= 0 || high <= 0 || low >= high {
		return 0, 0, ErrInvalidPointsRange
	}
	return low, high, nil
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
