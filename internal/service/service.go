// Package service реализует сценарии чтения и загрузки данных CRM.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/jdcrm/internal/fixtures"
	"github.com/mmeshcher/jdcrm/internal/model"
	"github.com/mmeshcher/jdcrm/internal/repository"
)

// CustomerReader описывает поиск клиентов, используемый сервисом.
type CustomerReader interface {
	FindByCustomerCode(ctx context.Context, code string) (*model.Customer, error)
}

// ContactReader описывает поиск контактов клиента.
type ContactReader interface {
	FindByCustomer(ctx context.Context, customerID int64) ([]model.Contact, error)
}

// OpportunityReader описывает поиск сделок клиента.
type OpportunityReader interface {
	FindByCustomer(ctx context.Context, customerID int64) ([]model.Opportunity, error)
}

// OrderReader описывает поиск заказов клиента и расчёт выручки.
type OrderReader interface {
	FindByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	TotalAmountByCustomer(ctx context.Context, customerID int64) (string, error)
}

// Repositories объединяет источники данных сервиса.
type Repositories struct {
	Customers     CustomerReader
	Contacts      ContactReader
	Opportunities OpportunityReader
	Orders        OrderReader
}

// SeedFunc загружает демонстрационные данные.
type SeedFunc func(ctx context.Context, now time.Time) error

// Service содержит сценарии работы с данными CRM.
type Service struct {
	repos  Repositories
	seed   SeedFunc
	logger *zap.Logger
	now    func() time.Time
}

// NewService создаёт сервис с указанными источниками данных и функцией загрузки демонстрационных данных.
func NewService(repos Repositories, seed SeedFunc, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repos:  repos,
		seed:   seed,
		logger: logger,
		now:    time.Now,
	}
}

// FromRegistry создаёт сервис поверх репозиториев реестра.
func FromRegistry(reg *repository.Registry, logger *zap.Logger) *Service {
	repos := Repositories{
		Customers:     reg.Customers,
		Contacts:      reg.Contacts,
		Opportunities: reg.Opportunities,
		Orders:        reg.Orders,
	}
	seed := func(ctx context.Context, now time.Time) error {
		_, err := fixtures.Load(ctx, reg, now)
		return err
	}
	return NewService(repos, seed, logger)
}

// CustomerOverview содержит сводку по клиенту.
type CustomerOverview struct {
	Customer      model.Customer
	Contacts      []model.Contact
	Opportunities []model.Opportunity
	Orders        []model.Order
	// Revenue содержит сумму оплаченных, доставляемых и завершённых заказов.
	Revenue string
}

// CustomerOverview загружает клиента по коду и параллельно собирает его контакты, сделки, заказы и выручку.
func (s *Service) CustomerOverview(ctx context.Context, code string) (*CustomerOverview, error) {
	c, err := s.repos.Customers.FindByCustomerCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find customer %s: %w", code, err)
	}

	ov := &CustomerOverview{Customer: *c}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		contacts, err := s.repos.Contacts.FindByCustomer(gctx, c.ID)
		if err != nil {
			return fmt.Errorf("find contacts: %w", err)
		}
		ov.Contacts = contacts
		return nil
	})

	g.Go(func() error {
		opps, err := s.repos.Opportunities.FindByCustomer(gctx, c.ID)
		if err != nil {
			return fmt.Errorf("find opportunities: %w", err)
		}
		ov.Opportunities = opps
		return nil
	})

	g.Go(func() error {
		orders, err := s.repos.Orders.FindByCustomer(gctx, c.ID)
		if err != nil {
			return fmt.Errorf("find orders: %w", err)
		}
		ov.Orders = orders
		return nil
	})

	g.Go(func() error {
		revenue, err := s.repos.Orders.TotalAmountByCustomer(gctx, c.ID)
		if err != nil {
			return fmt.Errorf("total amount: %w", err)
		}
		ov.Revenue = revenue
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("customer overview loaded",
		zap.String("customer", code),
		zap.Int("contacts", len(ov.Contacts)),
		zap.Int("opportunities", len(ov.Opportunities)),
		zap.Int("orders", len(ov.Orders)),
	)

	return ov, nil
}

// Revenue возвращает выручку клиента с указанным кодом.
func (s *Service) Revenue(ctx context.Context, code string) (string, error) {
	c, err := s.repos.Customers.FindByCustomerCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("find customer %s: %w", code, err)
	}
	return s.repos.Orders.TotalAmountByCustomer(ctx, c.ID)
}

// LoadFixtures загружает демонстрационные данные.
func (s *Service) LoadFixtures(ctx context.Context) error {
	if s.seed == nil {
		return nil
	}

	start := s.now()
	if err := s.seed(ctx, start); err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	s.logger.Info("fixtures loaded", zap.Duration("elapsed", s.now().Sub(start)))
	return nil
}
