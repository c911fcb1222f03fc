package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsf/backend/internal/domain/sales"
	"github.com/hsf/backend/internal/domain/sequence"
	"github.com/hsf/backend/internal/domain/shared"
)

// QuoteService turns the cart into priced quotes.
type QuoteService struct {
	quoteRepo sales.SalesQuoteRepository
	txScope   TransactionScope
	logger    *zap.Logger
	now       func() time.Time
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteRepo sales.SalesQuoteRepository, txScope TransactionScope, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		quoteRepo: quoteRepo,
		txScope:   txScope,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateFromCart prices every line of the customer's cart on the quote
// date's weekday tier, freezes the prices into a new quote and empties that
// cart. Components without any usable price tier are rejected rather than
// quoted at zero.
func (s *QuoteService) CreateFromCart(ctx context.Context, req CreateSalesQuoteRequest) (*SalesQuoteResponse, error) {
	quoteDate := s.now()
	if req.QuoteDate != nil {
		quoteDate = *req.QuoteDate
	}

	quote, err := sales.NewSalesQuote(req.CustomerID, req.CustomerName, req.ShippingAddress, req.PaymentMethodName, req.Notes, quoteDate)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		cartLines, err := repos.CartRepo().FindByCustomer(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		if len(cartLines) == 0 {
			return shared.NewDomainError("EMPTY_CART", "Cannot quote an empty cart")
		}

		componentIDs := make([]uuid.UUID, 0, len(cartLines))
		for _, line := range cartLines {
			componentIDs = append(componentIDs, line.ComponentID)
		}
		components, err := repos.ComponentRepo().FindByIDs(ctx, componentIDs)
		if err != nil {
			return err
		}

		for _, cartLine := range cartLines {
			component, ok := components[cartLine.ComponentID]
			if !ok {
				return shared.NewDomainError("COMPONENT_NOT_FOUND", "Component not found: "+cartLine.ComponentID.String())
			}
			price := component.PriceOn(quoteDate)
			if price.IsZero() {
				return shared.NewDomainError("NO_PRICE", "Component has no sell price: "+component.Name)
			}
			if _, err := quote.AddLine(component.ID, component.Name, cartLine.Quantity, price); err != nil {
				return err
			}
		}

		no, err := repos.Sequences().Next(ctx, sequence.SalesQuotes)
		if err != nil {
			return err
		}
		if err := quote.SetNumber(no); err != nil {
			return err
		}
		if err := repos.QuoteRepo().Save(ctx, quote); err != nil {
			return err
		}
		return repos.CartRepo().ClearByCustomer(ctx, req.CustomerID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales quote created",
		zap.String("sales_quote_no", quote.SalesQuoteNo),
		zap.Int("lines", len(quote.Lines)))

	response := ToSalesQuoteResponse(quote)
	return &response, nil
}

// GetByID retrieves a sales quote by ID
func (s *QuoteService) GetByID(ctx context.Context, id uuid.UUID) (*SalesQuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSalesQuoteResponse(quote)
	return &response, nil
}

// GetByNumber retrieves a sales quote by its document number
func (s *QuoteService) GetByNumber(ctx context.Context, no string) (*SalesQuoteResponse, error) {
	quote, err := s.quoteRepo.FindByNumber(ctx, no)
	if err != nil {
		return nil, err
	}
	response := ToSalesQuoteResponse(quote)
	return &response, nil
}

// List returns a page of sales quotes
func (s *QuoteService) List(ctx context.Context, offset, limit int) (*ListResponse[SalesQuoteResponse], error) {
	quotes, total, err := s.quoteRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]SalesQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, ToSalesQuoteResponse(q))
	}
	return &ListResponse[SalesQuoteResponse]{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

// Delete discards an unpromoted quote. Its number stays burned.
func (s *QuoteService) Delete(ctx context.Context, id uuid.UUID) error {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.quoteRepo.Delete(ctx, quote.ID); err != nil {
		return err
	}
	s.logger.Info("sales quote deleted", zap.String("sales_quote_no", quote.SalesQuoteNo))
	return nil
}
