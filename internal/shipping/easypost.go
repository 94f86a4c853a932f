package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/EasyPost/easypost-go/v4"
	"github.com/samber/lo"
	"github.com/sony/gobreaker"
)

// Адрес склада, с которого уходят все отправления.
var warehouse = &easypost.Address{
	Company: "EasyPost",
	Street1: "417 Montgomery Street",
	Street2: "5th Floor",
	City:    "San Francisco",
	State:   "CA",
	Zip:     "94104",
	Country: "US",
	Phone:   "415-528-7555",
}

type EasyPost struct {
	logger  *slog.Logger
	client  *easypost.Client
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewEasyPost(logger *slog.Logger, cfg config.EasyPost, httpClient *http.Client) (*EasyPost, error) {
	if cfg.APIKey == "" {
		return nil, entities.ErrNotConfigured
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	client := easypost.New(cfg.APIKey)
	client.Client = httpClient

	logger = logger.With(slog.String("carrier", "easypost"))

	return &EasyPost{
		logger:  logger,
		client:  client,
		cb:      utils.NewBreaker("easypost", logger),
		timeout: cfg.Timeout,
	}, nil
}

func (e *EasyPost) VerifyAddress(ctx context.Context, addr entities.Address) (entities.AddressVerification, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.cb.Execute(func() (any, error) {
		return e.client.CreateAddressWithContext(ctx, toAddress(addr), &easypost.CreateAddressOptions{Verify: []string{"delivery"}})
	})
	if err != nil {
		return entities.AddressVerification{}, fmt.Errorf("failed to verify address: %w", err)
	}
	address := res.(*easypost.Address)

	var out entities.AddressVerification
	if v := address.Verifications; v != nil {
		out.ZIP4 = toVerification(v.ZIP4)
		out.Delivery = toVerification(v.Delivery)
		out.IsVerified = v.Delivery != nil && v.Delivery.Success
	}
	return out, nil
}

func (e *EasyPost) CreateShipment(ctx context.Context, to entities.Address, parcel entities.Parcel) (entities.ShipmentQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.cb.Execute(func() (any, error) {
		return e.client.CreateShipmentWithContext(ctx, &easypost.Shipment{
			ToAddress:   toAddress(to),
			FromAddress: warehouse,
			Parcel: &easypost.Parcel{
				Length: parcel.Length,
				Width:  parcel.Width,
				Height: parcel.Height,
				Weight: parcel.Weight,
			},
		})
	})
	if err != nil {
		return entities.ShipmentQuote{}, fmt.Errorf("failed to create shipment: %w", err)
	}
	shipment := res.(*easypost.Shipment)

	return entities.ShipmentQuote{
		ID: shipment.ID,
		Rates: lo.Map(shipment.Rates, func(r *easypost.Rate, _ int) entities.Rate {
			return entities.Rate{
				ID:       r.ID,
				Object:   r.Object,
				Service:  r.Service,
				Carrier:  r.Carrier,
				Rate:     r.Rate,
				Currency: r.Currency,
			}
		}),
	}, nil
}

// BuyLabel покупает этикетку по сохранённым в заказе shipment и rate.
func (e *EasyPost) BuyLabel(ctx context.Context, req entities.LabelRequest) (entities.Label, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.cb.Execute(func() (any, error) {
		return e.client.BuyShipmentWithContext(ctx, req.ShipmentID, &easypost.Rate{ID: req.RateID}, "")
	})
	if err != nil {
		return entities.Label{}, fmt.Errorf("failed to buy shipment %s: %w", req.ShipmentID, err)
	}
	shipment := res.(*easypost.Shipment)

	label := entities.Label{TrackingCode: shipment.TrackingCode}
	if shipment.Tracker != nil {
		label.TrackingURL = shipment.Tracker.PublicURL
	}
	if shipment.PostageLabel != nil {
		label.LabelURL = shipment.PostageLabel.LabelURL
	}

	label.Raw, err = json.Marshal(shipment)
	if err != nil {
		e.logger.WarnContext(ctx, "failed to encode shipment", slog.Any("error", err))
	}

	e.logger.InfoContext(ctx, "label purchased",
		slog.String("order_id", req.OrderID), slog.String("tracking_code", label.TrackingCode))
	return label, nil
}

func toAddress(a entities.Address) *easypost.Address {
	return &easypost.Address{
		Name:    a.Name,
		Company: a.Company,
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
		Phone:   a.Phone,
		Email:   a.Email,
	}
}

func toVerification(v *easypost.AddressVerification) entities.VerificationResult {
	out := entities.VerificationResult{
		Errors:  []entities.VerificationError{},
		Details: map[string]any{},
	}
	if v == nil {
		return out
	}

	out.Success = v.Success
	for _, fe := range v.Errors {
		if fe == nil {
			continue
		}
		out.Errors = append(out.Errors, entities.VerificationError{
			Code:       fe.Code,
			Field:      fe.Field,
			Message:    fe.Message,
			Suggestion: fe.Suggestion,
		})
	}
	if d := v.Details; d != nil {
		out.Details["latitude"] = d.Latitude
		out.Details["longitude"] = d.Longitude
		out.Details["time_zone"] = d.TimeZone
	}
	return out
}
