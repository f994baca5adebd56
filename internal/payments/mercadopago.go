package payments

import (
	"context"
	"errors"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type PreferenceInput struct {
	Reference  string
	Title      string
	PriceCents int
}

type Preference struct {
	ID        string
	InitPoint string
}

// Gateway creates a hosted checkout for a single appointment.
type Gateway interface {
	CreatePreference(ctx context.Context, in PreferenceInput) (*Preference, error)
}

type MercadoPago struct {
	client   preference.Client
	currency string
}

func NewMercadoPago(accessToken, currency string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, errors.New("mercadopago: empty access token")
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	if currency == "" {
		currency = "BRL"
	}
	return &MercadoPago{
		client:   preference.NewClient(cfg),
		currency: currency,
	}, nil
}

func (m *MercadoPago) CreatePreference(ctx context.Context, in PreferenceInput) (*Preference, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         in.Reference,
				Title:      in.Title,
				Quantity:   1,
				UnitPrice:  CentsToAmount(in.PriceCents),
				CurrencyID: m.currency,
			},
		},
		ExternalReference: in.Reference,
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago create preference: %w", err)
	}

	return &Preference{
		ID:        res.ID,
		InitPoint: res.InitPoint,
	}, nil
}

func CentsToAmount(cents int) float64 {
	return float64(cents) / 100
}
