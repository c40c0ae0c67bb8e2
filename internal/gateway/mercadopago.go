package gateway

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	subscriptionAmount = 49.90
	subscriptionReason = "Assinatura mensal da agenda"
)

type MercadoPago struct {
	preapproval preapproval.Client
	payment     payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		preapproval: preapproval.NewClient(cfg),
		payment:     payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPago) InitMandate(
	ctx context.Context,
	payerEmail string,
	reference string,
) (string, error) {

	resp, err := g.preapproval.Create(ctx, preapproval.Request{
		Reason:            subscriptionReason,
		ExternalReference: reference,
		PayerEmail:        payerEmail,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: subscriptionAmount,
			CurrencyID:        "BRL",
		},
	})
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (g *MercadoPago) VerifyPayment(
	ctx context.Context,
	reference string,
) (*PaymentInfo, error) {

	id, err := strconv.Atoi(reference)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_payment_reference")
	}

	resp, err := g.payment.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PaymentInfo{
		ExternalID: strconv.Itoa(resp.ID),
		Amount:     resp.TransactionAmount,
		Status:     resp.Status,
	}, nil
}

// Compile-time check
var _ Client = (*MercadoPago)(nil)
