package gateway

import "context"

// Situação de um pagamento consultado no gateway.
type PaymentInfo struct {
	ExternalID string
	Amount     float64
	Status     string
}

const StatusApproved = "approved"

// Client é a dependência explícita injetada nos use cases de booking
// e assinatura — nada de singleton global do SDK.
type Client interface {
	// InitMandate cria a autorização de cobrança recorrente do
	// profissional e devolve o id externo da assinatura.
	InitMandate(
		ctx context.Context,
		payerEmail string,
		reference string,
	) (string, error)

	// VerifyPayment consulta um pagamento pelo id externo informado
	// pelo cliente (fluxo pré-pago).
	VerifyPayment(
		ctx context.Context,
		reference string,
	) (*PaymentInfo, error)
}
