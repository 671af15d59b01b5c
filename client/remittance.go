package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

// RemittanceSummary fetches the expected/remitted/outstanding totals
// the server computes for the rider.
func (c *Client) RemittanceSummary(ctx context.Context) result.Result[entity.RemittanceSummary] {
	return doJSON[entity.RemittanceSummary](ctx, c, http.MethodGet, "/api/rider/remittance/summary", nil)
}

func (c *Client) RemittanceHistory(ctx context.Context) result.Result[[]entity.Remittance] {
	return doJSON[[]entity.Remittance](ctx, c, http.MethodGet, "/api/rider/remittance/history", nil)
}

// SubmitRemittance uploads a deposit slip photo with the amount. Both
// are required; missing input fails before any request goes out.
func (c *Client) SubmitRemittance(ctx context.Context, amount money.Centavos, slipPath string) result.Result[entity.Remittance] {
	if amount <= 0 {
		return result.Err[entity.Remittance](result.KindValidation, "amount is required")
	}
	if slipPath == "" {
		return result.Err[entity.Remittance](result.KindValidation, "deposit slip is required")
	}
	return doMultipart[entity.Remittance](ctx, c, "/api/rider/remittance/submit",
		map[string]string{"amount": strconv.FormatInt(int64(amount), 10)},
		[]uploadFile{{Field: "slip", Path: slipPath}},
	)
}
