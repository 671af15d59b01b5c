package client

import (
	"context"
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

// RequestRefund files a refund with a proof image. Reason and proof are
// validated client-side, matching the old pre-submit checks.
func (c *Client) RequestRefund(ctx context.Context, orderID uint, reason, proofPath string) result.Result[entity.Refund] {
	if reason == "" {
		return result.Err[entity.Refund](result.KindValidation, "refund reason is required")
	}
	if proofPath == "" {
		return result.Err[entity.Refund](result.KindValidation, "proof image is required")
	}
	return doMultipart[entity.Refund](ctx, c, "/api/refunds",
		map[string]string{
			"order_id": strconv.FormatUint(uint64(orderID), 10),
			"reason":   reason,
		},
		[]uploadFile{{Field: "proof", Path: proofPath}},
	)
}
