package client

import (
	"context"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

func (c *Client) Vouchers(ctx context.Context) result.Result[[]entity.Voucher] {
	return doJSON[[]entity.Voucher](ctx, c, http.MethodGet, "/api/vouchers", nil)
}

// VoucherUsages lists which vouchers this user has already burned, so
// the checkout screen can grey them out.
func (c *Client) VoucherUsages(ctx context.Context) result.Result[[]entity.VoucherUsage] {
	return doJSON[[]entity.VoucherUsage](ctx, c, http.MethodGet, "/api/vouchers/usages", nil)
}
