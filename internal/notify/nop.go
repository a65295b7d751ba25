package notify

import (
	"context"

	"go.uber.org/zap"
)

// 送信キー未設定のときに使うダミー送信。内容はログに残すだけ。
type NopSender struct {
	log *zap.Logger
}

func NewNopSender(logger *zap.Logger) *NopSender {
	return &NopSender{log: logger}
}

func (s *NopSender) SendOrderConfirmation(ctx context.Context, customerEmail, adminEmail string, data OrderEmail) error {
	s.log.Info("email sending disabled, skipping order confirmation",
		zap.String("order_number", data.OrderNumber),
		zap.String("customer_email", customerEmail),
		zap.String("admin_email", adminEmail))
	return nil
}
