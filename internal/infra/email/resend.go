package email

import (
	"context"
	"fmt"
	"strings"

	"metahair/internal/notify"

	"github.com/resend/resend-go/v2"
)

// Resend経由で注文メールを送る。notify.Senderの実装。
type ResendSender struct {
	client *resend.Client
	from   string
	appURL string
}

func NewResendSender(apiKey, from, appURL string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		appURL: appURL,
	}
}

func (s *ResendSender) SendOrderConfirmation(ctx context.Context, customerEmail, adminEmail string, data notify.OrderEmail) error {
	//顧客向け
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{customerEmail},
		Subject: fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
		Html:    customerHTML(data),
	})
	if err != nil {
		return fmt.Errorf("send customer confirmation: %w", err)
	}

	//管理者向け
	_, err = s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{adminEmail},
		Subject: fmt.Sprintf("New Order - %s", data.OrderNumber),
		Html:    adminHTML(data, customerEmail, s.appURL),
	})
	if err != nil {
		return fmt.Errorf("send admin alert: %w", err)
	}

	return nil
}

func customerHTML(data notify.OrderEmail) string {
	var b strings.Builder
	b.WriteString("<h2>Thank you for your order!</h2>")
	fmt.Fprintf(&b, "<p>Order Number: %s</p>", data.OrderNumber)
	b.WriteString("<h3>Order Summary:</h3><ul>")
	writeItems(&b, data.Items)
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Total: %s</strong></p>", naira(data.Total))
	fmt.Fprintf(&b, "<p>Shipping Method: %s</p>", data.ShippingMethod)
	if data.ShippingAddress != "" {
		fmt.Fprintf(&b, "<p>Shipping Address: %s</p>", data.ShippingAddress)
	}
	return b.String()
}

func adminHTML(data notify.OrderEmail, customerEmail, appURL string) string {
	var b strings.Builder
	b.WriteString("<h2>New Order Received</h2>")
	fmt.Fprintf(&b, "<p>Customer: %s</p>", data.CustomerName)
	fmt.Fprintf(&b, "<p>Email: %s</p>", customerEmail)
	fmt.Fprintf(&b, "<p>Order Number: %s</p>", data.OrderNumber)
	b.WriteString("<h3>Order Summary:</h3><ul>")
	writeItems(&b, data.Items)
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Subtotal: %s</p>", naira(data.Subtotal))
	fmt.Fprintf(&b, "<p>Shipping: %s (%s)</p>", naira(data.ShippingCost), data.ShippingMethod)
	fmt.Fprintf(&b, "<p><strong>Total: %s</strong></p>", naira(data.Total))
	if appURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s/admin/dashboard">View Order in Dashboard</a></p>`, appURL)
	}
	return b.String()
}

func writeItems(b *strings.Builder, items []notify.OrderEmailItem) {
	for _, it := range items {
		if it.Image != "" {
			fmt.Fprintf(b, `<li><img src="%s" width="48" alt=""/> %s x%d - %s</li>`,
				it.Image, it.ProductName, it.Quantity, naira(it.Price))
			continue
		}
		fmt.Fprintf(b, "<li>%s x%d - %s</li>", it.ProductName, it.Quantity, naira(it.Price))
	}
}

// コボ→ナイラ表示
func naira(kobo int64) string {
	return fmt.Sprintf("₦%.2f", float64(kobo)/100)
}
