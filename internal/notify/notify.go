package notify

import "context"

// 通知に載せる明細。Imageは代表画像（任意）。
type OrderEmailItem struct {
	ProductName string
	Quantity    int64
	Price       int64
	Image       string
}

// 注文通知の素材。金額はコボ。
type OrderEmail struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	Items           []OrderEmailItem
	Subtotal        int64
	ShippingCost    int64
	Total           int64
	ShippingMethod  string
	ShippingAddress string
}

// 実際の送信手段（Resendなど）の約束。
type Sender interface {
	//顧客向け確認メールと管理者向け通知メールを送る。
	SendOrderConfirmation(ctx context.Context, customerEmail, adminEmail string, data OrderEmail) error
}
