package purchaseorder

import (
	"fmt"
	"html/template"
	"math/rand"
	"strings"
	"time"
)

// PODetails holds everything the purchase-order document templates from
type PODetails struct {
	PONumber       string    `json:"po_number"`
	BuyerName      string    `json:"buyer_name"`
	BuyerEmail     string    `json:"buyer_email"`
	VendorName     string    `json:"vendor_name"`
	VendorEmail    string    `json:"vendor_email"`
	Item           string    `json:"item"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	TotalPrice     float64   `json:"total_price"`
	DeliveryDays   int       `json:"delivery_days"`
	WarrantyMonths int       `json:"warranty_months"`
	OrderDate      time.Time `json:"order_date"`
	DeliveryDate   time.Time `json:"delivery_date"`
}

const poNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePONumber returns an order number like PO-483920-X7Q
func GeneratePONumber() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	var suffix strings.Builder
	for i := 0; i < 3; i++ {
		suffix.WriteByte(poNumberAlphabet[rand.Intn(len(poNumberAlphabet))])
	}
	return fmt.Sprintf("PO-%s-%s", ts, suffix.String())
}

// RenderHTML produces the downloadable purchase-order document
func RenderHTML(details PODetails) (string, error) {
	var b strings.Builder
	if err := poTemplate.Execute(&b, details); err != nil {
		return "", fmt.Errorf("purchaseorder: render %s: %w", details.PONumber, err)
	}
	return b.String(), nil
}

var poTemplate = template.Must(template.New("po").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("January 2, 2006") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Purchase Order - {{.PONumber}}</title>
  <style>
    body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background: white; color: #333; }
    .header { border-bottom: 3px solid #ff6f61; padding-bottom: 20px; margin-bottom: 30px; }
    .po-number { font-size: 24px; font-weight: bold; color: #ff6f61; }
    .date { color: #666; font-size: 14px; }
    .section { margin-bottom: 30px; }
    .section h3 { color: #ff6f61; border-bottom: 1px solid #eee; padding-bottom: 5px; }
    .two-column { display: flex; gap: 40px; }
    .column { flex: 1; }
    .item-table { width: 100%; border-collapse: collapse; margin-top: 10px; }
    .item-table th, .item-table td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    .item-table th { background: #fafafa; }
    .total-row td { font-weight: bold; }
    .signatures { display: flex; gap: 60px; margin-top: 60px; }
    .signature { flex: 1; border-top: 1px solid #333; padding-top: 8px; font-size: 14px; color: #666; }
  </style>
</head>
<body>
  <div class="header">
    <div class="po-number">{{.PONumber}}</div>
    <div class="date">Order date: {{date .OrderDate}}</div>
  </div>

  <div class="section two-column">
    <div class="column">
      <h3>Buyer</h3>
      <p>{{.BuyerName}}<br>{{.BuyerEmail}}</p>
    </div>
    <div class="column">
      <h3>Vendor</h3>
      <p>{{.VendorName}}<br>{{.VendorEmail}}</p>
    </div>
  </div>

  <div class="section">
    <h3>Order</h3>
    <table class="item-table">
      <tr><th>Item</th><th>Quantity</th><th>Unit price</th><th>Total</th></tr>
      <tr>
        <td>{{.Item}}</td>
        <td>{{.Quantity}}</td>
        <td>${{money .UnitPrice}}</td>
        <td>${{money .TotalPrice}}</td>
      </tr>
      <tr class="total-row"><td colspan="3">Total</td><td>${{money .TotalPrice}}</td></tr>
    </table>
  </div>

  <div class="section">
    <h3>Terms</h3>
    <p>Delivery within {{.DeliveryDays}} days (expected {{date .DeliveryDate}}).<br>
    Warranty: {{.WarrantyMonths}} months.</p>
  </div>

  <div class="signatures">
    <div class="signature">Authorized by (buyer)</div>
    <div class="signature">Accepted by (vendor)</div>
  </div>
</body>
</html>
`))
