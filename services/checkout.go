package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/settings"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// surchargePattern matches price modifiers embedded in option text, e.g.
// "Chilli Oil (+R5)". Multiple tokens in one option string all accumulate.
var surchargePattern = regexp.MustCompile(`\(\+R([\d.]+)\)`)

// OptionSurcharge sums every surcharge token in an option string. A string
// without tokens contributes zero.
func OptionSurcharge(option string) float64 {
	var total float64
	for _, match := range surchargePattern.FindAllStringSubmatch(option, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		total += value
	}
	return total
}

// LineTotal prices one cart line: (base price + option surcharges) x qty.
func LineTotal(item models.CartItem) float64 {
	unit := item.Product.Price + OptionSurcharge(item.SelectedOption)
	return unit * float64(item.Quantity)
}

// CartSubtotal sums line totals without tax. No rounding happens during
// accumulation; display formatting rounds once at the end.
func CartSubtotal(cart []models.CartItem) float64 {
	var subtotal float64
	for _, item := range cart {
		subtotal += LineTotal(item)
	}
	return subtotal
}

// orderWriter is the write half of the remote store the engine needs.
type orderWriter interface {
	AddOrder(order models.Order) *models.Order
	UpdateProduct(product models.Product) *models.Product
}

// CheckoutService turns the session cart into a persisted Order. Local state
// is updated first and always succeeds from the cashier's perspective; the
// remote writes are fired afterwards and their failures surface only on the
// WriteErrors channel, never as a rollback.
type CheckoutService struct {
	State    *state.AppState
	Remote   orderWriter
	Settings *settings.Manager

	// WriteErrors receives remote persistence failures for observation
	// (logging, a status indicator). It is never closed.
	WriteErrors chan error
}

func NewCheckoutService(st *state.AppState, remote orderWriter, cfg *settings.Manager) *CheckoutService {
	return &CheckoutService{
		State:       st,
		Remote:      remote,
		Settings:    cfg,
		WriteErrors: make(chan error, 16),
	}
}

type CheckoutRequest struct {
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	TableNumber   int      `json:"table_number"`
	Tendered      *float64 `json:"tendered"`
	StaffName     string   `json:"-"`
}

var ErrEmptyCart = errors.New("cart is empty")

// Checkout executes the full order creation flow against the current cart.
func (cs *CheckoutService) Checkout(req CheckoutRequest) (*models.Order, error) {
	cart := cs.State.Cart()
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := CartSubtotal(cart)
	taxRate := cs.Settings.Store().TaxRate
	total := subtotal + subtotal*taxRate

	order := models.Order{
		ID:            newOrderID(),
		Items:         cloneCart(cart),
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Type:          req.Type,
		Date:          time.Now().Format("2006-01-02 15:04"),
		Status:        StartStatus(cs.State.OrderStatuses()),
		OrderBy:       staffName(req.StaffName),
		OpenDrawer:    req.PaymentMethod == models.PaymentCash,
		CreatedAt:     time.Now(),
	}

	if req.Type == models.OrderTypeDineIn {
		table := req.TableNumber
		order.TableNumber = &table
	}

	if req.PaymentMethod == models.PaymentCash && req.Tendered != nil {
		tendered := *req.Tendered
		change := tendered - total
		if change < 0 {
			change = 0
		}
		order.Tendered = &tendered
		order.Change = &change
	}

	// Phase 1: local, always succeeds. Stock drops per product by the summed
	// quantity across all lines referencing it, floored at zero.
	quantities := make(map[string]int)
	for _, item := range cart {
		quantities[item.Product.ID] += item.Quantity
	}
	updatedProducts := cs.State.DecrementStock(quantities)
	cs.State.PrependOrder(order)
	cs.State.ClearCart()

	// Phase 2: fire-and-forget remote writes. Order and stock updates are
	// independent; a partial failure leaves local and remote diverged until
	// the next refresh, which is the accepted trade-off here.
	if cs.State.Connected() {
		go cs.persist(order, updatedProducts)
	}

	return &order, nil
}

func (cs *CheckoutService) persist(order models.Order, products []models.Product) {
	for _, p := range products {
		if cs.Remote.UpdateProduct(p) == nil {
			cs.reportWriteError(fmt.Errorf("stock update for product %s failed", p.ID))
		}
	}
	if cs.Remote.AddOrder(order) == nil {
		cs.reportWriteError(fmt.Errorf("order %s not persisted", order.ID))
	}
}

func (cs *CheckoutService) reportWriteError(err error) {
	utils.ErrorLogger.Printf("checkout write: %v", err)
	select {
	case cs.WriteErrors <- err:
	default:
	}
}

func cloneCart(cart []models.CartItem) []models.CartItem {
	items := make([]models.CartItem, len(cart))
	copy(items, cart)
	for i := range items {
		if items[i].Product.Options != nil {
			items[i].Product.Options = append([]string(nil), items[i].Product.Options...)
		}
	}
	return items
}

func newOrderID() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "ORD-" + millis[len(millis)-6:]
}

func staffName(name string) string {
	if name == "" {
		return "Staff"
	}
	return name
}
