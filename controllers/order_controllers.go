package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/services"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/store"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

type OrderController struct {
	State    *state.AppState
	Checkout *services.CheckoutService
	Store    *store.RemoteStore
	Loader   *state.Loader
	Notifier *services.Notifier
}

func NewOrderController(st *state.AppState, checkout *services.CheckoutService, remote *store.RemoteStore, loader *state.Loader, notifier *services.Notifier) *OrderController {
	return &OrderController{
		State:    st,
		Checkout: checkout,
		Store:    remote,
		Loader:   loader,
		Notifier: notifier,
	}
}

// CheckoutOrder turns the current cart into an order. The staff name on the
// order comes from the authenticated session, not the request body.
func (oc *OrderController) CheckoutOrder(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.PaymentMethod != models.PaymentCash && req.PaymentMethod != models.PaymentCard {
		utils.RespondError(c, http.StatusBadRequest, errors.New("payment method must be Cash or Card"))
		return
	}
	switch req.Type {
	case models.OrderTypeDineIn, models.OrderTypeTakeaway, models.OrderTypeDelivery:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown order type"))
		return
	}

	if name, exists := c.Get("user_name"); exists {
		req.StaffName, _ = name.(string)
	}

	order, err := oc.Checkout.Checkout(req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Order history", oc.State.Orders())
}

// GetKitchenDisplay returns only the orders the kitchen still cares about.
func (oc *OrderController) GetKitchenDisplay(c *gin.Context) {
	statuses := oc.State.OrderStatuses()
	active := make([]models.Order, 0)
	for _, order := range oc.State.Orders() {
		if services.KitchenActive(order, statuses) {
			active = append(active, order)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen display", active)
}

// UpdateOrderStatus moves an order forward along the status chain, or to an
// explicit target when one is supplied. The cache is updated first; the
// remote write happens only when connected and its failure is logged, not
// surfaced.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	// An empty body means "advance one step".
	var req struct {
		Status string `json:"status"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	order, ok := oc.State.OrderByID(orderID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	next := req.Status
	if next == "" {
		next = services.NextStatus(order.Status, oc.State.OrderStatuses())
	}

	oc.State.SetOrderStatus(orderID, next)
	if oc.State.Connected() {
		if !oc.Store.UpdateOrderStatus(orderID, next) {
			utils.ErrorLogger.Printf("status write for order %s failed", orderID)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", gin.H{
		"order_id": orderID,
		"status":   next,
	})
}

// Dashboard summarises the terminal at a glance.
func (oc *OrderController) Dashboard(c *gin.Context) {
	statuses := oc.State.OrderStatuses()
	kitchen := 0
	for _, order := range oc.State.Orders() {
		if services.KitchenActive(order, statuses) {
			kitchen++
		}
	}

	lowStock := make([]models.Product, 0)
	for _, p := range oc.State.Products() {
		if p.Stock < 10 {
			lowStock = append(lowStock, p)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard", gin.H{
		"connected":      oc.State.Connected(),
		"kitchen_orders": kitchen,
		"low_stock":      lowStock,
		"cart_count":     oc.State.CartCount(),
	})
}

// Refresh re-runs the startup load against the remote store.
func (oc *OrderController) Refresh(c *gin.Context) {
	oc.Loader.LoadAll()
	utils.RespondJSON(c, http.StatusOK, "State reloaded", gin.H{
		"connected": oc.State.Connected(),
		"orders":    len(oc.State.Orders()),
		"products":  len(oc.State.Products()),
	})
}

func (oc *OrderController) EmailReceipt(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, ok := oc.State.OrderByID(req.OrderID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if !oc.Notifier.SendReceiptEmail(req.Email, order) {
		utils.RespondError(c, http.StatusBadGateway, errors.New("receipt email not delivered"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Receipt emailed", gin.H{"order_id": order.ID})
}

func (oc *OrderController) SMSReceipt(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, ok := oc.State.OrderByID(req.OrderID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	message := req.Message
	if message == "" {
		message = "Your order " + order.ID + " total was " + utils.FormatCurrency(order.Total)
	}

	if !oc.Notifier.SendReceiptSMS(req.Phone, order, message) {
		utils.RespondError(c, http.StatusBadGateway, errors.New("receipt SMS not delivered"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Receipt sent by SMS", gin.H{"order_id": order.ID})
}
