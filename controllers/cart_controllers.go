package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/services"
	"github.com/cosmodumplings/cosmo-pos/settings"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

type CartController struct {
	State    *state.AppState
	Settings *settings.Manager
}

func NewCartController(st *state.AppState, cfg *settings.Manager) *CartController {
	return &CartController{State: st, Settings: cfg}
}

// GetCart returns the session cart with a running totals preview.
func (cc *CartController) GetCart(c *gin.Context) {
	cart := cc.State.Cart()
	subtotal := services.CartSubtotal(cart)
	tax := subtotal * cc.Settings.Store().TaxRate

	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{
		"items":    cart,
		"count":    cc.State.CartCount(),
		"subtotal": subtotal,
		"tax":      tax,
		"total":    subtotal + tax,
	})
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		ProductID      string `json:"product_id" binding:"required"`
		Quantity       int    `json:"quantity"`
		Notes          string `json:"notes"`
		SelectedOption string `json:"selected_option"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, ok := cc.State.ProductByID(req.ProductID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	cc.State.AddToCart(product, req.Quantity, req.Notes, req.SelectedOption)
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.State.Cart())
}

func (cc *CartController) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		QuantityDelta *int    `json:"quantity_delta"`
		Notes         *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ok := true
	if req.QuantityDelta != nil {
		ok = cc.State.AdjustCartQuantity(index, *req.QuantityDelta)
	}
	if ok && req.Notes != nil {
		ok = cc.State.SetCartNote(index, *req.Notes)
	}
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("no such cart line"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.State.Cart())
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !cc.State.RemoveCartItem(index) {
		utils.RespondError(c, http.StatusNotFound, errors.New("no such cart line"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.State.Cart())
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.State.ClearCart()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", gin.H{})
}
