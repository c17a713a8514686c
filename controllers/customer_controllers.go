package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

type CustomerController struct {
	State *state.AppState
}

func NewCustomerController(st *state.AppState) *CustomerController {
	return &CustomerController{State: st}
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of customers", cc.State.Customers())
}
