package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/store"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

type ProductController struct {
	State *state.AppState
	Store *store.RemoteStore
}

func NewProductController(st *state.AppState, remote *store.RemoteStore) *ProductController {
	return &ProductController{State: st, Store: remote}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of products", pc.State.Products())
}

// CreateProduct applies the catalog change optimistically: the cache is
// updated before the remote write, and the write is skipped entirely when
// disconnected. The insert path in Apply dedupes the echo event from our own
// write.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	pc.State.Apply(state.Event{
		Collection: state.CollectionProducts,
		Action:     state.ActionInsert,
		ID:         product.ID,
		Product:    &product,
	})

	if pc.State.Connected() {
		if saved := pc.Store.AddProduct(product); saved != nil {
			pc.State.Apply(state.Event{
				Collection: state.CollectionProducts,
				Action:     state.ActionUpdate,
				ID:         saved.ID,
				Product:    saved,
			})
			product = *saved
		}
	}

	utils.RespondJSON(c, http.StatusCreated, "Product added", product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("product_id")

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	product.ID = id

	pc.State.Apply(state.Event{
		Collection: state.CollectionProducts,
		Action:     state.ActionUpdate,
		ID:         id,
		Product:    &product,
	})

	if pc.State.Connected() {
		pc.Store.UpdateProduct(product)
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("product_id")

	pc.State.Apply(state.Event{
		Collection: state.CollectionProducts,
		Action:     state.ActionDelete,
		ID:         id,
	})

	if pc.State.Connected() {
		pc.Store.DeleteProduct(id)
	}

	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}
