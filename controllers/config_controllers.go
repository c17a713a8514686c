package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/store"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// Configuration entities: categories, order statuses, kitchen screens. These
// are remote-first (ids are assigned by the store); the returned row is
// applied to the cache immediately rather than waiting for the journal echo.

type CategoryController struct {
	State *state.AppState
	Store *store.RemoteStore
}

func NewCategoryController(st *state.AppState, remote *store.RemoteStore) *CategoryController {
	return &CategoryController{State: st, Store: remote}
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", cc.State.Categories())
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !cc.State.Connected() {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("not connected to the store"))
		return
	}

	saved := cc.Store.AddCategory(req.Name)
	if saved == nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("category not saved"))
		return
	}

	cc.State.Apply(state.Event{
		Collection: state.CollectionCategories,
		Action:     state.ActionInsert,
		ID:         strconv.FormatUint(uint64(saved.ID), 10),
		Category:   saved,
	})

	utils.RespondJSON(c, http.StatusCreated, "Category added", saved)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("cat_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if cc.State.Connected() {
		cc.Store.DeleteCategory(uint(id))
	}
	cc.State.Apply(state.Event{
		Collection: state.CollectionCategories,
		Action:     state.ActionDelete,
		ID:         strconv.FormatUint(id, 10),
	})

	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}

type StatusController struct {
	State *state.AppState
	Store *store.RemoteStore
}

func NewStatusController(st *state.AppState, remote *store.RemoteStore) *StatusController {
	return &StatusController{State: st, Store: remote}
}

func (sc *StatusController) GetAllStatuses(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of order statuses", sc.State.OrderStatuses())
}

func (sc *StatusController) CreateStatus(c *gin.Context) {
	var status models.OrderStatus
	if err := c.ShouldBindJSON(&status); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !sc.State.Connected() {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("not connected to the store"))
		return
	}

	status.ID = 0
	saved := sc.Store.AddOrderStatus(status)
	if saved == nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("status not saved"))
		return
	}

	sc.State.Apply(state.Event{
		Collection: state.CollectionOrderStatuses,
		Action:     state.ActionInsert,
		ID:         strconv.FormatUint(uint64(saved.ID), 10),
		Status:     saved,
	})

	utils.RespondJSON(c, http.StatusCreated, "Status added", saved)
}

// DeleteStatus refuses to drop the two bootstrap statuses the order flow
// depends on. The guard lives here, at the configuration layer; transitions
// themselves are never blocked.
func (sc *StatusController) DeleteStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("status_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, s := range sc.State.OrderStatuses() {
		if uint64(s.ID) == id && (s.Label == "Pending" || s.Label == "Completed") {
			utils.RespondError(c, http.StatusBadRequest, errors.New("cannot delete the "+s.Label+" status"))
			return
		}
	}

	if sc.State.Connected() {
		sc.Store.DeleteOrderStatus(uint(id))
	}
	sc.State.Apply(state.Event{
		Collection: state.CollectionOrderStatuses,
		Action:     state.ActionDelete,
		ID:         strconv.FormatUint(id, 10),
	})

	utils.RespondJSON(c, http.StatusOK, "Status deleted", gin.H{"status_id": id})
}

type ScreenController struct {
	State *state.AppState
	Store *store.RemoteStore
}

func NewScreenController(st *state.AppState, remote *store.RemoteStore) *ScreenController {
	return &ScreenController{State: st, Store: remote}
}

func (sc *ScreenController) GetAllScreens(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of kitchen screens", sc.State.KitchenScreens())
}

func (sc *ScreenController) CreateScreen(c *gin.Context) {
	var screen models.KitchenScreen
	if err := c.ShouldBindJSON(&screen); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !sc.State.Connected() {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("not connected to the store"))
		return
	}

	screen.ID = 0
	saved := sc.Store.AddKitchenScreen(screen)
	if saved == nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("screen not saved"))
		return
	}

	sc.State.Apply(state.Event{
		Collection: state.CollectionKitchenScreens,
		Action:     state.ActionInsert,
		ID:         strconv.FormatUint(uint64(saved.ID), 10),
		Screen:     saved,
	})

	utils.RespondJSON(c, http.StatusCreated, "Screen added", saved)
}

func (sc *ScreenController) DeleteScreen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("screen_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if sc.State.Connected() {
		sc.Store.DeleteKitchenScreen(uint(id))
	}
	sc.State.Apply(state.Event{
		Collection: state.CollectionKitchenScreens,
		Action:     state.ActionDelete,
		ID:         strconv.FormatUint(id, 10),
	})

	utils.RespondJSON(c, http.StatusOK, "Screen removed", gin.H{"screen_id": id})
}
