package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/seed"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/store"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

type UserController struct {
	State *state.AppState
	Store *store.RemoteStore
}

func NewUserController(st *state.AppState, remote *store.RemoteStore) *UserController {
	return &UserController{State: st, Store: remote}
}

// Login verifies a 4-digit PIN against the cached user list, so sign-in
// works identically in fallback mode. PINs are stored hashed.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		UserID string `json:"user_id" binding:"required"`
		Pin    string `json:"pin" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, ok := uc.State.UserByID(input.UserID)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(input.Pin)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All users", uc.State.Users())
}

// CreateUser applies the new account locally first, then writes through to
// the remote store when connected.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Role string `json:"role" binding:"required"`
		Pin  string `json:"pin" binding:"required,len=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Role != models.RoleAdmin && req.Role != models.RoleStaff {
		utils.RespondError(c, http.StatusBadRequest, errors.New("role must be Admin or Staff"))
		return
	}

	user := models.User{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Role:    req.Role,
		PinHash: seed.HashPIN(req.Pin),
	}

	uc.State.AddUser(user)
	if uc.State.Connected() {
		uc.Store.AddUser(user)
	}

	utils.RespondJSON(c, http.StatusCreated, "User added", user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("user_id")

	uc.State.RemoveUser(id)
	if uc.State.Connected() {
		uc.Store.DeleteUser(id)
	}

	utils.RespondJSON(c, http.StatusOK, "User removed", gin.H{"user_id": id})
}
