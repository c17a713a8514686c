package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/settings"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

type SettingsController struct {
	Settings *settings.Manager
}

func NewSettingsController(cfg *settings.Manager) *SettingsController {
	return &SettingsController{Settings: cfg}
}

func (sc *SettingsController) GetPrinterSettings(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Printer settings", sc.Settings.Printer())
}

func (sc *SettingsController) UpdatePrinterSettings(c *gin.Context) {
	// Decode over the current values so a partial payload only changes the
	// keys it carries.
	printer := sc.Settings.Printer()
	if err := c.ShouldBindJSON(&printer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.Settings.SetPrinter(printer); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Printer settings saved", printer)
}

func (sc *SettingsController) GetStoreSettings(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Store settings", sc.Settings.Store())
}

func (sc *SettingsController) UpdateStoreSettings(c *gin.Context) {
	store := sc.Settings.Store()
	if err := c.ShouldBindJSON(&store); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.Settings.SetStore(store); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Store settings saved", store)
}
