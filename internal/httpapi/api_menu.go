package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	menuhttpmapper "github.com/cheezenes/pos-api/internal/domains/menu/adapters/http/mapper"
	menuports "github.com/cheezenes/pos-api/internal/domains/menu/ports"
)

// MenuAPI wires HTTP transport with the menu bounded context service.
type MenuAPI struct {
	service menuports.Service
}

// NewMenuAPI creates a MenuAPI backed by the provided service.
func NewMenuAPI(service menuports.Service) MenuAPI {
	return MenuAPI{service: service}
}

// Get /v1/menu-items
// List the menu catalog, sorted by category then name
func (api *MenuAPI) GetMenuItems(c *gin.Context) {
	items, err := api.service.List(c.Request.Context())
	if err != nil {
		respondMenuServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menuhttpmapper.FromDomainItemList(items))
}

// Post /v1/menu-items
// Add a new item to the menu
func (api *MenuAPI) AddMenuItem(c *gin.Context) {
	var payload menuhttpmapper.MutationItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.Add(c.Request.Context(), menuhttpmapper.ToItemInput(payload))
	if err != nil {
		respondMenuServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menuhttpmapper.FromDomainItem(saved))
}

// Put /v1/menu-items/:itemId
// Fully replace an existing menu item
func (api *MenuAPI) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	var payload menuhttpmapper.MutationItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, menuhttpmapper.ToItemInput(payload))
	if err != nil {
		respondMenuServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menuhttpmapper.FromDomainItem(updated))
}

// Delete /v1/menu-items/:itemId
// Remove a menu item; historical order snapshots are untouched
func (api *MenuAPI) DeleteMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondMenuServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
