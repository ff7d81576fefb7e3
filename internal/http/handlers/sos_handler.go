// README: Emergency contact and SOS trigger handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/modules/sos"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

type SOSHandler struct {
	sos *sos.Service
}

func NewSOSHandler(svc *sos.Service) *SOSHandler {
	return &SOSHandler{sos: svc}
}

func (h *SOSHandler) ListContacts(c *gin.Context) {
	if !requireOwner(c, c.Param("userID")) {
		return
	}
	contacts, err := h.sos.Contacts(c.Request.Context(), types.ID(c.Param("userID")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

type contactReq struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

func (h *SOSHandler) AddContact(c *gin.Context) {
	if !requireOwner(c, c.Param("userID")) {
		return
	}
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	contact, err := h.sos.AddContact(c.Request.Context(), types.ID(c.Param("userID")), req.Name, req.Phone, req.Relation)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *SOSHandler) UpdateContact(c *gin.Context) {
	if !requireOwner(c, c.Param("userID")) {
		return
	}
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	contact := &sos.Contact{
		ID:       types.ID(c.Param("contactID")),
		UserID:   types.ID(c.Param("userID")),
		Name:     req.Name,
		Phone:    req.Phone,
		Relation: req.Relation,
	}
	if err := h.sos.UpdateContact(c.Request.Context(), contact); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *SOSHandler) DeleteContact(c *gin.Context) {
	if !requireOwner(c, c.Param("userID")) {
		return
	}
	err := h.sos.DeleteContact(c.Request.Context(), types.ID(c.Param("userID")), types.ID(c.Param("contactID")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type triggerReq struct {
	FullName string  `json:"full_name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

func (h *SOSHandler) Trigger(c *gin.Context) {
	if !requireOwner(c, c.Param("userID")) {
		return
	}
	var req triggerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	alert, err := h.sos.Trigger(c.Request.Context(), sos.TriggerCommand{
		UserID:   types.ID(c.Param("userID")),
		FullName: req.FullName,
		Lat:      req.Lat,
		Lng:      req.Lng,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert_id": alert.ID, "contacted": alert.Contacted})
}
