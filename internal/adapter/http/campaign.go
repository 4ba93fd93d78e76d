package httpadapter

import (
	"net/http"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// handleListCampaigns returns every campaign as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

// handleGetCampaign returns the campaign bound to {campaignID}, or 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "campaignID")
	if !ok {
		h.writeFailure(w, r, domain.ErrCampaignNotFound)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleCreateCampaign creates a campaign from the request body and answers
// 201 with its full representation. Missing fields, unparsable dates and a
// start date after the end date produce 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CampaignCreateReq
	if err := decodeBody(w, r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleUpdateCampaign applies a partial update: only keys present in the
// body are changed.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "campaignID")
	if !ok {
		h.writeFailure(w, r, domain.ErrCampaignNotFound)
		return
	}
	var req port.CampaignUpdateReq
	if err := decodeBody(w, r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	c, err := h.campaigns.UpdateCampaign(r.Context(), id, req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleDeleteCampaign deletes a campaign and its advertisements.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "campaignID")
	if !ok {
		h.writeFailure(w, r, domain.ErrCampaignNotFound)
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeMessage(w, "Campaign deleted successfully")
}
