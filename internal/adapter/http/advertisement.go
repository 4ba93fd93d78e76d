package httpadapter

import (
	"net/http"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// handleListAdvertisements returns the advertisements of {campaignID}. An
// unknown campaign yields 404 rather than an empty list.
func (h *Handler) handleListAdvertisements(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := pathID(r, "campaignID")
	if !ok {
		h.writeFailure(w, r, domain.ErrCampaignNotFound)
		return
	}
	ads, err := h.ads.ListAdvertisements(r.Context(), campaignID)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdvertisementResponses(ads))
}

func (h *Handler) handleGetAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "adID")
	if !ok {
		h.writeFailure(w, r, domain.ErrAdvertisementNotFound)
		return
	}
	ad, err := h.ads.GetAdvertisement(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdvertisementResponse(*ad))
}

// handleCreateAdvertisement creates an advertisement under {campaignID}.
func (h *Handler) handleCreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := pathID(r, "campaignID")
	if !ok {
		h.writeFailure(w, r, domain.ErrCampaignNotFound)
		return
	}
	var req port.AdvertisementCreateReq
	if err := decodeBody(w, r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	ad, err := h.ads.CreateAdvertisement(r.Context(), campaignID, req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toAdvertisementResponse(*ad))
}

func (h *Handler) handleUpdateAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "adID")
	if !ok {
		h.writeFailure(w, r, domain.ErrAdvertisementNotFound)
		return
	}
	var req port.AdvertisementUpdateReq
	if err := decodeBody(w, r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	ad, err := h.ads.UpdateAdvertisement(r.Context(), id, req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdvertisementResponse(*ad))
}

func (h *Handler) handleDeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "adID")
	if !ok {
		h.writeFailure(w, r, domain.ErrAdvertisementNotFound)
		return
	}
	if err := h.ads.DeleteAdvertisement(r.Context(), id); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.writeMessage(w, "Advertisement deleted successfully")
}
