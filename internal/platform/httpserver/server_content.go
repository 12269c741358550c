package httpserver

import (
	"errors"
	"net/http"

	contenterrors "creatorpay/contexts/content-tracking/content-service/domain/errors"
	contenthttp "creatorpay/contexts/content-tracking/content-service/transport/http"
)

func writeContentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, contenthttp.ErrorResponse{Code: code, Message: message})
}

func writeContentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contenterrors.ErrItemNotFound),
		errors.Is(err, contenterrors.ErrRuleNotFound):
		writeContentError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, contenterrors.ErrInvalidItemInput),
		errors.Is(err, contenterrors.ErrInvalidViewCount):
		writeContentError(w, http.StatusUnprocessableEntity, "invalid_content", err.Error())
	case errors.Is(err, contenterrors.ErrAlreadyFinalized),
		errors.Is(err, contenterrors.ErrFinalViewsTooLow):
		writeContentError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeContentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateContentItem(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.CreateContentItemRequest
	if !s.decodeJSON(w, r, &req, writeContentError) {
		return
	}
	resp, err := s.content.Handler.CreateItemHandler(r.Context(), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListContentItems(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	resp, err := s.content.Handler.ListItemsHandler(r.Context(), bucket)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetContentItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetItemHandler(r.Context(), r.PathValue("content_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateContentItem(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.UpdateContentItemRequest
	if !s.decodeJSON(w, r, &req, writeContentError) {
		return
	}
	resp, err := s.content.Handler.UpdateItemHandler(r.Context(), r.PathValue("content_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteContentItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.DeleteItemHandler(r.Context(), r.PathValue("content_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordContentViews(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.RecordViewsRequest
	if !s.decodeJSON(w, r, &req, writeContentError) {
		return
	}
	resp, err := s.content.Handler.RecordViewsHandler(r.Context(), r.PathValue("content_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleContentViewHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ViewHistoryHandler(r.Context(), r.PathValue("content_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFinalizeContentItem(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.FinalizeContentItemRequest
	if !s.decodeJSON(w, r, &req, writeContentError) {
		return
	}
	resp, err := s.content.Handler.FinalizeItemHandler(r.Context(), r.PathValue("content_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
