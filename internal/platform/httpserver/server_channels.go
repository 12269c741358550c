package httpserver

import (
	"errors"
	"net/http"

	channelerrors "creatorpay/contexts/content-tracking/channel-service/domain/errors"
	channelhttp "creatorpay/contexts/content-tracking/channel-service/transport/http"
)

func writeChannelError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, channelhttp.ErrorResponse{Code: code, Message: message})
}

func writeChannelDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, channelerrors.ErrChannelNotFound),
		errors.Is(err, channelerrors.ErrMappingNotFound):
		writeChannelError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, channelerrors.ErrInvalidChannelInput):
		writeChannelError(w, http.StatusUnprocessableEntity, "invalid_channel", err.Error())
	case errors.Is(err, channelerrors.ErrMappingExists):
		writeChannelError(w, http.StatusConflict, "mapping_exists", err.Error())
	default:
		writeChannelError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req channelhttp.UpsertChannelRequest
	if !s.decodeJSON(w, r, &req, writeChannelError) {
		return
	}
	resp, err := s.channels.Handler.CreateChannelHandler(r.Context(), req)
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	resp, err := s.channels.Handler.ListChannelsHandler(r.Context())
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.channels.Handler.GetChannelHandler(r.Context(), r.PathValue("channel_id"))
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	var req channelhttp.UpsertChannelRequest
	if !s.decodeJSON(w, r, &req, writeChannelError) {
		return
	}
	resp, err := s.channels.Handler.UpdateChannelHandler(r.Context(), r.PathValue("channel_id"), req)
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.channels.Handler.DeleteChannelHandler(r.Context(), r.PathValue("channel_id"))
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMapChannelContent(w http.ResponseWriter, r *http.Request) {
	var req channelhttp.MapContentRequest
	if !s.decodeJSON(w, r, &req, writeChannelError) {
		return
	}
	resp, err := s.channels.Handler.MapContentHandler(r.Context(), r.PathValue("channel_id"), req)
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListChannelContent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.channels.Handler.ListMappingsHandler(r.Context(), r.PathValue("channel_id"))
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnmapChannelContent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.channels.Handler.UnmapContentHandler(
		r.Context(), r.PathValue("channel_id"), r.PathValue("content_id"))
	if err != nil {
		writeChannelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
