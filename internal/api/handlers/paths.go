package handlers

import (
	"encoding/json"
	"errors"
	"guidance-service/internal/api/dto"
	"guidance-service/internal/domain"
	"guidance-service/internal/services"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// PathHandler exposes stored paths and guidance evaluation against them.
type PathHandler struct {
	Service  *services.GuidanceService
	Validate *validator.Validate
}

func NewPathHandler(svc *services.GuidanceService) *PathHandler {
	return &PathHandler{Service: svc, Validate: validator.New()}
}

func (h *PathHandler) List(w http.ResponseWriter, r *http.Request) {
	paths, err := h.Service.Paths(r.Context())
	if err != nil {
		writeDomainError(w, r, "list paths", err)
		return
	}

	res := dto.ListPathsResponse{
		Paths: make([]dto.PathSummaryResponse, 0, len(paths)),
	}
	for _, p := range paths {
		res.Paths = append(res.Paths, dto.PathSummaryResponse{
			PathID:        p.ID,
			Name:          p.Name,
			WaypointCount: p.WaypointCount,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PathHandler) Get(w http.ResponseWriter, r *http.Request) {
	path, err := h.Service.Path(r.Context(), chi.URLParam(r, "pathID"))
	if err != nil {
		writeDomainError(w, r, "get path", err)
		return
	}

	res := dto.PathResponse{
		PathID:    path.ID,
		Name:      path.Name,
		Waypoints: make([]dto.WaypointResponse, 0, len(path.Waypoints)),
	}
	for _, wp := range path.Waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			WaypointID: string(wp.ID),
			X:          wp.Location.X,
			Y:          wp.Location.Y,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Guide evaluates the next instruction for a user on the given path.
func (h *PathHandler) Guide(w http.ResponseWriter, r *http.Request) {
	var req dto.GuidanceRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	req.NextWaypointID = strings.TrimSpace(req.NextWaypointID)
	if err := h.Validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, r, http.StatusBadRequest, "invalid field: "+verrs[0].Namespace())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	current := domain.Coordinates{X: *req.Current.X, Y: *req.Current.Y}
	result, err := h.Service.Guide(r.Context(), chi.URLParam(r, "pathID"), current, domain.WaypointID(req.NextWaypointID))
	if err != nil {
		writeDomainError(w, r, "guide", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GuidanceResponse{
		Distance:  result.Distance,
		Event:     result.Event,
		Direction: result.Direction,
	})
}
