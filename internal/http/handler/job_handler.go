package handler

import (
	"net/http"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

type JobHandler struct {
	jobService *service.JobService
	logger     *zap.Logger
}

func NewJobHandler(jobService *service.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{jobService: jobService, logger: logger}
}

// @Summary List jobs of a service order
// @Tags Jobs
// @Produce json
// @Param id path string true "Service order ID"
// @Param status query string false "Filter by status" Enums(unscheduled, scheduled, in_progress, completed, cancelled)
// @Success 200 {array} domain.JobDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/jobs [get]
func (h *JobHandler) ListByServiceOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var status *domain.JobStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.JobStatus(s)
		status = &st
	}

	jobs, err := h.jobService.ListByServiceOrder(r.Context(), orderID, status)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list jobs")
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

// @Summary Create job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param request body domain.CreateJobRequest true "Job data"
// @Success 201 {object} domain.JobDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.CreateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := h.jobService.Create(r.Context(), orderID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to create job")
		return
	}
	w.Header().Set("Location", "/api/v1/jobs/"+job.ID.String())
	respondJSON(w, http.StatusCreated, job)
}

// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} domain.JobDTO
// @Failure 404 {object} domain.APIError
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// @Summary Update job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body domain.UpdateJobRequest true "Job data"
// @Success 200 {object} domain.JobDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := h.jobService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// @Summary Delete job
// @Tags Jobs
// @Param id path string true "Job ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Move job status
// @Description Jobs of an invoiced or closed service order are locked and answer changed=false.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param action path string true "Transition" Enums(advance, retreat, jump)
// @Param request body domain.JumpStatusRequest false "Target status, only read for jump"
// @Success 200 {object} domain.TransitionResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /jobs/{id}/status/{action} [post]
func (h *JobHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := transitionFromAction(w, r)
	if !ok {
		return
	}

	result, err := h.jobService.Transition(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to change job status")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Cancel job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body domain.CancelRequest false "Reason"
// @Success 200 {object} domain.TransitionResultDTO
// @Failure 404 {object} domain.APIError
// @Router /jobs/{id}/cancel [post]
func (h *JobHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.CancelRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	result, err := h.jobService.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to cancel job")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Job status history
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {array} domain.StatusHistoryDTO
// @Failure 404 {object} domain.APIError
// @Router /jobs/{id}/history [get]
func (h *JobHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	history, err := h.jobService.History(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get job history")
		return
	}
	respondJSON(w, http.StatusOK, history)
}
