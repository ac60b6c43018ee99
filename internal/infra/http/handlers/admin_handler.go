package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

type AdminHandler struct {
	UC   *usecase.AdminUseCase
	Auth *usecase.AuthUseCase
	Now  func() time.Time
}

func NewAdminHandler(uc *usecase.AdminUseCase, auth *usecase.AuthUseCase) *AdminHandler {
	return &AdminHandler{UC: uc, Auth: auth, Now: time.Now}
}

// List (GET /api/admin/{table}?q=&period=&sort=&order=)
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.listRequest(w, r)
	if !ok {
		return
	}

	res, err := h.UC.List(r.Context(), table, q)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Export (GET /api/admin/{table}/export.csv)
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.listRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.UC.Rows(r.Context(), table, q)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	if len(rows) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := usecase.WriteCSV(&buf, rows); err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+usecase.ExportFilename(table, h.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// UpdatePaidCustomer (PATCH /api/admin/paidcustomer/{id})
func (h *AdminHandler) UpdatePaidCustomer(w http.ResponseWriter, r *http.Request) {
	var u entity.PaidCustomerUpdate
	if !decodeJSON(w, r, &u) {
		return
	}
	c, err := h.UC.UpdatePaidCustomer(r.Context(), chi.URLParam(r, "id"), u)
	respondRow(w, r, c, err)
}

// UpdateCoupon (PATCH /api/admin/coupons/{id})
func (h *AdminHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var u entity.CouponUpdate
	if !decodeJSON(w, r, &u) {
		return
	}
	c, err := h.UC.UpdateCoupon(r.Context(), chi.URLParam(r, "id"), u)
	respondRow(w, r, c, err)
}

// UpdateUser (PATCH /api/admin/users/{id})
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u entity.UserUpdate
	if !decodeJSON(w, r, &u) {
		return
	}
	user, err := h.UC.UpdateUser(r.Context(), chi.URLParam(r, "id"), u)
	respondRow(w, r, user, err)
}

// Delete (DELETE /api/admin/{table}/{id})
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	table, ok := tableParam(w, r)
	if !ok {
		return
	}
	if err := h.UC.Delete(r.Context(), table, chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCoupon (POST /api/admin/coupons)
func (h *AdminHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCouponInput
	if !decodeJSON(w, r, &input) {
		return
	}
	c, err := h.UC.CreateCoupon(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// AddAdmin (POST /api/admin/admins)
func (h *AdminHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var input usecase.Credentials
	if !decodeJSON(w, r, &input) {
		return
	}
	user, err := h.Auth.AddAdmin(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AdminHandler) listRequest(w http.ResponseWriter, r *http.Request) (entity.Table, usecase.ListQuery, bool) {
	table, ok := tableParam(w, r)
	if !ok {
		return "", usecase.ListQuery{}, false
	}

	p := r.URL.Query()
	q, err := usecase.NewListQuery(p.Get("q"), p.Get("period"), p.Get("sort"), p.Get("order"))
	if err != nil {
		writeError(w, http.StatusBadRequest, usecase.CodeInvalidQuery, err.Error())
		return "", usecase.ListQuery{}, false
	}
	return table, q, true
}

func tableParam(w http.ResponseWriter, r *http.Request) (entity.Table, bool) {
	table, err := entity.ParseTable(chi.URLParam(r, "table"))
	if err != nil {
		writeError(w, http.StatusNotFound, usecase.CodeUnknownTable, "unknown table")
		return "", false
	}
	return table, true
}

func respondRow(w http.ResponseWriter, r *http.Request, row any, err error) {
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}
