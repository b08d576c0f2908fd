// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"sitecms/internal/respond"
	"sitecms/internal/store"
)

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status     string           `json:"status"` // healthy | disabled | degraded | error
	Timestamp  time.Time        `json:"timestamp"`
	CMS        HealthCMS        `json:"cms"`
	Validation HealthValidation `json:"validation"`
	Stats      *HealthStats     `json:"stats,omitempty"`
	Features   HealthFeatures   `json:"features"`
	Error      string           `json:"error,omitempty"`
}

type HealthCMS struct {
	Enabled     bool   `json:"enabled"`
	DebugMode   bool   `json:"debugMode"`
	MockData    bool   `json:"mockData"`
	Environment string `json:"environment"`
}

type HealthValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type HealthStats struct {
	Pages          int   `json:"pages"`
	PublishedPages int   `json:"publishedPages"`
	DraftPages     int   `json:"draftPages"`
	MediaFiles     int   `json:"mediaFiles"`
	TotalSections  int   `json:"totalSections"`
	TotalMediaSize int64 `json:"totalMediaSize"`
}

type HealthFeatures struct {
	PagesAPI    bool   `json:"pagesAPI"`
	MediaAPI    bool   `json:"mediaAPI"`
	SettingsAPI bool   `json:"settingsAPI"`
	FileUpload  string `json:"fileUpload"` // mock | s3
}

// Health reports configuration validity and content stats. It is never
// behind the enabled gate: 503 when disabled, 500 when the configuration
// has errors or the store cannot be read, 200 otherwise.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	errs := a.cfg.ValidateCMS()
	if errs == nil {
		errs = []string{}
	}
	report := HealthReport{
		Status:    "healthy",
		Timestamp: a.now().UTC(),
		CMS: HealthCMS{
			Enabled:     a.cfg.Enabled,
			DebugMode:   a.cfg.Debug,
			MockData:    a.cfg.MockData,
			Environment: a.cfg.Env,
		},
		Validation: HealthValidation{IsValid: len(errs) == 0, Errors: errs},
		Features: HealthFeatures{
			PagesAPI:    true,
			MediaAPI:    true,
			SettingsAPI: true,
			FileUpload:  a.uploads.Kind(),
		},
	}

	st, err := a.store.Stats(r.Context())
	if err != nil {
		a.log.Error("health stats failed", zap.Error(err))
		report.Status = "error"
		report.Error = "Health check failed"
		respond.Raw(w, http.StatusInternalServerError, report)
		return
	}
	report.Stats = &HealthStats{
		Pages:          st.TotalPages,
		PublishedPages: st.PublishedPages,
		DraftPages:     st.DraftPages,
		MediaFiles:     st.MediaFiles,
		TotalSections:  st.TotalSections,
		TotalMediaSize: st.TotalMediaSize,
	}

	status := http.StatusOK
	switch {
	case !a.cfg.Enabled:
		report.Status = "disabled"
		status = http.StatusServiceUnavailable
	case len(errs) > 0:
		report.Status = "degraded"
		status = http.StatusInternalServerError
	}
	respond.Raw(w, status, report)
}

// Stats returns the content summary.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := a.store.Stats(r.Context())
	if err != nil {
		a.fail(w, r, err, "fetch stats")
		return
	}
	respond.OK(w, http.StatusOK, st, "")
}

// SectionTemplates lists the predefined reusable sections.
func (a *API) SectionTemplates(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, http.StatusOK, store.SectionTemplates(), "")
}
