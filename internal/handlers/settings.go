// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"sitecms/internal/models"
	"sitecms/internal/respond"
)

// GetSettings returns the website settings.
func (a *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.store.GetSettings(r.Context())
	if err != nil {
		a.fail(w, r, err, "fetch website settings")
		return
	}
	respond.OK(w, http.StatusOK, s, "")
}

// UpdateSettings validates and merges a partial settings object. Settings
// show on every page, so the whole page cache is dropped.
func (a *API) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	s, err := a.store.UpdateSettings(r.Context(), patch)
	if err != nil {
		a.fail(w, r, err, "update website settings")
		return
	}
	if a.pages != nil {
		a.pages.InvalidateAll(r.Context())
	}
	respond.OK(w, http.StatusOK, s, "Settings updated successfully")
}
