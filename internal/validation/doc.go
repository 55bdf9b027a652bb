// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package validation validates API request parameters with go-playground/validator/v10.

Handlers parse query and path parameters into a request struct, then call
ValidateStruct. Failures become a 400 response with code VALIDATION_ERROR:

	type similarUsersRequest struct {
	    UserID int    `path:"userID" validate:"gte=0"`
	    K      int    `query:"k" validate:"min=1,max=100"`
	    Mode   string `query:"mode" validate:"oneof=nearest furthest"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    respondError(w, r, http.StatusBadRequest, verr.ToAPIError())
	    return
	}

Messages use the query or path parameter name. Parameters that fail to
parse at all are reported with NewFieldError in the same shape.

Custom tags:

  - finite: rejects NaN and infinities on float fields
*/
package validation
