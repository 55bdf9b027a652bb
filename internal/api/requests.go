// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/validation"
)

// HybridParams are the parameters of the hybrid recommendation endpoint.
type HybridParams struct {
	UserID        int     `path:"userID" validate:"gte=0"`
	UserWeight    float64 `query:"user_weight" validate:"finite,gte=0"`
	ContentWeight float64 `query:"content_weight" validate:"finite,gte=0"`
	TopN          int     `query:"top_n" validate:"min=1,max=1000"`
}

// CollaborativeParams are the parameters of the collaborative endpoint.
type CollaborativeParams struct {
	UserID int `path:"userID" validate:"gte=0"`
	N      int `query:"n" validate:"min=1,max=1000"`
}

// SimilarUsersParams are the parameters of the user neighbour endpoint.
type SimilarUsersParams struct {
	UserID int    `path:"userID" validate:"gte=0"`
	K      int    `query:"k" validate:"min=1,max=1000"`
	Mode   string `query:"mode" validate:"oneof=nearest furthest"`
}

// UserParams identify a user by path.
type UserParams struct {
	UserID int `path:"userID" validate:"gte=0"`
}

// SimilarItemsParams are the parameters of the item neighbour endpoint.
// Exactly one of ID and Name must be set.
type SimilarItemsParams struct {
	ID   *int   `query:"id" validate:"required_without=Name,excluded_with=Name"`
	Name string `query:"name" validate:"omitempty,max=256"`
	K    int    `query:"k" validate:"min=1,max=1000"`
	Mode string `query:"mode" validate:"oneof=nearest furthest"`
}

// Ref returns the item reference the parameters name.
func (p *SimilarItemsParams) Ref() recommend.ItemRef {
	if p.ID != nil {
		return recommend.ByID(*p.ID)
	}
	return recommend.ByName(p.Name)
}

// paramParser reads typed parameters and keeps the first parse failure.
type paramParser struct {
	r     *http.Request
	query url.Values
	err   *validation.RequestValidationError
}

func newParamParser(r *http.Request) *paramParser {
	return &paramParser{r: r, query: r.URL.Query()}
}

func (p *paramParser) fail(name, value, message string) {
	if p.err == nil {
		p.err = validation.NewFieldError(name, "integer", value, message)
	}
}

func (p *paramParser) pathInt(name string) int {
	raw := chi.URLParam(p.r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw, name+" must be an integer")
		return 0
	}
	return v
}

func (p *paramParser) queryInt(name string, def int) int {
	raw := p.query.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw, name+" must be an integer")
		return def
	}
	return v
}

func (p *paramParser) queryIntPtr(name string) *int {
	raw := p.query.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw, name+" must be an integer")
		return nil
	}
	return &v
}

func (p *paramParser) queryFloat(name string, def float64) float64 {
	raw := p.query.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if p.err == nil {
			p.err = validation.NewFieldError(name, "number", raw, name+" must be a number")
		}
		return def
	}
	return v
}

func (p *paramParser) queryString(name, def string) string {
	if v := p.query.Get(name); v != "" {
		return v
	}
	return def
}

// finish validates s unless a parse failure already happened.
func (p *paramParser) finish(s interface{}) *validation.RequestValidationError {
	if p.err != nil {
		return p.err
	}
	return validation.ValidateStruct(s)
}

func parseHybridParams(r *http.Request, defaults recommend.HybridRequest) (HybridParams, *validation.RequestValidationError) {
	p := newParamParser(r)
	params := HybridParams{
		UserID:        p.pathInt("userID"),
		UserWeight:    p.queryFloat("user_weight", defaults.UserWeight),
		ContentWeight: p.queryFloat("content_weight", defaults.ContentWeight),
		TopN:          p.queryInt("top_n", defaults.TopN),
	}
	return params, p.finish(&params)
}

func parseCollaborativeParams(r *http.Request, defaultN int) (CollaborativeParams, *validation.RequestValidationError) {
	p := newParamParser(r)
	params := CollaborativeParams{
		UserID: p.pathInt("userID"),
		N:      p.queryInt("n", defaultN),
	}
	return params, p.finish(&params)
}

func parseSimilarUsersParams(r *http.Request, defaultK int) (SimilarUsersParams, *validation.RequestValidationError) {
	p := newParamParser(r)
	params := SimilarUsersParams{
		UserID: p.pathInt("userID"),
		K:      p.queryInt("k", defaultK),
		Mode:   p.queryString("mode", recommend.ModeNearest.String()),
	}
	return params, p.finish(&params)
}

func parseUserParams(r *http.Request) (UserParams, *validation.RequestValidationError) {
	p := newParamParser(r)
	params := UserParams{UserID: p.pathInt("userID")}
	return params, p.finish(&params)
}

func parseSimilarItemsParams(r *http.Request, defaultK int) (SimilarItemsParams, *validation.RequestValidationError) {
	p := newParamParser(r)
	params := SimilarItemsParams{
		ID:   p.queryIntPtr("id"),
		Name: p.queryString("name", ""),
		K:    p.queryInt("k", defaultK),
		Mode: p.queryString("mode", recommend.ModeNearest.String()),
	}
	return params, p.finish(&params)
}

// parseItemRef reads /items/{ref}. A numeric ref is an id unless by=name is given,
// which lets titles such as "86" be looked up by name.
func parseItemRef(r *http.Request) (recommend.ItemRef, *validation.RequestValidationError) {
	raw, err := url.PathUnescape(chi.URLParam(r, "ref"))
	if err != nil || raw == "" {
		return recommend.ItemRef{}, validation.NewFieldError("ref", "required", raw, "ref must be an item id or name")
	}
	if len(raw) > 256 {
		return recommend.ItemRef{}, validation.NewFieldError("ref", "max", raw, "ref must be at most 256 characters")
	}

	switch r.URL.Query().Get("by") {
	case "name":
		return recommend.ByName(raw), nil
	case "id":
		id, err := strconv.Atoi(raw)
		if err != nil {
			return recommend.ItemRef{}, validation.NewFieldError("ref", "integer", raw, "ref must be an integer when by=id")
		}
		return recommend.ByID(id), nil
	case "":
		if id, err := strconv.Atoi(raw); err == nil {
			return recommend.ByID(id), nil
		}
		return recommend.ByName(raw), nil
	default:
		return recommend.ItemRef{}, validation.NewFieldError("by", "oneof", r.URL.Query().Get("by"), "by must be one of: id name")
	}
}
