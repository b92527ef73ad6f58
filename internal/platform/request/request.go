// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/ctxutil"
	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/internal/platform/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FormBinder is implemented by input schemas that can be filled from
// url-encoded form values.
type FormBinder interface {
	BindForm(values url.Values) error
}

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Decode fills target from the request body.

Form-encoded bodies (application/x-www-form-urlencoded or multipart) are
bound through [FormBinder]; everything else is decoded as JSON.

Returns:
  - error: validate.ErrInvalidJSON / validate.ErrInvalidForm on malformed input
*/
func Decode(request *http.Request, target any) error {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		binder, ok := target.(FormBinder)
		if !ok {
			return validate.ErrInvalidForm
		}
		if err := parseForm(request, mediaType); err != nil {
			return validate.ErrInvalidForm
		}
		return binder.BindForm(request.PostForm)
	default:
		return DecodeJSON(request, target)
	}
}

// maxFormMemory caps the in-memory part of a multipart body.
const maxFormMemory = 1 << 20

func parseForm(request *http.Request, mediaType string) error {
	if mediaType == "multipart/form-data" {
		return request.ParseMultipartForm(maxFormMemory)
	}
	return request.ParseForm()
}

/*
ID retrieves a named URL parameter from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named integer URL parameter.

A non-numeric value cannot name any record, so it is reported as not found.

Returns:
  - int: Parsed identifier
  - error: apperr.NotFound(resource) if the parameter is not a positive integer
*/
func IntID(request *http.Request, name, resource string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || id < 1 {
		return 0, apperr.NotFound(resource)
	}
	return id, nil
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get user claims
	claims := ctxutil.GetAuthUser(request.Context())

	// If the user is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}

	return claims.UserID, nil
}
