// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Envelope
//
// Every body the API writes has the same five keys:
//
//	{ "statusCode": 200, "data": {...}, "message": "...", "success": true, "errors": [] }
//
// Errors reuse the shape with success=false and data=null. [Error] is the
// single place where a Go error becomes a wire response.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/constants"
	"github.com/taibuivan/wastewise/internal/platform/ctxutil"
	"github.com/taibuivan/wastewise/pkg/pagination"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	StatusCode int                 `json:"statusCode"`
	Data       any                 `json:"data"`
	Message    string              `json:"message"`
	Success    bool                `json:"success"`
	Errors     []apperr.FieldError `json:"errors"`
}

// Page is the data block of paginated list responses.
type Page struct {
	Items any             `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// JSON writes payload as JSON with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSONUTF8)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Success writes a success envelope with an explicit status code.
func Success(writer http.ResponseWriter, statusCode int, data any, message string) {
	JSON(writer, statusCode, Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
		Errors:     []apperr.FieldError{},
	})
}

// OK writes a 200 success envelope.
func OK(writer http.ResponseWriter, data any, message string) {
	Success(writer, http.StatusOK, data, message)
}

// Created writes a 201 success envelope.
func Created(writer http.ResponseWriter, data any, message string) {
	Success(writer, http.StatusCreated, data, message)
}

// Paginated writes a 200 success envelope whose data holds items and metadata.
func Paginated(writer http.ResponseWriter, items any, metadata pagination.Meta, message string) {
	Success(writer, http.StatusOK, Page{Items: items, Meta: metadata}, message)
}

// Empty writes a 200 success envelope with an empty object as data.
func Empty(writer http.ResponseWriter, message string) {
	Success(writer, http.StatusOK, struct{}{}, message)
}

// Error converts any Go error into the error envelope.
//
// Non-[apperr.AppError] values are treated as internal failures: the client
// sees a generic message and the original error is logged.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	}

	details := appError.Details
	if details == nil {
		details = []apperr.FieldError{}
	}

	JSON(writer, appError.HTTPStatus, Envelope{
		StatusCode: appError.HTTPStatus,
		Data:       nil,
		Message:    appError.Message,
		Success:    false,
		Errors:     details,
	})
}
