package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apierrors "github.com/cheikh-mbacke/emailight-mobile/client/internal/errors"
	"github.com/cheikh-mbacke/emailight-mobile/client/internal/types"
)

var errInvalidBody = errors.New("response body is not valid JSON")

// Send issues exactly one HTTP request against baseURL+endpoint and folds the
// outcome into an envelope. The envelope is never nil. The returned error is
// the classified cause for a non-2xx status or a transport failure and is
// meant for logging only; callers branch on the envelope.
func Send[T any](ctx context.Context, httpClient HTTPClient, baseURL, endpoint string, opts Options) (*types.Response[T], error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	operation := method + " " + endpoint

	var reqBody io.Reader
	if opts.Body != nil {
		body, err := json.Marshal(opts.Body)
		if err != nil {
			return transportFailure[T](operation, err)
		}
		reqBody = bytes.NewReader(body)
	}

	target := baseURL + endpoint
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return transportFailure[T](operation, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		httpReq.Header.Set(k, v)
	}
	// Note: Authorization header will be added by transport layer

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return transportFailure[T](operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure[T](operation, err)
	}
	if !json.Valid(raw) {
		return transportFailure[T](operation, errInvalidBody)
	}

	// Best effort: bodies that are not objects simply carry no message.
	var body types.ErrorBody
	_ = json.Unmarshal(raw, &body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			return transportFailure[T](operation, err)
		}
		return &types.Response[T]{
			Data:    &data,
			Status:  resp.StatusCode,
			Message: body.Message,
		}, nil
	}

	errText := body.Error
	if errText == "" {
		errText = apierrors.UnknownError
	}
	return &types.Response[T]{
		Status:  resp.StatusCode,
		Error:   errText,
		Details: body.Details,
		Message: body.Message,
	}, apierrors.NewHTTPError(resp.StatusCode, string(raw), operation)
}

// transportFailure builds the status-500 envelope used for every failure that
// happens before a usable response body is available.
func transportFailure[T any](operation string, err error) (*types.Response[T], error) {
	msg := err.Error()
	if msg == "" {
		msg = apierrors.NetworkError
	}
	return &types.Response[T]{
		Status:  http.StatusInternalServerError,
		Error:   apierrors.ConnectionFailed,
		Message: msg,
	}, apierrors.NewNetworkError(operation, err)
}
