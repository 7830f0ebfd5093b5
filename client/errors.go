package client

import apierrors "github.com/cheikh-mbacke/emailight-mobile/client/internal/errors"

// Envelope error strings re-exported so callers compare against a single symbol.
const (
	ErrConnectionFailed = apierrors.ConnectionFailed
	ErrUnknown          = apierrors.UnknownError
)
