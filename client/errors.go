// SPDX-License-Identifier: EPL-2.0

package client

import "errors"

var (
	ErrEmptyText        = errors.New("text to synthesise is empty")
	ErrInvalidEndpoint  = errors.New("invalid endpoint")
	ErrNotReady         = errors.New("server is not ready")
	ErrRequest          = errors.New("request failed")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrUnsupportedMedia = errors.New("no decoder for response content type")
	ErrDecode           = errors.New("decoding response failed")
)
