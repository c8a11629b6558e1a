package client

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

// envelope is the {success, message, data} wrapper some endpoints use.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var errMissingPagination = errors.New("missing pagination")

// unwrap returns the payload of an enveloped body, or body itself when the
// response is bare.
func unwrap(body []byte) []byte {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	if env.Success == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return body
	}
	return env.Data
}

func decode[T any](body []byte, failMsg string) (*T, error) {
	var out T
	if err := json.Unmarshal(unwrap(body), &out); err != nil {
		return nil, &RequestError{Message: failMsg, Err: err}
	}
	return &out, nil
}

type listPayload[T any] struct {
	Data       []T                `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
}

// decodePage accepts {data, pagination} and the flat paginator shape where
// the pagination fields sit beside data.
func decodePage[T any](body []byte, failMsg string) (*models.Page[T], error) {
	payload := unwrap(body)

	var lp listPayload[T]
	if err := json.Unmarshal(payload, &lp); err != nil {
		return nil, &RequestError{Message: failMsg, Err: err}
	}

	meta := lp.Pagination
	if meta == nil {
		var flat models.Pagination
		if err := json.Unmarshal(payload, &flat); err != nil || flat.CurrentPage == 0 {
			return nil, &RequestError{Message: failMsg, Err: errMissingPagination}
		}
		meta = &flat
	}

	page := models.NewPage(lp.Data, *meta)
	return &page, nil
}
