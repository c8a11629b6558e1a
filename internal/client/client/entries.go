package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

const entriesPath = "/catalog-entries"

func listValues(q models.ListQuery) url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if q.SearchTerm != "" {
		v.Set("search", q.SearchTerm)
	}
	return v
}

func (c *HTTPClient) ListEntries(ctx context.Context, q models.ListQuery) (*models.Page[models.CatalogEntry], error) {
	const failMsg = "Failed to fetch catalog entries"
	body, err := c.do(ctx, request{
		op:      "entries.list",
		method:  http.MethodGet,
		path:    entriesPath,
		query:   listValues(q),
		failMsg: failMsg,
	})
	if err != nil {
		return nil, err
	}
	return decodePage[models.CatalogEntry](body, failMsg)
}

func (c *HTTPClient) GetEntry(ctx context.Context, id int64) (*models.CatalogEntry, error) {
	const failMsg = "Failed to fetch catalog entry"
	body, err := c.do(ctx, request{
		op:      "entries.get",
		method:  http.MethodGet,
		path:    fmt.Sprintf("%s/%d", entriesPath, id),
		failMsg: failMsg,
	})
	if err != nil {
		return nil, err
	}
	return decode[models.CatalogEntry](body, failMsg)
}

func (c *HTTPClient) CreateEntry(ctx context.Context, draft models.EntryDraft) (*models.CatalogEntry, error) {
	const failMsg = "Failed to create catalog entry"
	body, contentType, err := multipartBody([]formField{
		{name: "name", value: draft.Name},
		{name: "description", value: draft.Description},
	}, draft.Image)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, request{
		op:          "entries.create",
		method:      http.MethodPost,
		path:        entriesPath,
		body:        body,
		contentType: contentType,
		failMsg:     failMsg,
	})
	if err != nil {
		return nil, err
	}
	return decode[models.CatalogEntry](resp, failMsg)
}

// UpdateEntry sends a POST carrying _method=PUT so the image can travel in
// the same multipart body. Only non-nil patch fields are sent.
func (c *HTTPClient) UpdateEntry(ctx context.Context, id int64, patch models.EntryPatch) (*models.CatalogEntry, error) {
	const failMsg = "Failed to update catalog entry"
	fields := []formField{{name: common.MethodOverrideField, value: http.MethodPut}}
	if patch.Name != nil {
		fields = append(fields, formField{name: "name", value: *patch.Name})
	}
	if patch.Description != nil {
		fields = append(fields, formField{name: "description", value: *patch.Description})
	}

	body, contentType, err := multipartBody(fields, patch.Image)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, request{
		op:          "entries.update",
		method:      http.MethodPost,
		path:        fmt.Sprintf("%s/%d", entriesPath, id),
		body:        body,
		contentType: contentType,
		failMsg:     failMsg,
	})
	if err != nil {
		return nil, err
	}
	return decode[models.CatalogEntry](resp, failMsg)
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id int64) error {
	_, err := c.do(ctx, request{
		op:      "entries.delete",
		method:  http.MethodDelete,
		path:    fmt.Sprintf("%s/%d", entriesPath, id),
		failMsg: "Failed to delete catalog entry",
	})
	return err
}
