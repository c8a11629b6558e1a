package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

const unitsPath = "/stock-units"

func (c *HTTPClient) ListUnits(ctx context.Context, entryID int64, q models.ListQuery) (*models.Page[models.StockUnit], error) {
	const failMsg = "Failed to fetch stock units"
	v := listValues(q)
	v.Set("product_type_id", strconv.FormatInt(entryID, 10))

	body, err := c.do(ctx, request{
		op:      "units.list",
		method:  http.MethodGet,
		path:    unitsPath,
		query:   v,
		failMsg: failMsg,
	})
	if err != nil {
		return nil, err
	}
	return decodePage[models.StockUnit](body, failMsg)
}

func (c *HTTPClient) CreateUnit(ctx context.Context, draft models.UnitDraft) (*models.StockUnit, error) {
	return c.sendUnit(ctx, "units.create", http.MethodPost, unitsPath, draft, "Failed to create stock unit")
}

func (c *HTTPClient) UpdateUnit(ctx context.Context, id int64, patch models.UnitPatch) (*models.StockUnit, error) {
	return c.sendUnit(ctx, "units.update", http.MethodPut, fmt.Sprintf("%s/%d", unitsPath, id), patch, "Failed to update stock unit")
}

func (c *HTTPClient) ToggleSold(ctx context.Context, id int64) (*models.StockUnit, error) {
	return c.sendUnit(ctx, "units.toggle_sold", http.MethodPatch, fmt.Sprintf("%s/%d/toggle-sold", unitsPath, id), nil, "Failed to toggle stock unit sold status")
}

func (c *HTTPClient) DeleteUnit(ctx context.Context, id int64) error {
	_, err := c.do(ctx, request{
		op:      "units.delete",
		method:  http.MethodDelete,
		path:    fmt.Sprintf("%s/%d", unitsPath, id),
		failMsg: "Failed to delete stock unit",
	})
	return err
}

func (c *HTTPClient) BatchCreateUnits(ctx context.Context, req models.BatchRequest) (*models.BatchResult, error) {
	const failMsg = "Failed to batch create stock units"
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, request{
		op:          "units.batch_create",
		method:      http.MethodPost,
		path:        unitsPath + "/batch",
		body:        body,
		contentType: "application/json",
		failMsg:     failMsg,
	})
	if err != nil {
		return nil, err
	}
	return decode[models.BatchResult](resp, failMsg)
}

// sendUnit issues a unit mutation with an optional JSON payload and decodes
// the echoed unit.
func (c *HTTPClient) sendUnit(ctx context.Context, op, method, path string, payload any, failMsg string) (*models.StockUnit, error) {
	r := request{op: op, method: method, path: path, failMsg: failMsg}
	if payload != nil {
		body, err := jsonBody(payload)
		if err != nil {
			return nil, err
		}
		r.body = body
		r.contentType = "application/json"
	}

	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	return decode[models.StockUnit](resp, failMsg)
}
