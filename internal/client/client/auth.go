package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	return c.authenticate(ctx, "auth.login", "/auth/login", creds, "Login failed")
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	return c.authenticate(ctx, "auth.register", "/auth/register", reg, "Registration failed")
}

func (c *HTTPClient) authenticate(ctx context.Context, op, path string, payload any, failMsg string) (*models.AuthResult, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        body,
		contentType: "application/json",
		public:      true,
		failMsg:     failMsg,
	})
	if err != nil {
		return nil, err
	}

	res, err := decode[models.AuthResult](resp, failMsg)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, &RequestError{Message: failMsg}
	}
	return res, nil
}
