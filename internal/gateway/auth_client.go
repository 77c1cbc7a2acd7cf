package gateway

import (
	"context"
	"fmt"
	"net/http"

	"vet-appointments-service/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

type authClient struct {
	client *resty.Client
	log    *logrus.Logger
}

// NewAuthClient builds the HTTP client for the Auth service. The caller's
// bearer token is forwarded on every request.
func NewAuthClient(cfg config.ServicesConfig, log *logrus.Logger) AuthService {
	client := resty.New().
		SetBaseURL(cfg.AuthURL).
		SetTimeout(cfg.Timeout)
	return &authClient{client: client, log: log}
}

type userEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ID       int    `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     struct {
			Name string `json:"name"`
		} `json:"role"`
	} `json:"data"`
}

func (c *authClient) GetUserByID(ctx context.Context, userID int, bearer string) (*User, error) {
	var envelope userEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+bearer).
		SetResult(&envelope).
		Get(fmt.Sprintf("/api/users/%d", userID))
	if err != nil {
		c.log.Warnf("Auth service request for user %d failed: %+v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &User{
			ID:       envelope.Data.ID,
			Email:    envelope.Data.Email,
			FullName: envelope.Data.FullName,
			Role:     envelope.Data.Role.Name,
		}, nil
	case http.StatusNotFound:
		return nil, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		c.log.Warnf("Auth service returned %d for user %d", resp.StatusCode(), userID)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
}

func (c *authClient) VerifyVeterinarianRole(ctx context.Context, userID int, bearer string) (bool, error) {
	user, err := c.GetUserByID(ctx, userID, bearer)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role == RoleVeterinarian, nil
}
