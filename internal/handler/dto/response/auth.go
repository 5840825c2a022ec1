package response

import "waitline/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
