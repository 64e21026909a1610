package handler

import (
	"bytes"
	"encoding/json"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

// --- Auth ---

// Auth payloads are checked by the auth service so that its messages and
// check order apply uniformly.
type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AccessKey string `json:"accessKey"`
}

// loginRequest.Username accepts either a username or an email address.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

type verifyResponse struct {
	User *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Content ---

// profileRequest is a partial update; absent fields are left unchanged.
type profileRequest struct {
	Name     *string        `json:"name"`
	About    *string        `json:"about"`
	Bio      *string        `json:"bio"`
	Status   *string        `json:"status"`
	Image    nullableString `json:"image"`
	GitHub   *string        `json:"github"`
	LinkedIn *string        `json:"linkedin"`
	Twitter  *string        `json:"twitter"`
	Email    *string        `json:"email" validate:"omitempty,email"`
}

// nullableString tells an absent field apart from an explicit null.
type nullableString struct {
	Present bool
	Value   *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type postRequest struct {
	Type             string `json:"type"  validate:"required,oneof=image document"`
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	File             string `json:"file"  validate:"required"`
	OriginalFilename string `json:"originalFilename"`
}

type skillRequest struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"omitempty,oneof=frontend backend tools other"`
	Level    string `json:"level"    validate:"omitempty,oneof=beginner intermediate advanced"`
}

type projectRequest struct {
	Name         string   `json:"name"        validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	LiveLink     string   `json:"liveLink"   validate:"omitempty,url"`
	GitHubLink   string   `json:"githubLink" validate:"omitempty,url"`
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
}
