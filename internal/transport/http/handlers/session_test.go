package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/usecase"
)

func sessionRouter(h *SessionHandler) *gin.Engine {
	router := gin.New()
	router.POST("/session", h.Create)
	return router
}

func TestSessionCreateSuccess(t *testing.T) {
	create := &executorStub[usecase.CreateSessionParams, domain.Session]{
		result: domain.Session{
			AccessToken:           "access",
			AccessTokenExpiresIn:  "2h0m0s",
			RefreshToken:          "refresh",
			RefreshTokenExpiresIn: "48h0m0s",
			TokenType:             domain.SessionTokenType,
		},
	}
	handler := NewSessionHandler(create)

	recorder := perform(sessionRouter(handler), http.MethodPost, "/session", `{"username":"micahgtan","password":"s3cret"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if create.params.Username != "micahgtan" || create.params.Password != "s3cret" {
		t.Fatalf("params = %+v", create.params)
	}

	response := decodeResponse(t, recorder)
	if response.Status != statusSuccess {
		t.Fatalf("status = %q", response.Status)
	}
	data, ok := response.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %+v", response.Data)
	}
	if data["token_type"] != domain.SessionTokenType {
		t.Fatalf("token type = %v", data["token_type"])
	}
	if data["access_token"] != "access" || data["refresh_token"] != "refresh" {
		t.Fatalf("tokens = %v / %v", data["access_token"], data["refresh_token"])
	}
}

func TestSessionCreateInvalidCredentials(t *testing.T) {
	create := &executorStub[usecase.CreateSessionParams, domain.Session]{
		err: domain.NewAuthenticationError("Invalid username or password"),
	}
	handler := NewSessionHandler(create)

	recorder := perform(sessionRouter(handler), http.MethodPost, "/session", `{"username":"micahgtan","password":"wrong"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	structured := decodeErrorData(t, decodeResponse(t, recorder))
	if structured.Code != domain.CodeAuthentication {
		t.Fatalf("code = %s", structured.Code)
	}
	if structured.Message != "Invalid username or password" {
		t.Fatalf("message = %q", structured.Message)
	}
}
