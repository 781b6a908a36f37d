package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSignUpEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	recorder := doRequest(t, r, http.MethodPost, "/sign-up", "", gin.H{
		"email":    "ash@example.com",
		"username": "ash",
		"password": "pikachu123",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Inscription réussie", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ash", user["username"])
	assert.Equal(t, "ash@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
}

func TestSignUpEndpoint_Validation(t *testing.T) {
	r, _ := newTestServer(t)

	recorder := doRequest(t, r, http.MethodPost, "/sign-up", "", gin.H{
		"email":    "ash@example.com",
		"username": "ash",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email, username et password sont requis", decodeBody(t, recorder)["error"])
}

func TestSignUpEndpoint_EmailTaken(t *testing.T) {
	r, _ := newTestServer(t)

	signUp(t, r, "ash@example.com", "ash")

	recorder := doRequest(t, r, http.MethodPost, "/sign-up", "", gin.H{
		"email":    "ash@example.com",
		"username": "imposter",
		"password": "autremdp",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "Email déjà utilisé", decodeBody(t, recorder)["error"])
}

func TestSignInEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	signUp(t, r, "ash@example.com", "ash")

	recorder := doRequest(t, r, http.MethodPost, "/sign-in", "", gin.H{
		"email":    "ash@example.com",
		"password": "motdepasse",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Connexion réussie", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestSignInEndpoint_InvalidCredentials(t *testing.T) {
	r, _ := newTestServer(t)

	signUp(t, r, "ash@example.com", "ash")

	wrongPassword := doRequest(t, r, http.MethodPost, "/sign-in", "", gin.H{
		"email":    "ash@example.com",
		"password": "mauvais",
	})
	unknownEmail := doRequest(t, r, http.MethodPost, "/sign-in", "", gin.H{
		"email":    "nobody@example.com",
		"password": "motdepasse",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Same body either way, no account probing.
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestCreateUserEndpoint_RequiresToken(t *testing.T) {
	r, _ := newTestServer(t)

	recorder := doRequest(t, r, http.MethodPost, "/users", "", gin.H{
		"email":    "misty@example.com",
		"username": "misty",
		"password": "starmie456",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Token manquant", decodeBody(t, recorder)["error"])
}

func TestCreateUserEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	token := signUp(t, r, "ash@example.com", "ash")

	recorder := doRequest(t, r, http.MethodPost, "/users", token, gin.H{
		"email":    "misty@example.com",
		"username": "misty",
		"password": "starmie456",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Utilisateur créé", body["message"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "misty", user["username"])
}

func TestListUsersEndpoint_NoHashLeak(t *testing.T) {
	r, _ := newTestServer(t)

	signUp(t, r, "ash@example.com", "ash")

	recorder := doRequest(t, r, http.MethodGet, "/users", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestGetUserEndpoint_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	recorder := doRequest(t, r, http.MethodGet, "/users/9999", "", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Utilisateur non trouvé", decodeBody(t, recorder)["error"])
}
