package handlers

import (
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/auth"
	"fieldservice/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=session_handler.go -destination=mocks/session_handler_mock.go -package=mocks
// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Generate(u entities.User) (auth.Token, error)
}

type SessionHandler struct {
	usecase usecase.IAuthUseCase
	tokens  TokenIssuer
}

func NewSessionHandler(uc usecase.IAuthUseCase, tokens TokenIssuer) *SessionHandler {
	return &SessionHandler{usecase: uc, tokens: tokens}
}

// Login godoc
// @Summary      Open a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	payload = payload.Normalized()

	user, err := h.usecase.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	tok, err := h.tokens.Generate(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SessionResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresAt:   tok.ExpiresAt,
		User:        response.FromUser(user),
	})
}

type UserHandler struct {
	usecase usecase.IAuthUseCase
}

func NewUserHandler(uc usecase.IAuthUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// RegisterUser godoc
// @Summary      Register an operator
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.RegisterUserRequest  true  "User"
// @Success      201   {object}  response.UserResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /users [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var payload request.RegisterUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	user, err := h.usecase.RegisterUser(c.Request.Context(), usecase.RegisterUserInput{
		Name:     payload.NomeCompleto,
		Username: payload.Username,
		Email:    payload.Email,
		Role:     payload.Role,
		Password: payload.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// ListUsers godoc
// @Summary      List operators
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ListResponse[response.UserResponse]
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(response.FromUsers(users)))
}
