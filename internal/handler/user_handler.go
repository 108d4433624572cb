package handler

import (
	"net/http"
	"strings"
	"time"

	"taskboard/internal/apierr"
	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo repository.UserRepositoryInterface
	// jwtSecret is the same secret the auth guard verifies with.
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserHandler(repo repository.UserRepositoryInterface, jwtSecret []byte, tokenValidity time.Duration) *UserHandler {
	return &UserHandler{repo: repo, jwtSecret: jwtSecret, tokenValidity: tokenValidity}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Register creates a user and returns a fresh token.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid user data"))
		return
	}

	req.Email = strings.ToLower(req.Email)

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, apierr.Internal("Failed to check existing user"))
		return
	}
	if existing != nil {
		fail(c, apierr.BadRequest("User already exists"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, apierr.Internal("Failed to hash password"))
		return
	}

	user := &model.User{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hash),
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		fail(c, apierr.Internal("Failed to create user"))
		return
	}

	token, err := auth.GenerateToken(user.ID.String(), h.jwtSecret, h.tokenValidity)
	if err != nil {
		fail(c, apierr.Internal("Failed to generate token"))
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password are indistinguishable on the wire.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid user data"))
		return
	}

	req.Email = strings.ToLower(req.Email)

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, apierr.Internal("Failed to look up user"))
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		fail(c, apierr.Unauthorized("Invalid email or password"))
		return
	}

	token, err := auth.GenerateToken(user.ID.String(), h.jwtSecret, h.tokenValidity)
	if err != nil {
		fail(c, apierr.Internal("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// Search returns users whose name contains the query substring.
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		fail(c, apierr.BadRequest("Please provide a query."))
		return
	}

	users, err := h.repo.SearchByName(c.Request.Context(), query)
	if err != nil {
		fail(c, apierr.Internal("Failed to search users"))
		return
	}

	// model.User never serializes the password hash.
	c.JSON(http.StatusOK, gin.H{"data": users})
}
