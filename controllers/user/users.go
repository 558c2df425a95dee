package userControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/junaidrashid-git/shopping-api/auth"
	"github.com/junaidrashid-git/shopping-api/middleware"
	"github.com/junaidrashid-git/shopping-api/models"
	"github.com/junaidrashid-git/shopping-api/store"
)

type RegisterInput struct {
	Nickname        string `json:"nickname" binding:"required,alphanum,min=3,max=30"`
	Password        string `json:"password" binding:"required,alphanum,min=4,max=30"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,alphanum,min=4,max=30"`
}

// POST /api/users
func Register(s store.Store, verifier auth.CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Request body has an invalid format"})
			return
		}

		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Password does not match the confirmation"})
			return
		}

		exists, err := s.ExistsUserByEmailOrNickname(c.Request.Context(), input.Email, input.Nickname)
		if err != nil {
			log.Printf("❌ Failed to check existing users: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to register"})
			return
		}
		if exists {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Email or nickname is already registered"})
			return
		}

		hash, err := verifier.Hash(input.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to register"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Nickname:     input.Nickname,
			Email:        input.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}

		// The unique indexes on email and nickname catch the race where two
		// registrations pass the existence check at the same time; the loser
		// lands here.
		if err := s.CreateUser(c.Request.Context(), &user); err != nil {
			log.Printf("❌ Failed to create user: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to register"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{})
	}
}

// POST /api/auth
func Login(s store.Store, verifier auth.CredentialVerifier, issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Request body has an invalid format"})
			return
		}

		user, err := s.FindUserByEmail(c.Request.Context(), input.Email)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Printf("❌ Failed to look up user: %v", err)
			}
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Incorrect email or password"})
			return
		}

		if err := verifier.Verify(user.PasswordHash, input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Incorrect email or password"})
			return
		}

		token, err := issuer.Issue(user.ID)
		if err != nil {
			log.Printf("❌ Failed to issue token: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to log in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GET /api/users/me
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
