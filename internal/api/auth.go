package api

import (
	"errors"                        // Error matching
	"net/http"                      // HTTP status codes
	"planetary_api/internal/mail"   // Notification gateway
	"planetary_api/internal/schema" // Wire shapes
	"planetary_api/internal/store"  // Data access layer
	"planetary_api/internal/utils"  // Utility functions
	"time"                          // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password length limit
)

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message string `json:"message"` // Outcome message
	Token   string `json:"token"`   // JWT token
}

// RegisterHandler creates a user account. A taken email is reported with
// 200, the status existing clients expect.
func RegisterHandler(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schema.RegisterInput // Bind JSON or form body
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			// max counts runes, multibyte passwords can still exceed 72 bytes
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at most 72 bytes"})
			return
		}
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := req.Record(hash)
		err = users.CreateUser(c.Request.Context(), &user)
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusOK, gin.H{"message": "That email is already in use."})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Failed to register user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		logrus.WithField("user_id", user.ID).Info("User registered")
		c.JSON(http.StatusOK, gin.H{"message": "User created successfully."})
	}
}

// LoginHandler checks credentials and issues a JWT whose subject is the email
func LoginHandler(users store.UserStore, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schema.LoginInput // JSON or form body
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
			return
		}
		user, err := users.FindUserByEmail(c.Request.Context(), req.Email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			logrus.WithError(err).Error("Failed to look up user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Unknown email and wrong password are indistinguishable to the caller
		if user == nil || !utils.CheckPassword(user.Password, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Login failed."})
			return
		}
		token, err := utils.GenerateJWT(user.Email, jwtSecret, ttl)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, LoginResponse{Message: "Login succeeded!", Token: token})
	}
}

// ResetPasswordHandler replaces the password of a registered email with a
// generated one and mails it to the owner. The new password is only kept
// when the mail is sent; mail failures surface as 500.
func ResetPasswordHandler(users store.UserStore, sender mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		email := c.Param("email")
		user, err := users.FindUserByEmail(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "That email is not registered."})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Failed to look up user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}
		password, err := utils.NewPassword()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		var sendErr error
		err = users.ResetPassword(ctx, user.ID, hash, func() error {
			sendErr = sender.SendPasswordReset(ctx, user.Email, password)
			return sendErr
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to reset password")
			if sendErr != nil {
				// The new hash was rolled back and the old password still works
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send password reset email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}
		logrus.WithField("user_id", user.ID).Info("Password reset sent")
		c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent to " + user.Email + "."})
	}
}
