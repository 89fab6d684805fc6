package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/nikhilpktcr/dietPlanner/models"
)

func TestGenerateJWTClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		Model: gorm.Model{ID: 42},
		Email: "jane@example.com",
		Role:  models.RoleUser,
	}

	tokenString, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: err=%v valid=%v", err, token != nil && token.Valid)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if id, _ := claims["userId"].(float64); uint(id) != 42 {
		t.Errorf("userId claim = %v, want 42", claims["userId"])
	}
	if claims["email"] != "jane@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["role"] != models.RoleUser {
		t.Errorf("role claim = %v", claims["role"])
	}

	exp, _ := claims["exp"].(float64)
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Error("token already expired")
	}
}

func TestGenerateJWTWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{Model: gorm.Model{ID: 7}, Email: "x@y.z", Role: models.RoleUser}
	tokenString, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil && token.Valid {
		t.Error("token verified with the wrong secret")
	}
}
