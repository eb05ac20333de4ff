package util

import (
	"movie_catalog/configs"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims *MyJwtClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}

func testClaims() *MyJwtClaims {
	return &MyJwtClaims{
		UserId:      12,
		Username:    "neo",
		RoleIds:     []int64{1, 2},
		GeneratedAt: time.Now().UnixMilli(),
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerifyToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	tokenString := signToken(t, "test-secret", testClaims())

	token, claims, err := VerifyToken(tokenString)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if !token.Valid {
		t.Error("expected a valid token")
	}
	if claims.UserId != 12 || claims.Username != "neo" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if len(claims.RoleIds) != 2 || claims.RoleIds[0] != 1 {
		t.Errorf("unexpected roleIds: %v", claims.RoleIds)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	tokenString := signToken(t, "other-secret", testClaims())

	_, _, err := VerifyToken(tokenString)
	if err == nil {
		t.Fatal("expected error for a foreign signature")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	claims := testClaims()
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	tokenString := signToken(t, "test-secret", claims)

	_, _, err := VerifyToken(tokenString)
	if err == nil {
		t.Fatal("expected error for an expired token")
	}
}

func TestVerifyTokenWrongMethod(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	// alg "none" must never pass the method check
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}

	_, _, err = VerifyToken(token)
	if err == nil {
		t.Fatal("expected error for a wrong signing method")
	}
}
