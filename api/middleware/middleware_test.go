package middleware

import (
	"context"
	"errors"
	"movie_catalog/configs"
	"movie_catalog/db/redis"
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/util"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type fakeUserRepo struct {
	names      []string
	err        error
	gotRoleIds []int64
}

func (f *fakeUserRepo) GetRoleNames(roleIds []int64) ([]string, error) {
	f.gotRoleIds = roleIds
	return f.names, f.err
}

// setupAuthTest wires the gate's process-wide collaborators: the token
// secret, an embedded redis for the session blacklist and role cache, and
// the role store behind the user service.
func setupAuthTest(t *testing.T, repo *fakeUserRepo) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	mr := miniredis.RunT(t)
	redis.ConnectRedisTo(mr.Addr(), "")

	service.NewUserService(repo)
}

func newGuardedApp(requiredRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", Auth(requiredRoles...), func(c *fiber.Ctx) error {
		claims, ok := c.Locals("jwtUserData").(*util.MyJwtClaims)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"userId": claims.UserId})
	})
	return app
}

func signAuthToken(t *testing.T, secret string, roleIds []int64) string {
	t.Helper()
	claims := &util.MyJwtClaims{
		UserId:  12,
		RoleIds: roleIds,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}

func guardedRequest(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp.StatusCode
}

//------------------------------------------
//------------------------------------------

func TestAuthMissingToken(t *testing.T) {
	setupAuthTest(t, &fakeUserRepo{names: []string{model.RoleAdmin}})
	app := newGuardedApp(model.RoleAdmin)

	if code := guardedRequest(t, app, ""); code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %v", code)
	}
	if code := guardedRequest(t, app, "too-short"); code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a short token, got %v", code)
	}
}

func TestAuthInvalidSignature(t *testing.T) {
	repo := &fakeUserRepo{names: []string{model.RoleAdmin}}
	setupAuthTest(t, repo)
	app := newGuardedApp(model.RoleAdmin)

	token := signAuthToken(t, "other-secret", []int64{1})
	if code := guardedRequest(t, app, token); code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a foreign signature, got %v", code)
	}
	if repo.gotRoleIds != nil {
		t.Error("role store must not be consulted for an unverified token")
	}
}

func TestAuthBlacklistedToken(t *testing.T) {
	setupAuthTest(t, &fakeUserRepo{names: []string{model.RoleAdmin}})
	app := newGuardedApp(model.RoleAdmin)

	token := signAuthToken(t, "test-secret", []int64{1})
	if err := redis.SetRedis(context.Background(), "jwtKey:"+token, "logout", time.Minute); err != nil {
		t.Fatalf("could not seed blacklist: %v", err)
	}

	if code := guardedRequest(t, app, token); code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a blacklisted token, got %v", code)
	}
}

func TestAuthInsufficientRole(t *testing.T) {
	// verified subject, wrong role: the one case that is a 403, not a 401
	repo := &fakeUserRepo{names: []string{model.RoleUser}}
	setupAuthTest(t, repo)
	app := newGuardedApp(model.RoleAdmin)

	token := signAuthToken(t, "test-secret", []int64{2})
	if code := guardedRequest(t, app, token); code != fiber.StatusForbidden {
		t.Errorf("expected 403 for an insufficient role, got %v", code)
	}
	if len(repo.gotRoleIds) != 1 || repo.gotRoleIds[0] != 2 {
		t.Errorf("expected the token's role ids at the store, got %v", repo.gotRoleIds)
	}
}

func TestAuthAdminPasses(t *testing.T) {
	setupAuthTest(t, &fakeUserRepo{names: []string{model.RoleAdmin}})
	app := newGuardedApp(model.RoleAdmin)

	token := signAuthToken(t, "test-secret", []int64{1})
	if code := guardedRequest(t, app, token); code != fiber.StatusOK {
		t.Errorf("expected 200 for an admin, got %v", code)
	}
}

func TestAuthUserOnUserRoute(t *testing.T) {
	setupAuthTest(t, &fakeUserRepo{names: []string{model.RoleUser}})
	app := newGuardedApp(model.RoleUser, model.RoleAdmin)

	token := signAuthToken(t, "test-secret", []int64{2})
	if code := guardedRequest(t, app, token); code != fiber.StatusOK {
		t.Errorf("expected 200 for a user on a user route, got %v", code)
	}
}

func TestAuthRoleResolutionFailure(t *testing.T) {
	setupAuthTest(t, &fakeUserRepo{err: errors.New("role store down")})
	app := newGuardedApp(model.RoleAdmin)

	// a failure on the verification path is a 401, never a 403
	token := signAuthToken(t, "test-secret", []int64{1})
	if code := guardedRequest(t, app, token); code != fiber.StatusUnauthorized {
		t.Errorf("expected 401 when roles cannot be resolved, got %v", code)
	}
}
