package middleware

import (
	"movie_catalog/internal/service"
	"movie_catalog/pkg/response"
	"movie_catalog/util"
	"regexp"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Auth is the access gate. It verifies the bearer token, checks the session
// blacklist, resolves the subject's role names and matches them against the
// operation's required set. Any failure on the verification path itself is a
// 401, only a verified subject missing the role gets a 403. It runs before
// any store access and has no other side effects.
func Auth(requiredRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Get("Authorization", "")
		strArr := strings.Split(accessToken, " ")
		if len(strArr) == 2 {
			accessToken = strArr[1]
		}
		if len(accessToken) < 30 {
			return response.ResponseError(c, "Unauthorized, accessToken not provided", fiber.StatusUnauthorized)
		}

		token, claims, err := util.VerifyToken(accessToken)
		if err != nil {
			return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
		}
		if token == nil || claims == nil {
			return response.ResponseError(c, "Unauthorized, Invalid accessToken metaData", fiber.StatusUnauthorized)
		}

		result, err := service.GetJwtDataCache(c.UserContext(), accessToken)
		if result != "" {
			return response.ResponseError(c, "Unauthorized, accessToken is in blacklist", fiber.StatusUnauthorized)
		}
		if err != nil && err.Error() != "redis: nil" {
			return response.ResponseError(c, "Unauthorized, session check failed", fiber.StatusUnauthorized)
		}

		if service.UserSvc == nil {
			return response.ResponseError(c, "Unauthorized, role check failed", fiber.StatusUnauthorized)
		}
		roleNames, err := service.UserSvc.GetRoleNames(c.UserContext(), claims.RoleIds)
		if err != nil {
			return response.ResponseError(c, "Unauthorized, role check failed", fiber.StatusUnauthorized)
		}

		allowed := false
		for _, role := range roleNames {
			if slices.Contains(requiredRoles, strings.ToLower(role)) {
				allowed = true
				break
			}
		}
		if !allowed {
			return response.ResponseError(c, "Forbidden, insufficient role", fiber.StatusForbidden)
		}

		c.Locals("accessToken", accessToken)
		c.Locals("jwtUserData", claims)
		return c.Next()
	}
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
