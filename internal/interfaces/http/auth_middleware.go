package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/pkg/jwt"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// userResolver es el contrato mínimo que necesita la guardia para resolver el claim
// de email contra el almacén de usuarios. Lo implementa el UserRepository; la interfaz
// reducida evita acoplar el middleware al puerto completo.
type userResolver interface {
	GetByEmail(email string) (*entity.User, error)
}

// AccessGuard valida la credencial Bearer de cada petición y resuelve su identidad.
// No guarda estado por petición más allá de lo que deja en c.Locals.
type AccessGuard struct {
	secret string
	users  userResolver
}

// NewAccessGuard construye la guardia con el secreto de firma y el resolutor de usuarios.
func NewAccessGuard(secret string, users userResolver) *AccessGuard {
	return &AccessGuard{secret: secret, users: users}
}

// Require devuelve un middleware Fiber que exige una credencial válida y, si se indican
// roles, que el usuario resuelto tenga alguno de ellos. Sin roles, basta cualquier
// usuario autenticado.
//
// Toda falla responde 401 con el mismo cuerpo: credencial ausente, firma o expiración
// inválidas, email sin cuenta y rol equivocado son indistinguibles para el cliente.
// En éxito deja el ID y el rol del usuario en c.Locals y continúa.
func (g *AccessGuard) Require(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return unauthorized(c)
		}

		email, err := jwt.Parse(g.secret, token)
		if err != nil {
			return unauthorized(c)
		}

		user, err := g.users.GetByEmail(email)
		if err != nil || user == nil {
			return unauthorized(c)
		}

		if len(roles) > 0 && !hasRole(user.Role, roles) {
			return unauthorized(c)
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// bearerToken extrae el token del header "Authorization: Bearer <token>".
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: "Unauthorized.",
	})
}

// GetUserID devuelve el ID del usuario autenticado (después de AccessGuard.Require).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalUserRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
