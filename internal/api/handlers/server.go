// Package handlers implements the HTTP API under /api/v1.
//
// Routes are registered by internal/app/router.go; handlers only hold the
// request logic. Authorization uses the per-request permission set loaded by
// the middleware, never a cached one.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/internal/api/middleware"
	"crewcycle.io/crewcycle/internal/cycle"
	"crewcycle.io/crewcycle/internal/governance/audit"
	"crewcycle.io/crewcycle/internal/notification"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/pkg/worker"
	"crewcycle.io/crewcycle/internal/rbac"
	"crewcycle.io/crewcycle/internal/scheduling"
	"crewcycle.io/crewcycle/internal/usecase"
)

// Server holds all API handlers.
type Server struct {
	client      *ent.Client
	jwtCfg      middleware.JWTConfig
	audit       *audit.Logger
	evaluator   *rbac.Evaluator
	slotService *scheduling.SlotService
	bookUC      *usecase.BookInterviewUseCase
	sweeper     *cycle.Sweeper
	notifier    *notification.Triggers
	riverClient *river.Client[pgx.Tx]
	pools       *worker.Pools
	readyCheck  func() error
}

// ServerDeps holds all dependencies for creating a Server. Manual DI.
type ServerDeps struct {
	EntClient   *ent.Client
	JWTCfg      middleware.JWTConfig
	Audit       *audit.Logger
	Evaluator   *rbac.Evaluator
	SlotService *scheduling.SlotService
	BookUC      *usecase.BookInterviewUseCase
	Sweeper     *cycle.Sweeper
	Notifier    *notification.Triggers
	RiverClient *river.Client[pgx.Tx]
	Pools       *worker.Pools
	ReadyCheck  func() error
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		jwtCfg:      deps.JWTCfg,
		audit:       deps.Audit,
		evaluator:   deps.Evaluator,
		slotService: deps.SlotService,
		bookUC:      deps.BookUC,
		sweeper:     deps.Sweeper,
		notifier:    deps.Notifier,
		riverClient: deps.RiverClient,
		pools:       deps.Pools,
		readyCheck:  deps.ReadyCheck,
	}
}

// APIError is the uniform error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps an error to its HTTP representation. AppErrors carry
// their own status and code; anything else is an opaque 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, APIError{Code: appErr.Code, Message: appErr.Message})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, APIError{
		Code:    apperrors.CodeInternal,
		Message: "An internal error occurred",
	})
}

// mustActor returns the actor and permission set, or writes a 401/403 and
// reports false.
func (s *Server) mustActor(c *gin.Context) (rbac.Actor, rbac.PermissionSet, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIError{
			Code:    apperrors.CodeNotAuthenticated,
			Message: "authentication required",
		})
		return rbac.Actor{}, nil, false
	}
	perms, ok := middleware.GetPermissions(c)
	if !ok {
		c.JSON(http.StatusForbidden, APIError{
			Code:    apperrors.CodeForbidden,
			Message: "no permissions in context",
		})
		return rbac.Actor{}, nil, false
	}
	return actor, perms, true
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, APIError{
		Code:    apperrors.CodeForbidden,
		Message: "insufficient permissions",
	})
}

func invalidRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIError{
		Code:    apperrors.CodeInvalidRequest,
		Message: message,
	})
}
