package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"crewcycle.io/crewcycle/ent"
	entcycle "crewcycle.io/crewcycle/ent/applicationcycle"
	entiv "crewcycle.io/crewcycle/ent/interview"
	entuser "crewcycle.io/crewcycle/ent/user"
	"crewcycle.io/crewcycle/internal/api/middleware"
	"crewcycle.io/crewcycle/internal/cycle"
	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/rbac"
	"crewcycle.io/crewcycle/internal/scheduling"
	"crewcycle.io/crewcycle/internal/testutil"
	"crewcycle.io/crewcycle/internal/usecase"
)

func newTestServer(t *testing.T) (*Server, *ent.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "console")
	client := testutil.OpenEntPostgres(t, "handlers")

	slotSvc := scheduling.NewSlotService(client)
	notifier := notification.NewTriggers(notification.NewInboxSender(client))
	srv := NewServer(ServerDeps{
		EntClient:   client,
		Evaluator:   rbac.NewEvaluator(client),
		SlotService: slotSvc,
		BookUC:      usecase.NewBookInterviewUseCase(client, slotSvc, notifier),
		Sweeper:     cycle.NewSweeper(client, nil),
		Notifier:    notifier,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte("0123456789abcdef0123456789abcdef"),
			Issuer:     "crewcycle",
			ExpiresIn:  time.Hour,
		},
	})
	return srv, client
}

// newGinContext builds an unauthenticated request context.
func newGinContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if strings.TrimSpace(body) == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c, w
}

// newAuthedGinContext builds a request context as LoadActor would have left
// it: actor and a freshly derived permission set for the given user row.
func newAuthedGinContext(
	t *testing.T,
	client *ent.Client,
	method string,
	target string,
	body string,
	userID string,
) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, w := newGinContext(t, method, target, body)
	u := client.User.GetX(c.Request.Context(), userID)
	actor := rbac.ActorFromUser(u)
	c.Request = c.Request.WithContext(
		middleware.SetUserContext(c.Request.Context(), u.ID, u.Username),
	)
	c.Set("actor", actor)
	c.Set("permissions", rbac.BuildPermissions(actor))
	return c, w
}

func mustDecodeJSON(t *testing.T, payload []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(payload, out); err != nil {
		t.Fatalf("decode json: %v; payload=%s", err, string(payload))
	}
}

func requireErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code, "body=%s", w.Body.String())
	var apiErr APIError
	mustDecodeJSON(t, w.Body.Bytes(), &apiErr)
	require.Equal(t, code, apiErr.Code)
}

func seedUser(t *testing.T, client *ent.Client, id string, role entuser.Role, teamID, systemID string) {
	t.Helper()
	create := client.User.Create().
		SetID(id).SetUsername(id).SetEmail(id + "@example.com").
		SetRole(role)
	if teamID != "" {
		create.SetTeamID(teamID)
	}
	if systemID != "" {
		create.SetSystemID(systemID)
	}
	create.SaveX(t.Context())
}

func TestRegisterAndLoginFlow(t *testing.T) {
	srv, client := newTestServer(t)

	c, w := newGinContext(t, http.MethodPost, "/auth/register",
		`{"username":"carol","email":"carol@example.com","password":"hunter2hunter2","role":"ADMIN"}`)
	srv.Register(c)
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	var created UserInfo
	mustDecodeJSON(t, w.Body.Bytes(), &created)
	require.Equal(t, "APPLICANT", created.Role)

	// Registration never grants a privileged role, whatever the payload says.
	got := client.User.GetX(t.Context(), created.ID)
	require.Equal(t, entuser.RoleAPPLICANT, got.Role)

	c, w = newGinContext(t, http.MethodPost, "/auth/login",
		`{"username":"carol","password":"hunter2hunter2"}`)
	srv.Login(c)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())
	var login LoginResponse
	mustDecodeJSON(t, w.Body.Bytes(), &login)
	require.NotEmpty(t, login.Token)
	require.Equal(t, created.ID, login.User.ID)

	c, w = newGinContext(t, http.MethodPost, "/auth/login",
		`{"username":"carol","password":"wrong-password"}`)
	srv.Login(c)
	requireErrorCode(t, w, http.StatusUnauthorized, "INVALID_CREDENTIALS")

	// Duplicate username.
	c, w = newGinContext(t, http.MethodPost, "/auth/register",
		`{"username":"carol","email":"other@example.com","password":"hunter2hunter2"}`)
	srv.Register(c)
	requireErrorCode(t, w, http.StatusConflict, "NAME_ALREADY_EXISTS")
}

func TestCreateTeamRequiresAdmin(t *testing.T) {
	srv, client := newTestServer(t)
	seedUser(t, client, "applicant", entuser.RoleAPPLICANT, "", "")
	seedUser(t, client, "admin", entuser.RoleADMIN, "", "")

	body := `{"name":"Propulsion"}`
	c, w := newAuthedGinContext(t, client, http.MethodPost, "/teams", body, "applicant")
	srv.CreateTeam(c)
	requireErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")

	c, w = newAuthedGinContext(t, client, http.MethodPost, "/teams", body, "admin")
	srv.CreateTeam(c)
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())
}

func seedCycleAtStage(t *testing.T, client *ent.Client, stage entcycle.Stage) {
	t.Helper()
	now := time.Now().UTC()
	client.ApplicationCycle.Create().
		SetID("cycle-1").SetName("Season One").
		SetStage(stage).
		SetStartDate(now.AddDate(0, -1, 0)).
		SetEndDate(now.AddDate(0, 1, 0)).
		SaveX(t.Context())
}

func TestCreateApplicationStageGate(t *testing.T) {
	srv, client := newTestServer(t)
	client.Team.Create().SetID("team-1").SetName("Platform").SaveX(t.Context())
	seedUser(t, client, "applicant", entuser.RoleAPPLICANT, "", "")
	seedCycleAtStage(t, client, entcycle.StagePREPARATION)

	body := `{"cycle_id":"cycle-1","team_id":"team-1"}`
	c, w := newAuthedGinContext(t, client, http.MethodPost, "/applications", body, "applicant")
	srv.CreateApplication(c)
	requireErrorCode(t, w, http.StatusConflict, "STAGE_CLOSED")

	client.ApplicationCycle.UpdateOneID("cycle-1").
		SetStage(entcycle.StageAPPLICATION).
		ExecX(t.Context())

	// Four ranked preferences is one too many.
	c, w = newAuthedGinContext(t, client, http.MethodPost, "/applications",
		`{"cycle_id":"cycle-1","team_id":"team-1","system_preferences":["a","b","c","d"]}`,
		"applicant")
	srv.CreateApplication(c)
	requireErrorCode(t, w, http.StatusUnprocessableEntity, "TOO_MANY_SYSTEM_CHOICES")

	c, w = newAuthedGinContext(t, client, http.MethodPost, "/applications", body, "applicant")
	srv.CreateApplication(c)
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	// One application per user per cycle.
	c, w = newAuthedGinContext(t, client, http.MethodPost, "/applications", body, "applicant")
	srv.CreateApplication(c)
	require.Equal(t, http.StatusConflict, w.Code, "body=%s", w.Body.String())
}

func TestApplicationVisibility(t *testing.T) {
	srv, client := newTestServer(t)
	client.Team.Create().SetID("team-1").SetName("Platform").SaveX(t.Context())
	client.Team.Create().SetID("team-2").SetName("Avionics").SaveX(t.Context())
	seedUser(t, client, "owner", entuser.RoleAPPLICANT, "", "")
	seedUser(t, client, "stranger", entuser.RoleAPPLICANT, "", "")
	seedUser(t, client, "manager", entuser.RoleTEAM_MANAGEMENT, "team-1", "")
	seedUser(t, client, "other-manager", entuser.RoleTEAM_MANAGEMENT, "team-2", "")
	seedCycleAtStage(t, client, entcycle.StageAPPLICATION)

	client.Application.Create().
		SetID("app-1").SetUserID("owner").SetTeamID("team-1").SetCycleID("cycle-1").
		SaveX(t.Context())

	get := func(userID string) (*httptest.ResponseRecorder, ApplicationInfo) {
		c, w := newAuthedGinContext(t, client, http.MethodGet, "/applications/app-1", "", userID)
		c.Params = gin.Params{{Key: "id", Value: "app-1"}}
		srv.GetApplication(c)
		var info ApplicationInfo
		if w.Code == http.StatusOK {
			mustDecodeJSON(t, w.Body.Bytes(), &info)
		}
		return w, info
	}

	w, info := get("owner")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, info.InternalStatus, "owners must not see internal fields")

	w, info = get("manager")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, info.InternalStatus, "team staff see internal fields")

	w, _ = get("stranger")
	require.Equal(t, http.StatusForbidden, w.Code)

	w, _ = get("other-manager")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateCycleStageOverride(t *testing.T) {
	srv, client := newTestServer(t)
	seedUser(t, client, "admin", entuser.RoleADMIN, "", "")
	seedCycleAtStage(t, client, entcycle.StageINTERVIEW)

	patch := func(body string) *httptest.ResponseRecorder {
		c, w := newAuthedGinContext(t, client, http.MethodPatch, "/cycles/cycle-1", body, "admin")
		c.Params = gin.Params{{Key: "id", Value: "cycle-1"}}
		srv.UpdateCycle(c)
		return w
	}

	// Backwards without the override flag is refused.
	w := patch(`{"stage":"APPLICATION"}`)
	requireErrorCode(t, w, http.StatusConflict, "STAGE_REGRESSION")

	// Skipping ahead without the override flag is refused too.
	w = patch(`{"stage":"FINAL"}`)
	requireErrorCode(t, w, http.StatusConflict, "STAGE_REGRESSION")

	w = patch(`{"stage":"TRAIL"}`)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())

	w = patch(`{"stage":"APPLICATION","override":true}`)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())
	got := client.ApplicationCycle.GetX(t.Context(), "cycle-1")
	require.Equal(t, entcycle.StageAPPLICATION, got.Stage)
}

func TestUpdateInterviewOwnerOnlyCancels(t *testing.T) {
	srv, client := newTestServer(t)
	client.Team.Create().SetID("team-1").SetName("Platform").SaveX(t.Context())
	client.System.Create().SetID("sys-1").SetName("Telemetry").SetTeamID("team-1").SaveX(t.Context())
	seedUser(t, client, "owner", entuser.RoleAPPLICANT, "", "")
	seedUser(t, client, "manager", entuser.RoleTEAM_MANAGEMENT, "team-1", "")
	seedCycleAtStage(t, client, entcycle.StageINTERVIEW)

	client.Application.Create().
		SetID("app-1").SetUserID("owner").SetTeamID("team-1").SetCycleID("cycle-1").
		SaveX(t.Context())
	client.Interview.Create().
		SetID("iv-1").SetApplicationID("app-1").SetSystemID("sys-1").
		SetScheduledAt(time.Now().Add(24 * time.Hour).Truncate(time.Minute)).
		SetCreatedByID("owner").
		SaveX(t.Context())

	patch := func(userID, body string) *httptest.ResponseRecorder {
		c, w := newAuthedGinContext(t, client, http.MethodPatch, "/interviews/iv-1", body, userID)
		c.Params = gin.Params{{Key: "id", Value: "iv-1"}}
		srv.UpdateInterview(c)
		return w
	}

	// Owners never record outcomes or annotations.
	w := patch("owner", `{"status":"COMPLETED"}`)
	requireErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")
	w = patch("owner", `{"notes":"went well"}`)
	requireErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")

	w = patch("owner", `{"status":"CANCELLED"}`)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())

	w = patch("manager", `{"status":"COMPLETED","notes":"strong candidate"}`)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())
	got := client.Interview.GetX(t.Context(), "iv-1")
	require.Equal(t, entiv.StatusCOMPLETED, got.Status)
	require.Equal(t, "strong candidate", got.Notes)
}

func TestTriggerSweepRequiresAdmin(t *testing.T) {
	srv, client := newTestServer(t)
	seedUser(t, client, "member", entuser.RoleMEMBER, "", "")
	seedUser(t, client, "admin", entuser.RoleADMIN, "", "")

	c, w := newAuthedGinContext(t, client, http.MethodPost, "/admin/sweep", "", "member")
	srv.TriggerSweep(c)
	requireErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")

	c, w = newAuthedGinContext(t, client, http.MethodPost, "/admin/sweep", "", "admin")
	srv.TriggerSweep(c)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())
}
