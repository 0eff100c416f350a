package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/usecase"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/memory"
	apphttp "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/interfaces/http"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/hash"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testPassword = "segredo1"
	testTTL      = 24 * time.Hour
)

type stubReport struct{}

func (stubReport) GenerateInventoryReport(context.Context, appanalytics.InventoryReport) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type testServer struct {
	app      *fiber.App
	store    *memory.Store
	sessions *memory.SessionStore
	hasher   *hash.Bcrypt
	clock    *time.Time
}

// newTestServer arma la app completa sobre repositorios y sesiones en memoria.
func newTestServer(t *testing.T, health map[string]apphttp.Pinger) *testServer {
	t.Helper()
	return newTestServerWith(t, health, nil)
}

// newTestServerWith permite envolver el store de sesiones en memoria (fallos inyectados).
func newTestServerWith(t *testing.T, health map[string]apphttp.Pinger, wrap func(*memory.SessionStore) auth.SessionStore) *testServer {
	t.Helper()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ts := &testServer{store: memory.NewStore(), hasher: hash.New(bcrypt.MinCost), clock: &now}
	ts.sessions = memory.NewSessionStore(func() time.Time { return *ts.clock })

	var sessionStore auth.SessionStore = ts.sessions
	if wrap != nil {
		sessionStore = wrap(ts.sessions)
	}
	repos := ts.store.Repositories()
	sessions := auth.NewSessionManager(sessionStore, testTTL)
	if health == nil {
		health = map[string]apphttp.Pinger{"postgres": stubPinger{}, "redis": stubPinger{}}
	}

	ts.app = apphttp.NewApp(apphttp.AppConfig{Name: "test", Log: zerolog.Nop()})
	apphttp.Router(ts.app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(repos.Users, repos.Customers, ts.hasher, sessions),
		Sessions:    sessions,
		Cookie:      apphttp.CookieConfig{TTL: testTTL},
		CategoryUC:  usecase.NewCategoryUseCase(ts.store, repos),
		ProductUC:   usecase.NewProductUseCase(ts.store, repos, nil),
		CustomerUC:  usecase.NewCustomerUseCase(ts.store, repos, ts.hasher),
		VendorUC:    usecase.NewVendorUseCase(ts.store, repos),
		ManagerUC:   usecase.NewManagerUseCase(ts.store, repos),
		AdminUC:     usecase.NewAdminUseCase(ts.store, repos, ts.hasher),
		DashboardUC: appanalytics.NewDashboardUseCase(ts.store, 10),
		ReportUC:    appanalytics.NewReportUseCase(repos.Products, ts.store, stubReport{}, 10),
		Health:      health,
	})
	return ts
}

// seedUser crea un usuario con el rol dado directamente en el store.
func (ts *testServer) seedUser(t *testing.T, username, role string) int64 {
	t.Helper()
	h, err := ts.hasher.Hash(testPassword)
	require.NoError(t, err)
	id, err := ts.store.Repositories().Users.Create(context.Background(), &entity.User{
		Username: username, PasswordHash: h, Role: role,
	})
	require.NoError(t, err)
	return id
}

// loginAs crea el usuario, hace POST /login y devuelve el token de la cookie.
func (ts *testServer) loginAs(t *testing.T, username, role string) string {
	t.Helper()
	ts.seedUser(t, username, role)
	resp, _ := ts.do(t, http.MethodPost, "/login", map[string]string{"username": username, "password": testPassword}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	c := sessionCookie(resp)
	require.NotNil(t, c, "login debe devolver la cookie de sesión")
	return c.Value
}

// do lanza la petición (body JSON opcional, token opcional) y devuelve respuesta y cuerpo.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookieName, Value: token})
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookieName {
			return c
		}
	}
	return nil
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

var errDown = errors.New("connection refused")
