package http

import (
	"bytes"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/advisor/api/http/handlers"
	"github.com/artem13815/advisor/pkg/account"
	"github.com/artem13815/advisor/pkg/advisor"
	"github.com/artem13815/advisor/pkg/category"
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/faq"
	"github.com/artem13815/advisor/pkg/health"
	"github.com/artem13815/advisor/pkg/health/checkers"
	"github.com/artem13815/advisor/pkg/logging"
	"github.com/artem13815/advisor/pkg/profile"
	"github.com/artem13815/advisor/pkg/program"
	"github.com/artem13815/advisor/pkg/repository/memory"
	"github.com/artem13815/advisor/pkg/security/jwt"
)

const plan = `ОП Искусственный интеллект Семестры
1 семестр
Пул выборных дисциплин
1Машинное обучение 6216
1Глубокое обучение 4144
`

const adminEmail = "admin@itmo.ru"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := logging.Discard()

	cur := curriculum.Extract(plan)
	catalog, err := program.NewCatalog([]program.Program{{
		Name:       "Искусственный интеллект",
		Title:      "Искусственный интеллект",
		FAQ:        []program.QA{{Question: "Какая стоимость обучения?", Answer: "599 000 рублей в год."}},
		Curriculum: &cur,
	}})
	require.NoError(t, err)

	svc := advisor.NewService(advisor.Deps{
		Catalog:    catalog,
		Profiles:   memory.NewProfileRepository(),
		Categories: category.DefaultRegistry(),
		Archetypes: profile.DefaultRegistry(),
		Gate:       faq.DefaultGate(),
		Logger:     logger,
	})
	tokens := jwt.NewGenerator("secret", "advisor", time.Hour)
	accounts := account.NewService(memory.NewUserRepository(), tokens, []string{adminEmail}, logger)

	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Use(RequestLogger(logger))
	Register(app, Handlers{
		Auth:            handlers.NewAuthHandler(accounts),
		Health:          handlers.NewHealthHandler(health.NewService(checkers.NewProgramsChecker(catalog))),
		Programs:        handlers.NewProgramsHandler(svc),
		FAQ:             handlers.NewFAQHandler(svc),
		Profile:         handlers.NewProfileHandler(svc),
		Recommendations: handlers.NewRecommendationsHandler(svc),
		Curriculum:      handlers.NewCurriculumHandler(svc, 1<<20),
	}, jwt.NewAuthMiddleware("secret", "advisor"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, body := do(t, app, nethttp.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": email, "password": "password1"})
	require.Equal(t, nethttp.StatusCreated, status)
	return body["token"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, nethttp.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = do(t, app, nethttp.MethodGet, "/api/v1/ready", "", nil)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
	assert.Len(t, body["checks"], 1)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "student@example.com")

	status, _ := do(t, app, nethttp.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": "student@example.com", "password": "password1"})
	assert.Equal(t, nethttp.StatusConflict, status)

	status, _ = do(t, app, nethttp.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": "x@example.com", "password": "short"})
	assert.Equal(t, nethttp.StatusBadRequest, status)

	status, body := do(t, app, nethttp.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": "student@example.com", "password": "password1"})
	assert.Equal(t, nethttp.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, _ = do(t, app, nethttp.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": "student@example.com", "password": "wrong-one"})
	assert.Equal(t, nethttp.StatusUnauthorized, status)
}

func TestFAQAsk(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		question string
		status   int
		outcome  string
	}{
		{"Какая стоимость обучения на программе?", nethttp.StatusOK, "matched"},
		{"Привет как дела?", nethttp.StatusOK, "out_of_domain"},
		{"Расскажи про ИИ", nethttp.StatusOK, "no_match"},
		{"", nethttp.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		status, body := do(t, app, nethttp.MethodPost, "/api/v1/faq/ask", "", map[string]string{"question": tt.question})
		assert.Equal(t, tt.status, status, tt.question)
		if tt.outcome != "" {
			assert.Equal(t, tt.outcome, body["outcome"], tt.question)
		}
	}
}

func TestProfileAndRecommendations(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "student@example.com")

	status, _ := do(t, app, nethttp.MethodGet, "/api/v1/recommendations", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, status)

	status, _ = do(t, app, nethttp.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, nethttp.StatusNotFound, status)

	status, _ = do(t, app, nethttp.MethodGet, "/api/v1/recommendations", token, nil)
	assert.Equal(t, nethttp.StatusConflict, status)

	status, body := do(t, app, nethttp.MethodPut, "/api/v1/profile", token, map[string]any{"experienceLevel": "guru"})
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, []any{"ProfileInput.ExperienceLevel: oneof"}, body["fields"])

	status, body = do(t, app, nethttp.MethodPut, "/api/v1/profile", token, map[string]any{
		"background": "Я работаю ML engineer, занимаюсь машинное обучение и нейронные сети",
	})
	require.Equal(t, nethttp.StatusOK, status)
	assert.NotEmpty(t, body["updatedAt"])

	status, body = do(t, app, nethttp.MethodGet, "/api/v1/recommendations", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "Искусственный интеллект", body["program"])
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 2)
	assert.Equal(t, "Машинное обучение", recs[0].(map[string]any)["name"])
	assert.Equal(t, "determined", body["profile"].(map[string]any)["kind"])

	status, body = do(t, app, nethttp.MethodGet, "/api/v1/programs/compare", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, true, body["personalized"])
}

func TestPublicProfileEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, nethttp.MethodGet, "/api/v1/profile/examples", "", nil)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.NotEmpty(t, body["groups"])

	status, body = do(t, app, nethttp.MethodPost, "/api/v1/profile/classify", "", map[string]string{"text": "люблю гулять в парке"})
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "undetermined", body["kind"])

	status, _ = do(t, app, nethttp.MethodPost, "/api/v1/profile/classify", "", map[string]string{"text": " "})
	assert.Equal(t, nethttp.StatusBadRequest, status)

	status, body = do(t, app, nethttp.MethodGet, "/api/v1/programs", "", nil)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Len(t, body["programs"], 1)
}

func TestCurriculumParse(t *testing.T) {
	app := newTestApp(t)
	student := register(t, app, "student@example.com")
	admin := register(t, app, adminEmail)

	status, _ := do(t, app, nethttp.MethodPost, "/api/v1/curriculum/parse", student, map[string]string{"text": plan})
	assert.Equal(t, nethttp.StatusForbidden, status)

	status, body := do(t, app, nethttp.MethodPost, "/api/v1/curriculum/parse", admin, map[string]string{"text": plan})
	require.Equal(t, nethttp.StatusOK, status)
	cur := body["curriculum"].(map[string]any)
	assert.Equal(t, "Искусственный интеллект", cur["program_name"])
	assert.Len(t, cur["elective_courses"], 2)

	status, _ = do(t, app, nethttp.MethodPost, "/api/v1/curriculum/parse", admin, map[string]string{})
	assert.Equal(t, nethttp.StatusBadRequest, status)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "plan.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(plan))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/curriculum/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"machine_learning"`))
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	do(t, app, nethttp.MethodPost, "/api/v1/faq/ask", "", map[string]string{"question": "Привет"})

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "advisor_faq_answers_total")
}
