package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/goodwork-api/internal/application/auth"
	"github.com/jhoicas/goodwork-api/internal/application/job"
	"github.com/jhoicas/goodwork-api/internal/domain"
	"github.com/jhoicas/goodwork-api/internal/domain/entity"
	apphttp "github.com/jhoicas/goodwork-api/internal/interfaces/http"
)

// buildAPI arma la app completa (router real) sobre repositorios en memoria.
func buildAPI() *fiber.App {
	users := newMemUserRepo()
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	jobUC := job.NewJobUseCase(newMemJobRepo(users))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		JobUC:     jobUC,
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerAndLogin(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"fullname": "Cuenta " + email,
		"email":    email,
		"password": "supersegura",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "supersegura",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func jobPayload() map[string]any {
	return map[string]any{
		"title":                "Dev",
		"company":              "Acme",
		"description":          "Backend en Go",
		"location":             "Lagos",
		"registrationDeadline": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"verificationLink":     "https://acme.com/apply",
	}
}

// Escenario completo: registro de empleador → login → publicar → cerrar → 404 anónimo.
func TestAPI_FlujoEmpleador(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app, "a@x.com", "employer")

	resp := doJSON(t, app, http.MethodPost, "/api/jobs", token, jobPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	assert.Equal(t, "open", created["status"])
	jobID, _ := created["id"].(string)
	require.NotEmpty(t, jobID)

	// Cierre explícito: el status cambia, el vencimiento derivado no.
	resp = doJSON(t, app, http.MethodPut, "/api/jobs/"+jobID, token, map[string]any{"status": "closed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode(t, resp)
	assert.Equal(t, "closed", updated["status"])
	assert.Equal(t, false, updated["isExpired"])

	resp = doJSON(t, app, http.MethodGet, "/api/jobs/no-existe", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_RegistroDuplicado_400(t *testing.T) {
	app := buildAPI()
	payload := map[string]any{
		"fullname": "Acme Recruiting",
		"email":    "a@x.com",
		"password": "supersegura",
		"role":     "employer",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}

func TestAPI_LoginInvalido_401(t *testing.T) {
	app := buildAPI()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nadie@x.com",
		"password": "cualquiera",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CrearSinToken_401(t *testing.T) {
	app := buildAPI()

	resp := doJSON(t, app, http.MethodPost, "/api/jobs", "", jobPayload())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_JobseekerNoPublica_403(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app, "seek@x.com", "jobseeker")

	resp := doJSON(t, app, http.MethodPost, "/api/jobs", token, jobPayload())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_NoEsElDueno_403(t *testing.T) {
	app := buildAPI()
	tokenA := registerAndLogin(t, app, "a@x.com", "employer")
	tokenB := registerAndLogin(t, app, "b@x.com", "employer")

	resp := doJSON(t, app, http.MethodPost, "/api/jobs", tokenA, jobPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	jobID, _ := created["id"].(string)

	resp = doJSON(t, app, http.MethodPut, "/api/jobs/"+jobID, tokenB, map[string]any{"title": "Robado"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/jobs/"+jobID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_ListaPublicaConEmpleador(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app, "a@x.com", "employer")

	resp := doJSON(t, app, http.MethodPost, "/api/jobs", token, jobPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	emp, _ := list[0]["employer"].(map[string]any)
	require.NotNil(t, emp, "cada oferta lista su empleador")
	assert.Equal(t, "a@x.com", emp["email"])
}

func TestAPI_DeadlinePasada_400(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app, "a@x.com", "employer")

	payload := jobPayload()
	payload["registrationDeadline"] = time.Now().Add(-time.Hour).Format(time.RFC3339)
	resp := doJSON(t, app, http.MethodPost, "/api/jobs", token, payload)
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

// ── Repos en memoria para el stack HTTP completo ─────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error)       { return m.byID[id], nil }
func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) { return m.byEmail[email], nil }

type memJobRepo struct {
	jobs  map[string]*entity.Job
	users *memUserRepo
}

func newMemJobRepo(users *memUserRepo) *memJobRepo {
	return &memJobRepo{jobs: map[string]*entity.Job{}, users: users}
}

func (m *memJobRepo) Create(j *entity.Job) error {
	if dup, _ := m.FindDuplicate(j.Title, j.Company, j.EmployerID, ""); dup != nil {
		return domain.ErrDuplicate
	}
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *memJobRepo) GetByID(id string) (*entity.JobWithEmployer, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	return m.withEmployer(j), nil
}

func (m *memJobRepo) FindDuplicate(title, company, employerID, excludeID string) (*entity.Job, error) {
	for _, j := range m.jobs {
		if j.ID != excludeID && j.Title == title && j.Company == company && j.EmployerID == employerID {
			return j, nil
		}
	}
	return nil, nil
}

func (m *memJobRepo) List() ([]*entity.JobWithEmployer, error) {
	var list []*entity.JobWithEmployer
	for _, j := range m.jobs {
		list = append(list, m.withEmployer(j))
	}
	for i := 0; i < len(list); i++ {
		for k := i + 1; k < len(list); k++ {
			if list[k].CreatedAt.After(list[i].CreatedAt) {
				list[i], list[k] = list[k], list[i]
			}
		}
	}
	return list, nil
}

func (m *memJobRepo) Update(j *entity.Job) error {
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *memJobRepo) Delete(id string) error {
	delete(m.jobs, id)
	return nil
}

func (m *memJobRepo) withEmployer(j *entity.Job) *entity.JobWithEmployer {
	cp := *j
	ref := entity.EmployerRef{ID: j.EmployerID}
	if m.users != nil {
		if u, _ := m.users.GetByID(j.EmployerID); u != nil {
			ref.Fullname = u.Fullname
			ref.Email = u.Email
		}
	}
	return &entity.JobWithEmployer{Job: cp, Employer: ref}
}
