package bootstrap

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/pkg/testdb"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = "test"

	deps := BuildDependencies(testdb.New(t), zerolog.Nop())
	return &apiClient{t: t, router: SetupRouter(cfg, deps)}
}

func (a *apiClient) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *apiClient) json(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.do(method, path, "application/json", strings.NewReader(body))
}

func TestAPI_Scenario(t *testing.T) {
	api := newAPI(t)

	w := api.json(http.MethodPost, "/api/student", `{"first_name":"Ann","roll_number":"R1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"student_id":1,"first_name":"Ann","last_name":null,"roll_number":"R1"}`, w.Body.String())

	w = api.json(http.MethodPost, "/api/course", `{"course_name":"Algebra","course_code":"C1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"course_id":1,"course_name":"Algebra","course_code":"C1","course_description":null}`, w.Body.String())

	w = api.json(http.MethodPost, "/api/student/1/course", `{"course_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `[{"enrollment_id":1,"student_id":1,"course_id":1}]`, w.Body.String())

	w = api.do(http.MethodGet, "/api/student/1/course", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[{"enrollment_id":1,"student_id":1,"course_id":1}]`, w.Body.String())

	w = api.do(http.MethodDelete, "/api/student/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = api.do(http.MethodGet, "/api/student/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A missing student takes precedence over an empty list, so this is ENROLLMENT002 rather than 404
	w = api.do(http.MethodGet, "/api/student/1/course", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"ENROLLMENT002","error_message":"Student does not exist."}`, w.Body.String())

	w = api.do(http.MethodDelete, "/api/student/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_StudentErrors(t *testing.T) {
	api := newAPI(t)

	t.Run("missing roll number", func(t *testing.T) {
		w := api.json(http.MethodPost, "/api/student", `{"first_name":"Ann"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error_code":"STUDENT001","error_message":"Roll Number is required"}`, w.Body.String())
	})

	t.Run("null counts as absent", func(t *testing.T) {
		w := api.json(http.MethodPost, "/api/student", `{"roll_number":"R1","first_name":null}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error_code":"STUDENT002","error_message":"First Name is required"}`, w.Body.String())
	})

	t.Run("empty body", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/student", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "STUDENT001")

		w = api.do(http.MethodPost, "/api/student", "application/json", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "STUDENT001")
	})

	t.Run("malformed json", func(t *testing.T) {
		w := api.json(http.MethodPost, "/api/student", `{"roll_number":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VAL_001")
	})

	t.Run("form body and duplicate", func(t *testing.T) {
		form := url.Values{"roll_number": {"R7"}, "first_name": {"Bo"}, "last_name": {"Kim"}}
		w := api.do(http.MethodPost, "/api/student", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"last_name":"Kim"`)

		w = api.json(http.MethodPost, "/api/student", `{"roll_number":"R7","first_name":"Other"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("update", func(t *testing.T) {
		w := api.json(http.MethodPut, "/api/student/999", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = api.json(http.MethodPost, "/api/student", `{"roll_number":"R8","first_name":"Cy","last_name":"Lo"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = api.json(http.MethodPut, "/api/student/2", `{"roll_number":"R8","first_name":"Cyd"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"student_id":2,"first_name":"Cyd","last_name":null,"roll_number":"R8"}`, w.Body.String())
	})

	t.Run("scalar values are read as text", func(t *testing.T) {
		w := api.json(http.MethodPost, "/api/student", `{"first_name":"Ann","roll_number":123}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"roll_number":"123"`)

		w = api.json(http.MethodPost, "/api/student", `{"first_name":true,"roll_number":"R9","last_name":4.5}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"first_name":"true","last_name":"4.5"`)

		w = api.json(http.MethodPost, "/api/student", `{"first_name":"Ann","roll_number":{"n":1}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VAL_001")
	})

	t.Run("non-integer id", func(t *testing.T) {
		for _, path := range []string{"/api/student/abc", "/api/student/-1", "/api/student/1.5"} {
			w := api.do(http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.Empty(t, w.Body.String(), path)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := api.do(http.MethodPatch, "/api/student/1", "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestAPI_CourseLifecycle(t *testing.T) {
	api := newAPI(t)

	w := api.json(http.MethodPost, "/api/course", `{"course_code":"C1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"COURSE001","error_message":"Course Name is required"}`, w.Body.String())

	w = api.json(http.MethodPost, "/api/course", `{"course_name":"Algebra"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"COURSE002","error_message":"Course Code is required"}`, w.Body.String())

	w = api.json(http.MethodPost, "/api/course", `{"course_name":"Algebra","course_code":"C1","course_description":"Linear"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.json(http.MethodPost, "/api/course", `{"course_name":"Again","course_code":"C1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.json(http.MethodPost, "/api/course", `{"course_name":"Numbers","course_code":101}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"course_id":2,"course_name":"Numbers","course_code":"101","course_description":null}`, w.Body.String())

	w = api.json(http.MethodPut, "/api/course/1", `{"course_name":"Algebra II","course_code":"C1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"course_id":1,"course_name":"Algebra II","course_code":"C1","course_description":null}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/course/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodDelete, "/api/course/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/course/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_Enrollments(t *testing.T) {
	api := newAPI(t)

	require.Equal(t, http.StatusCreated, api.json(http.MethodPost, "/api/student", `{"first_name":"Ann","roll_number":"R1"}`).Code)
	require.Equal(t, http.StatusCreated, api.json(http.MethodPost, "/api/course", `{"course_name":"Algebra","course_code":"C1"}`).Code)

	w := api.do(http.MethodGet, "/api/student/1/course", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.json(http.MethodPost, "/api/student/9/course", `{"course_id":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	for _, body := range []string{`{}`, `{"course_id":"abc"}`, `{"course_id":42}`, `{"course_id":true}`} {
		w = api.json(http.MethodPost, "/api/student/1/course", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error_code":"ENROLLMENT001","error_message":"Course does not exist"}`, w.Body.String(), body)
	}

	w = api.json(http.MethodPost, "/api/student/1/course", `{"course_id":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(http.MethodPost, "/api/student/1/course", "application/x-www-form-urlencoded", strings.NewReader("course_id=1"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `[{"enrollment_id":2,"student_id":1,"course_id":1}]`, w.Body.String())

	w = api.do(http.MethodGet, "/api/student/1/course", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[{"enrollment_id":1,"student_id":1,"course_id":1},{"enrollment_id":2,"student_id":1,"course_id":1}]`, w.Body.String())

	w = api.do(http.MethodDelete, "/api/student/1/course/7", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ENROLLMENT001")

	w = api.do(http.MethodDelete, "/api/student/7/course/1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ENROLLMENT002")

	w = api.do(http.MethodDelete, "/api/student/1/course/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = api.do(http.MethodDelete, "/api/student/1/course/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_OperationalEndpoints(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = api.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, w.Body.String())

	w = api.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "enrollment_http_requests_total")

	w = api.do(http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/student/{student_id}/course")

	w = api.do(http.MethodGet, "/ping", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
