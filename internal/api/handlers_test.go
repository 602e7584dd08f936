package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deskcalc/internal/api"
	"deskcalc/internal/auth"
	"deskcalc/internal/models"
	"deskcalc/internal/session"
)

func newServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	srv := httptest.NewServer(api.SetupRouter(session.NewManager()))
	t.Cleanup(srv.Close)

	token, err := auth.GenerateToken(1, "tester")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return srv, token
}

func doJSON(t *testing.T, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("маршалинг запроса: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("создание запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("выполнение запроса: %v", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("чтение ответа: %v", err)
	}
	return resp, buf.Bytes()
}

func createSession(t *testing.T, srv *httptest.Server, token string) models.SessionResponse {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions", token, map[string]string{})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("создание сессии: статус %d, тело %s", resp.StatusCode, body)
	}

	var sr models.SessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		t.Fatalf("разбор ответа: %v", err)
	}
	return sr
}

func TestSessionLifecycle(t *testing.T) {
	srv, token := newServer(t)

	sr := createSession(t, srv, token)
	if sr.Display != "0" || sr.ClearLabel != "AC" {
		t.Fatalf("начальный дисплей: %+v", sr)
	}

	for _, key := range []string{"2", "+", "3", "*", "4"} {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions/"+sr.ID+"/keys", token,
			models.KeyRequest{Key: key})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("клавиша %q: статус %d, тело %s", key, resp.StatusCode, body)
		}
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions/"+sr.ID+"/keys", token,
		models.KeyRequest{Key: "="})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("клавиша =: статус %d", resp.StatusCode)
	}
	var got models.SessionResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("разбор ответа: %v", err)
	}
	if got.Display != "20" || got.ClearLabel != "C" {
		t.Errorf("после 2+3*4=: %+v, ожидался дисплей 20", got)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/sessions/"+sr.ID, token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("удаление сессии: статус %d, ожидалось 204", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/sessions/"+sr.ID, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("чтение удалённой сессии: статус %d, ожидалось 404", resp.StatusCode)
	}
}

func TestPressKeyValidation(t *testing.T) {
	srv, token := newServer(t)
	sr := createSession(t, srv, token)
	keysURL := srv.URL + "/sessions/" + sr.ID + "/keys"

	tests := []struct {
		name       string
		payload    interface{}
		wantStatus int
	}{
		{
			name:       "неизвестная клавиша",
			payload:    models.KeyRequest{Key: "abc"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "пустая клавиша",
			payload:    models.KeyRequest{Key: ""},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "пустое тело",
			payload:    nil,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, http.MethodPost, keysURL, token, tt.payload)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("статус %d, ожидалось %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	srv, token := newServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/sessions", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("без токена: статус %d, ожидалось 401", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/sessions/no-such-id", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("чужая сессия: статус %d, ожидалось 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/token-info", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("token-info: статус %d, ожидалось 200", resp.StatusCode)
	}
}
