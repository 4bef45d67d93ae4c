package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestJWTVerifierAcceptsValidToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tok := sign(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims{
		Email: "admin@produtora.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "8f5e2b8a-1111-4444-9999-000000000001",
			Audience:  jwt.ClaimStrings{authenticatedAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	id, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "8f5e2b8a-1111-4444-9999-000000000001", id.UserID)
	assert.Equal(t, "admin@produtora.com", id.Email)
}

func TestJWTVerifierRejects(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	valid := jwt.RegisteredClaims{
		Subject:   "u-1",
		Audience:  jwt.ClaimStrings{authenticatedAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExp := valid
	noExp.ExpiresAt = nil

	wrongAud := valid
	wrongAud.Audience = jwt.ClaimStrings{"anon"}

	tests := map[string]string{
		"expirado":        sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"sem exp":         sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExp),
		"audiência":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAud),
		"outro segredo":   sign(t, jwt.SigningMethodHS256, []byte("outro-segredo-qualquer-com-tamanho"), valid),
		"algoritmo HS512": sign(t, jwt.SigningMethodHS512, []byte(testSecret), valid),
		"lixo":            "nao.e.jwt",
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, entity.ErrInvalidToken)
		})
	}
}

func TestLeadStoreList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/leads", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Contains(t, r.URL.Query().Get("order"), "created_at.desc")

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":"b","name":"Bia","email":"b@x.com","whatsapp":null,"project_type":null,"objective":"Foto","message":null,"status":"perdido","notes":null,"created_at":"2025-03-01T11:00:00+00:00","updated_at":"2025-03-01T11:00:00+00:00"},
			{"id":"a","name":"Ana","email":"a@x.com","whatsapp":"4799","project_type":"Institucional","objective":"Vídeo","message":"Empresa: Acme","status":"novo","notes":"ligar","created_at":"2025-03-01T10:00:00+00:00","updated_at":"2025-03-01T10:00:00+00:00"}
		]`)
	}))
	defer srv.Close()

	store := NewLeadStore(srv.URL, "service-key")
	leads, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, entity.LeadStatusPerdido, leads[0].Status)
	assert.Empty(t, leads[0].WhatsApp)
	assert.Equal(t, "ligar", leads[1].Notes)
}

func TestLeadStoreDeleteMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.sumiu", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	store := NewLeadStore(srv.URL, "service-key")
	assert.ErrorIs(t, store.Delete(context.Background(), "sumiu"), entity.ErrLeadNotFound)
}

func TestLeadStoreMalformedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"code":"22P02","message":"invalid input syntax for type uuid: \"abc\""}`)
	}))
	defer srv.Close()

	store := NewLeadStore(srv.URL, "service-key")
	_, err := store.FindByID(context.Background(), "abc")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	assert.ErrorIs(t, store.Delete(context.Background(), "abc"), entity.ErrLeadNotFound)
}

func TestFunctionNotifier(t *testing.T) {
	var got usecase.LeadNotification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-lead-notification", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true}`)
	}))
	defer srv.Close()

	n := NewFunctionNotifier(srv.URL, "anon", "send-lead-notification")
	err := n.NotifyLeadCreated(context.Background(), usecase.LeadNotification{
		Name: "João", Email: "joao@test.com", WhatsApp: "47999999999", Objective: "Vídeo", Company: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
}

func TestFunctionNotifierRejectsIncompletePayload(t *testing.T) {
	n := NewFunctionNotifier("http://127.0.0.1:1", "anon", "send-lead-notification")
	err := n.NotifyLeadCreated(context.Background(), usecase.LeadNotification{Name: "João"})
	assert.EqualError(t, err, "Missing required lead fields")
}
