package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/internal/infrastructure/database"
	"serviturnos-api/internal/repository"
	"serviturnos-api/internal/service"
	"serviturnos-api/internal/usecase"
	"serviturnos-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the meeting routes against an in-memory database,
// without the auth middleware.
func newTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.Professional{},
		&entity.Admin{},
		&entity.TimeSlot{},
		&entity.Meeting{},
		&entity.AuditLog{},
	))
	require.NoError(t, database.SeedTimeSlots(db))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	customerRepo := repository.NewCustomerRepository()
	professionalRepo := repository.NewProfessionalRepository()
	meetingRepo := repository.NewMeetingRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditLogRepo)

	meetingUsecase := usecase.NewMeetingUsecase(db, log, meetingRepo, customerRepo, professionalRepo, auditService)
	meetingHandler := NewMeetingHandler(meetingUsecase, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/meetings", meetingHandler.Create).Methods(http.MethodPost)
	router.HandleFunc("/meetings", meetingHandler.GetAll).Methods(http.MethodGet)
	router.HandleFunc("/meetings/{id}", meetingHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/meetings/{id}/accept", meetingHandler.Accept).Methods(http.MethodPost)
	router.HandleFunc("/meetings/{id}/finalize", meetingHandler.Finalize).Methods(http.MethodPost)

	return router, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestMeetingHandlerCreateAndAccept(t *testing.T) {
	router, db := newTestRouter(t)

	customer := &entity.Customer{User: entity.User{Email: "ana@example.com", Password: "x"}}
	require.NoError(t, db.Create(customer).Error)
	professional := &entity.Professional{
		User:       entity.User{Email: "leo@example.com", Password: "x"},
		Profession: entity.ProfessionPlumber,
	}
	require.NoError(t, db.Create(professional).Error)

	rec, env := doJSON(t, router, http.MethodPost, "/meetings", map[string]interface{}{
		"customer_id":     customer.ID,
		"professional_id": professional.ID,
		"job_info":        "unclog the drain",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created.Status)

	rec, env = doJSON(t, router, http.MethodPost, "/meetings/"+created.ID+"/accept", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var accepted struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &accepted))
	assert.Equal(t, "accepted", accepted.Status)

	// Accepting again is an invalid transition
	rec, env = doJSON(t, router, http.MethodPost, "/meetings/"+created.ID+"/accept", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestMeetingHandlerCreateUnknownProfessional(t *testing.T) {
	router, db := newTestRouter(t)

	customer := &entity.Customer{User: entity.User{Email: "ana@example.com", Password: "x"}}
	require.NoError(t, db.Create(customer).Error)

	rec, env := doJSON(t, router, http.MethodPost, "/meetings", map[string]interface{}{
		"customer_id":     customer.ID,
		"professional_id": "6b1f6f2e-0c4e-4a27-90a2-cc1a9f9e3c11",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestMeetingHandlerInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/meetings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetingHandlerFilterByStatus(t *testing.T) {
	router, db := newTestRouter(t)

	customer := &entity.Customer{User: entity.User{Email: "ana@example.com", Password: "x"}}
	require.NoError(t, db.Create(customer).Error)
	professional := &entity.Professional{
		User:       entity.User{Email: "leo@example.com", Password: "x"},
		Profession: entity.ProfessionPainter,
	}
	require.NoError(t, db.Create(professional).Error)
	meeting := &entity.Meeting{CustomerID: customer.ID, ProfessionalID: professional.ID}
	require.NoError(t, db.Create(meeting).Error)

	rec, env := doJSON(t, router, http.MethodGet, "/meetings?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)

	rec, _ = doJSON(t, router, http.MethodGet, "/meetings?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
