package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"serviturnos-api/config"
	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/internal/infrastructure/database"
	"serviturnos-api/internal/repository"
	"serviturnos-api/internal/service"
	"serviturnos-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test and migrates the
// full schema. SQLite stands in for Postgres here; the meetings table still
// carries no foreign keys because the schema disables constraint generation.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
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

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type testEnv struct {
	db           *gorm.DB
	log          *logrus.Logger
	auth         AuthUsecase
	customers    CustomerUsecase
	professional ProfessionalUsecase
	admins       AdminUsecase
	meetings     MeetingUsecase
	slots        SlotUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	log := testLogger()

	customerRepo := repository.NewCustomerRepository()
	professionalRepo := repository.NewProfessionalRepository()
	adminRepo := repository.NewAdminRepository()
	meetingRepo := repository.NewMeetingRepository()
	timeSlotRepo := repository.NewTimeSlotRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditLogRepo)
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})

	return &testEnv{
		db:           db,
		log:          log,
		auth:         NewAuthUsecase(db, log, customerRepo, professionalRepo, adminRepo, auditService, jwtService, nil),
		customers:    NewCustomerUsecase(db, log, customerRepo, meetingRepo, auditService),
		professional: NewProfessionalUsecase(db, log, professionalRepo, meetingRepo, auditService),
		admins:       NewAdminUsecase(db, log, adminRepo, auditLogRepo, auditService),
		meetings:     NewMeetingUsecase(db, log, meetingRepo, customerRepo, professionalRepo, auditService),
		slots:        NewSlotUsecase(db, log, professionalRepo, timeSlotRepo, auditService),
	}
}

func (e *testEnv) createCustomer(t *testing.T, email string) *entity.Customer {
	t.Helper()

	customer := &entity.Customer{User: entity.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "Customer",
	}}
	require.NoError(t, e.db.Create(customer).Error)
	return customer
}

func (e *testEnv) createProfessional(t *testing.T, email string, profession entity.Profession) *entity.Professional {
	t.Helper()

	professional := &entity.Professional{
		User: entity.User{
			Email:     email,
			Password:  "not-a-real-hash",
			FirstName: "Test",
			LastName:  "Professional",
		},
		Profession: profession,
	}
	require.NoError(t, e.db.Create(professional).Error)
	return professional
}

func (e *testEnv) createAdmin(t *testing.T, email string) *entity.Admin {
	t.Helper()

	admin := &entity.Admin{User: entity.User{
		Email:    email,
		Password: "not-a-real-hash",
	}}
	require.NoError(t, e.db.Create(admin).Error)
	return admin
}

func (e *testEnv) createMeeting(t *testing.T, customer *entity.Customer, professional *entity.Professional) *entity.Meeting {
	t.Helper()

	meeting := &entity.Meeting{
		CustomerID:     customer.ID,
		ProfessionalID: professional.ID,
		JobInfo:        "fix the kitchen sink",
	}
	require.NoError(t, e.db.Create(meeting).Error)
	return meeting
}

func testCtx() context.Context {
	return context.Background()
}
