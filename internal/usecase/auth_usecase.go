package usecase

import (
	"context"
	"fmt"

	"serviturnos-api/internal/converter"
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/internal/domain/repository"
	"serviturnos-api/internal/service"
	"serviturnos-api/pkg/apperror"
	"serviturnos-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = apperror.Wrap(apperror.ErrInvalidArgument, "email already registered")
	ErrInvalidCredentials     = apperror.Wrap(apperror.ErrUnauthorized, "invalid email or password")
	ErrAccountBlocked         = apperror.Wrap(apperror.ErrUnauthorized, "account is blocked")
	ErrInvalidToken           = apperror.Wrap(apperror.ErrUnauthorized, "invalid or expired token")
	ErrTokenRevoked           = apperror.Wrap(apperror.ErrUnauthorized, "token has been revoked")
)

type AuthUsecase interface {
	RegisterCustomer(ctx context.Context, req *dto.RegisterCustomerRequest) (*dto.CustomerResponse, error)
	RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.ProfessionalResponse, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.AdminResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID, userType string) (*dto.CurrentUserResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	customerRepo     repository.CustomerRepository
	professionalRepo repository.ProfessionalRepository
	adminRepo        repository.AdminRepository
	auditService     service.AuditService
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customerRepo repository.CustomerRepository,
	professionalRepo repository.ProfessionalRepository,
	adminRepo repository.AdminRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		customerRepo:     customerRepo,
		professionalRepo: professionalRepo,
		adminRepo:        adminRepo,
		auditService:     auditService,
		jwtService:       jwtService,
		redisClient:      redisClient,
	}
}

// emailTaken checks uniqueness across all three account kinds
func (u *authUsecase) emailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	customer, err := u.customerRepo.FindByEmail(ctx, db, email)
	if err != nil {
		return false, err
	}
	if customer != nil {
		return true, nil
	}

	professional, err := u.professionalRepo.FindByEmail(ctx, db, email)
	if err != nil {
		return false, err
	}
	if professional != nil {
		return true, nil
	}

	admin, err := u.adminRepo.FindByEmail(ctx, db, email)
	if err != nil {
		return false, err
	}
	return admin != nil, nil
}

func (u *authUsecase) newUser(email, password, firstName, lastName, phoneNumber, city, imageURL string) (entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return entity.User{}, err
	}

	return entity.User{
		Email:       email,
		Password:    string(hashedPassword),
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
		City:        city,
		ImageURL:    imageURL,
	}, nil
}

func (u *authUsecase) RegisterCustomer(ctx context.Context, req *dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.emailTaken(ctx, tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyRegistered
	}

	user, err := u.newUser(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber, req.City, req.ImageURL)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{User: user}
	if err := u.customerRepo.Create(ctx, tx, customer); err != nil {
		u.log.Warnf("Failed to create customer: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &customer.ID, entity.AuditActionUserRegister, entity.JSON{
		"user_type": entity.UserTypeCustomer,
		"email":     customer.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

func (u *authUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.ProfessionalResponse, error) {
	profession, err := entity.ParseProfession(req.Profession)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.emailTaken(ctx, tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyRegistered
	}

	user, err := u.newUser(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber, req.City, req.ImageURL)
	if err != nil {
		return nil, err
	}

	professional := &entity.Professional{
		User:       user,
		Profession: profession,
	}
	if req.Fee != nil {
		professional.Fee = decimal.NewNullDecimal(decimal.NewFromFloat(*req.Fee))
	}

	if err := u.professionalRepo.Create(ctx, tx, professional); err != nil {
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professional.ID, entity.AuditActionUserRegister, entity.JSON{
		"user_type":  entity.UserTypeProfessional,
		"email":      professional.Email,
		"profession": string(profession),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *authUsecase) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.AdminResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.emailTaken(ctx, tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyRegistered
	}

	user, err := u.newUser(req.Email, req.Password, req.FirstName, req.LastName, "", "", "")
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{User: user}
	if err := u.adminRepo.Create(ctx, tx, admin); err != nil {
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &admin.ID, entity.AuditActionUserRegister, entity.JSON{
		"user_type": entity.UserTypeAdmin,
		"email":     admin.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdminToResponse(admin), nil
}

// account is the view of a user record needed to issue tokens
type account struct {
	id        uuid.UUID
	firstName string
	lastName  string
	userType  string
	password  string
	available bool
}

// lookupAccount searches the three user stores in order: admin,
// professional, customer.
func (u *authUsecase) lookupAccount(ctx context.Context, email string) (*account, error) {
	admin, err := u.adminRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		return &account{admin.ID, admin.FirstName, admin.LastName, entity.UserTypeAdmin, admin.Password, admin.IsAvailable()}, nil
	}

	professional, err := u.professionalRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		return nil, err
	}
	if professional != nil {
		return &account{professional.ID, professional.FirstName, professional.LastName, entity.UserTypeProfessional, professional.Password, professional.IsAvailable()}, nil
	}

	customer, err := u.customerRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return &account{customer.ID, customer.FirstName, customer.LastName, entity.UserTypeCustomer, customer.Password, customer.IsAvailable()}, nil
	}

	return nil, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	acc, err := u.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, acc.id, acc.firstName, acc.lastName, acc.userType)
}

// authenticate resolves the account behind the credentials. Both checks must
// hold before any token is issued: the password matches and the account is
// available. A blocked account fails even with the right password.
func (u *authUsecase) authenticate(ctx context.Context, email, password string) (*account, error) {
	acc, err := u.lookupAccount(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !acc.available {
		return nil, ErrAccountBlocked
	}

	return acc, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, firstName, lastName, userType string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, firstName, lastName, userType)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, firstName, lastName, userType)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
		fmt.Sprintf("refresh_token:*:%s", refreshTokenID),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: old refresh token is single use
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Name, claims.LastName, claims.UserType)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID, userType string) (*dto.CurrentUserResponse, error) {
	response := &dto.CurrentUserResponse{UserType: userType}

	switch userType {
	case entity.UserTypeCustomer:
		customer, err := u.customerRepo.FindByID(ctx, u.db, userID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, ErrCustomerNotFound
		}
		response.Customer = converter.CustomerToResponse(customer)
	case entity.UserTypeProfessional:
		professional, err := u.professionalRepo.FindByID(ctx, u.db, userID)
		if err != nil {
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfessionalNotFound
		}
		response.Professional = converter.ProfessionalToResponse(professional)
	case entity.UserTypeAdmin:
		admin, err := u.adminRepo.FindByID(ctx, u.db, userID)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, ErrAdminNotFound
		}
		response.Admin = converter.AdminToResponse(admin)
	default:
		return nil, apperror.Wrap(apperror.ErrInvalidArgument, "unknown user type %q", userType)
	}

	return response, nil
}
