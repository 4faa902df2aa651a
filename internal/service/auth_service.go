package service

import (
	"context"
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"new-family/config"
	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
	"new-family/pkg/jwt"
	"new-family/pkg/redis"
)

// ── 인증 모듈 업무 오류 ──

var (
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
	ErrInvalidGoogleToken = errors.New("유효하지 않은 Google 토큰입니다")
	ErrWrongPassword      = errors.New("현재 비밀번호가 일치하지 않습니다")
)

// AuthService 인증 업무 인터페이스
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// GoogleLogin Google ID 토큰 검증 후 로그인. 최초 로그인 시 viewer 계정을 자동 생성한다.
	GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger

	// verifyGoogleToken 테스트에서 교체 가능한 Google 토큰 검증 함수
	verifyGoogleToken func(idToken, clientID string) (email, name, sub string, err error)
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:               cfg,
		repo:              repo,
		jwtMgr:            jwtMgr,
		rdb:               rdb,
		logger:            logger,
		verifyGoogleToken: verifyGoogleIDToken,
	}
}

// verifyGoogleIDToken Google ID 토큰 서명 검증 후 클레임 추출
func verifyGoogleIDToken(idToken, clientID string) (string, string, string, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return "", "", "", err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", "", "", err
	}
	return claimSet.Email, claimSet.Name, claimSet.Sub, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 사용자 조회
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, err
	}

	// 2. 비밀번호 검증 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.TokenResponse, error) {
	email, name, sub, err := s.verifyGoogleToken(req.IDToken, s.cfg.Google.ClientID)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}

	// google_sub 기준 조회, 없으면 이메일 기준 연결, 그래도 없으면 viewer로 자동 생성
	user, err := s.repo.User.GetByGoogleSub(ctx, sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("사용자 조회 실패", zap.Error(err))
			return nil, err
		}
		user, err = s.repo.User.GetByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("사용자 조회 실패", zap.Error(err))
				return nil, err
			}
			user = &model.User{
				Email:     email,
				Name:      name,
				Role:      model.RoleViewer,
				GoogleSub: &sub,
			}
			if err := s.repo.User.Create(ctx, user); err != nil {
				s.logger.Error("Google 사용자 생성 실패", zap.Error(err))
				return nil, err
			}
			s.logger.Info("Google 최초 로그인, viewer 계정 생성",
				zap.String("email", email))
		} else {
			user.GoogleSub = &sub
			if err := s.repo.User.Update(ctx, user); err != nil {
				s.logger.Error("Google 계정 연결 실패", zap.Error(err))
				return nil, err
			}
		}
	}

	return s.issueTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	// 블랙리스트 확인 (로그아웃된 refresh 토큰 차단)
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("블랙리스트 조회 실패", zap.Error(err))
		} else if blacklisted {
			return nil, jwt.ErrTokenInvalid
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // Redis 미가용 시 블랙리스트 없이 동작
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserDetailResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("비밀번호 변경 실패", zap.Error(err))
		return err
	}
	return nil
}

// issueTokens Access/Refresh 토큰 쌍 발급
func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Email, user.Name, user.Role)
	if err != nil {
		s.logger.Error("AccessToken 발급 실패", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Email, user.Name, user.Role)
	if err != nil {
		s.logger.Error("RefreshToken 발급 실패", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:    user.UserID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}
