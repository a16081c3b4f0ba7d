package serviceimpl

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/repositories"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/logger"
	"seo-backoffice/pkg/utils"
)

const tokenRandomLength = 9

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
	now       func() time.Time
}

func NewAuthService(adminRepo repositories.AdminRepository) services.AuthService {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		now:       time.Now,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*dto.LoginResult, error) {
	admins, err := s.adminRepo.FindByLogin(ctx, identifier)
	if err != nil {
		logger.ErrorContext(ctx, "Admin lookup failed", "error", err)
		return nil, services.ErrBackendUnavailable
	}
	if len(admins) == 0 {
		return nil, services.ErrNotFound
	}

	// แถวแรกที่รหัสผ่านตรงชนะ
	for _, admin := range admins {
		if !VerifyPassword(admin.Password, password) {
			continue
		}

		session, err := json.Marshal(admin)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize session: %w", err)
		}

		logger.InfoContext(ctx, "Admin logged in", "admin_id", admin.ID)
		return &dto.LoginResult{
			Admin:        admin,
			SessionToken: IssueToken(admin.ID, s.now()),
			Session:      string(session),
		}, nil
	}

	return nil, services.ErrInvalidCredentials
}

func (s *AuthServiceImpl) Authorize(ctx context.Context, payload string) (*models.AdminSession, error) {
	id, err := ParseSessionPayload(payload)
	if err != nil {
		logger.WarnContext(ctx, "Invalid admin session", "error", err)
		return nil, services.ErrUnauthorized
	}

	exists, err := s.adminRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Admin session check failed", "admin_id", id, "error", err)
		return nil, services.ErrUnauthorized
	}
	if !exists {
		logger.WarnContext(ctx, "Admin session refers to unknown admin", "admin_id", id)
		return nil, services.ErrUnauthorized
	}

	return &models.AdminSession{AdminID: id, VerifiedAt: s.now()}, nil
}

// VerifyPassword accepts the stored value as plaintext or as a legacy MD5 digest.
func VerifyPassword(stored, password string) bool {
	if stored == password {
		return true
	}
	return stored == LegacyHash(password)
}

// LegacyHash is the lowercase hex MD5 of the UTF-8 password.
func LegacyHash(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IssueToken สร้าง token รูปแบบ admin_<id>_<unix ms>_<random 9 ตัว>
func IssueToken(adminID int64, now time.Time) string {
	return fmt.Sprintf("admin_%d_%d_%s", adminID, now.UnixMilli(), utils.GenerateRandomString(tokenRandomLength))
}

// ParseSessionPayload extracts id_admin from the serialized session record.
func ParseSessionPayload(payload string) (int64, error) {
	if strings.TrimSpace(payload) == "" {
		return 0, fmt.Errorf("missing session")
	}

	var record map[string]any
	if err := dto.DecodeJSON([]byte(payload), &record); err != nil {
		return 0, fmt.Errorf("malformed session: %w", err)
	}

	raw, ok := record["id_admin"]
	if !ok || raw == nil {
		return 0, fmt.Errorf("session has no id_admin")
	}
	id, ok := dto.AsInt64(dto.NormalizeValue(raw))
	if !ok {
		return 0, fmt.Errorf("session id_admin is not an integer")
	}
	return id, nil
}
