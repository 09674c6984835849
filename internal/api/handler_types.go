package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/studyquest/internal/services"
	"github.com/terraincognita07/studyquest/internal/store"
)

type Handler struct {
	stores          *store.Stores
	authService     *services.AuthService
	recordService   *services.RecordService
	settingsService *services.SettingsService
	shareService    *services.ShareService
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
}

func NewHandler(stores *store.Stores, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	return &Handler{
		stores:          stores,
		authService:     services.NewAuthService(stores.Users),
		recordService:   services.NewRecordService(stores),
		settingsService: services.NewSettingsService(stores.Users),
		shareService:    services.NewShareService(stores),
		secretKey:       []byte(secretKey),
		location:        location,
		cookieSecure:    cookieSecure,
	}
}

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
