package services

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/studyquest/internal/models"
	"github.com/terraincognita07/studyquest/internal/store"
)

type ShareService struct {
	shares  *store.ShareStore
	records *store.RecordStore
	users   *store.UserStore
}

func NewShareService(stores *store.Stores) *ShareService {
	return &ShareService{
		shares:  stores.Shares,
		records: stores.Records,
		users:   stores.Users,
	}
}

// CreateLink mints an unguessable token for a record the user owns. Sharing
// the same record again returns the existing token, so the public URL stays
// stable.
func (service *ShareService) CreateLink(userID uint, recordID uint) (string, bool) {
	if _, owned := service.records.Get(userID, recordID); !owned {
		return "", false
	}
	if token, exists := service.shares.TokenFor(userID, recordID); exists {
		return token, true
	}

	token := uuid.NewString()
	service.shares.Put(token, userID, recordID)
	return token, true
}

type SharedRecord struct {
	Record         models.StudyRecord
	OwnerUsername  string
	OwnerLevel     int
	OwnerAvatarURL string
}

// Resolve answers a public share token with the record and the owner's public
// profile. Tokens for deleted records or users no longer resolve.
func (service *ShareService) Resolve(token string) (SharedRecord, bool) {
	userID, recordID, exists := service.shares.Resolve(token)
	if !exists {
		return SharedRecord{}, false
	}

	record, found := service.records.Get(userID, recordID)
	if !found {
		return SharedRecord{}, false
	}
	owner, found := service.users.FindByID(userID)
	if !found {
		return SharedRecord{}, false
	}

	avatarURL, known := models.AvatarImageURL(owner.Avatar)
	if !known {
		avatarURL, _ = models.AvatarImageURL(models.DefaultAvatarID)
	}

	return SharedRecord{
		Record:         record,
		OwnerUsername:  owner.Username,
		OwnerLevel:     owner.Level,
		OwnerAvatarURL: avatarURL,
	}, true
}
