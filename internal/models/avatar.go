package models

const DefaultAvatarID = "default_cat"

type AvatarOption struct {
	ID       string
	ImageURL string
}

func DefaultAvatarOptions() []AvatarOption {
	return []AvatarOption{
		{ID: "default_cat", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=default"},
		{ID: "cat", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=cat"},
		{ID: "dog", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=dog"},
		{ID: "bear", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=bear"},
		{ID: "fox", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=fox"},
		{ID: "rabbit", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=rabbit"},
		{ID: "panda", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=panda"},
		{ID: "lion", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=lion"},
		{ID: "tiger", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=tiger"},
		{ID: "wolf", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=wolf"},
		{ID: "koala", ImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=koala"},
	}
}

// AvatarImageURL resolves a catalog id to its image URL. Unknown ids report false.
func AvatarImageURL(avatarID string) (string, bool) {
	for _, option := range DefaultAvatarOptions() {
		if option.ID == avatarID {
			return option.ImageURL, true
		}
	}
	return "", false
}

func DefaultSubjects() []string {
	return []string{"Math", "English", "Japanese", "Science", "Social studies", "Programming"}
}
