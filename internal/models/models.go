package models

import (
	"time"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// User is the stored account row. Role uses the shared ordered enum
// from pkg/api so the privilege hierarchy lives in exactly one place.
type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    []byte
	Role            api.Role
	ProfilePhotoURL *string
	IsBanned        bool
	IsSuperAdmin    bool
	IPAddress       *string
	CreatedAt       time.Time
}

// Public strips the row down to the wire record.
func (u User) Public() api.User {
	return api.User{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
		ProfilePhotoURL: u.ProfilePhotoURL,
		IsBanned:        u.IsBanned,
		CreatedAt:       u.CreatedAt,
	}
}

type Series struct {
	ID          string
	Title       string
	Description string
	PosterURL   string
	Genre       *string
	CreatedBy   string
	CreatedAt   time.Time
}

func (s Series) Public() api.Series {
	return api.Series{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		PosterURL:   s.PosterURL,
		Genre:       s.Genre,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
	}
}

type Season struct {
	ID           string
	SeriesID     string
	SeasonNumber int
	Title        string
	CreatedAt    time.Time
}

func (s Season) Public() api.Season {
	return api.Season{
		ID:           s.ID,
		SeriesID:     s.SeriesID,
		SeasonNumber: s.SeasonNumber,
		Title:        s.Title,
		CreatedAt:    s.CreatedAt,
	}
}

type Episode struct {
	ID            string
	SeasonID      string
	EpisodeNumber int
	Title         string
	VideoEmbedURL string
	ThumbnailURL  *string
	Description   *string
	Views         int64
	CreatedAt     time.Time
}

func (e Episode) Public() api.Episode {
	return api.Episode{
		ID:            e.ID,
		SeasonID:      e.SeasonID,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		VideoEmbedURL: e.VideoEmbedURL,
		ThumbnailURL:  e.ThumbnailURL,
		Description:   e.Description,
		Views:         e.Views,
		CreatedAt:     e.CreatedAt,
	}
}

// Comment denormalizes author fields at write time, as the original
// schema did, so listing a thread needs no user join.
type Comment struct {
	ID               string
	EpisodeID        string
	UserID           string
	Username         string
	UserProfilePhoto *string
	UserRole         api.Role
	Content          string
	ParentCommentID  *string
	Likes            int
	IsPinned         bool
	CreatedAt        time.Time
}

func (c Comment) Public() api.Comment {
	return api.Comment{
		ID:               c.ID,
		EpisodeID:        c.EpisodeID,
		UserID:           c.UserID,
		Username:         c.Username,
		UserProfilePhoto: c.UserProfilePhoto,
		UserRole:         c.UserRole,
		Content:          c.Content,
		ParentCommentID:  c.ParentCommentID,
		Likes:            c.Likes,
		IsPinned:         c.IsPinned,
		CreatedAt:        c.CreatedAt,
		Replies:          []api.Comment{},
	}
}
