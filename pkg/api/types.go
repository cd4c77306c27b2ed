// Package api declares the kinea wire contract: the JSON types and the
// role/capability model shared by the backend and the client kernel.
// All endpoints live under the /api base path and speak these shapes.
package api

import "time"

// User is the public account record returned by the backend. The
// password hash never crosses the wire.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	ProfilePhotoURL *string   `json:"profile_photo_url"`
	IsBanned        bool      `json:"is_banned"`
	CreatedAt       time.Time `json:"created_at"`
}

type Series struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PosterURL   string    `json:"poster_url"`
	Genre       *string   `json:"genre,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Season struct {
	ID           string    `json:"id"`
	SeriesID     string    `json:"series_id"`
	SeasonNumber int       `json:"season_number"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
}

type Episode struct {
	ID            string    `json:"id"`
	SeasonID      string    `json:"season_id"`
	EpisodeNumber int       `json:"episode_number"`
	Title         string    `json:"title"`
	VideoEmbedURL string    `json:"video_embed_url"`
	ThumbnailURL  *string   `json:"thumbnail_url,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
}

// Comment carries denormalized author fields so the client renders a
// thread without extra lookups. Replies nest a single level deep.
type Comment struct {
	ID               string    `json:"id"`
	EpisodeID        string    `json:"episode_id"`
	UserID           string    `json:"user_id"`
	Username         string    `json:"username"`
	UserProfilePhoto *string   `json:"user_profile_photo"`
	UserRole         Role      `json:"user_role"`
	Content          string    `json:"content"`
	ParentCommentID  *string   `json:"parent_comment_id"`
	Likes            int       `json:"likes"`
	IsPinned         bool      `json:"is_pinned"`
	CreatedAt        time.Time `json:"created_at"`
	Replies          []Comment `json:"replies"`
}

type AdContent struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type Stats struct {
	TotalUsers    int64     `json:"total_users"`
	TotalSeries   int64     `json:"total_series"`
	TotalEpisodes int64     `json:"total_episodes"`
	TotalComments int64     `json:"total_comments"`
	TopEpisodes   []Episode `json:"top_episodes"`
}

// ErrorResponse is the error payload of every non-2xx response. Detail
// is a user-facing message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse acknowledges a mutation with a user-facing message.
type MessageResponse struct {
	Message string `json:"message"`
	// Action distinguishes the direction of toggle endpoints
	// (like/favorite): "liked"/"unliked", "added"/"removed".
	Action string `json:"action,omitempty"`
}

type RegisterRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	IPAddress *string `json:"ip_address,omitempty"`
}

type LoginRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	IPAddress *string `json:"ip_address,omitempty"`
}

// AuthResponse is the success payload of login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SeriesInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	Genre       *string `json:"genre,omitempty"`
}

type SeasonInput struct {
	SeriesID     string `json:"series_id"`
	SeasonNumber int    `json:"season_number"`
	Title        string `json:"title"`
}

type EpisodeInput struct {
	SeasonID      string  `json:"season_id"`
	EpisodeNumber int     `json:"episode_number"`
	Title         string  `json:"title"`
	VideoEmbedURL string  `json:"video_embed_url"`
	ThumbnailURL  *string `json:"thumbnail_url,omitempty"`
	Description   *string `json:"description,omitempty"`
}

type CommentInput struct {
	EpisodeID       string  `json:"episode_id"`
	Content         string  `json:"content"`
	ParentCommentID *string `json:"parent_comment_id,omitempty"`
}

type RoleUpdate struct {
	Role Role `json:"role"`
}

type ProfilePhotoUpdate struct {
	ProfilePhotoURL string `json:"profile_photo_url"`
}

type UsernameUpdate struct {
	Username string `json:"username"`
}

type EmailUpdate struct {
	Email string `json:"email"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type AdContentUpdate struct {
	Content string `json:"content"`
}

// UploadResponse is returned by the media upload endpoint.
type UploadResponse struct {
	URL string `json:"url"`
}
