package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty" binding:"omitempty,oneof=publisher user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateContentRequest struct {
	Title         string      `json:"title" binding:"required,min=1,max=255"`
	Content       string      `json:"content" binding:"required"`
	Type          ContentType `json:"type" binding:"required,oneof=newspaper journal article video_script"`
	Category      string      `json:"category"`
	Tags          []string    `json:"tags"`
	FeaturedImage string      `json:"featured_image"`
	VideoURL      string      `json:"video_url"`
	ReadTime      int         `json:"read_time"`
}

// UpdateContentRequest is a deliberate whitelist: identity, ownership and the
// view counter are not updatable through the API.
type UpdateContentRequest struct {
	Title         *string        `json:"title" binding:"omitempty,min=1,max=255"`
	Content       *string        `json:"content"`
	Type          *ContentType   `json:"type" binding:"omitempty,oneof=newspaper journal article video_script"`
	Category      *string        `json:"category"`
	Tags          *[]string      `json:"tags"`
	Status        *ContentStatus `json:"status" binding:"omitempty,oneof=draft published archived"`
	FeaturedImage *string        `json:"featured_image"`
	VideoURL      *string        `json:"video_url"`
	ReadTime      *int           `json:"read_time"`
}

type ContentListParams struct {
	Type     string `form:"type"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}
