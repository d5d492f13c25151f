package api

import (
	"encoding/json"
	"time"
)

const apiTimestampLayout = "2006-01-02 15:04:05"

// ProcessingStatus is the lifecycle tag the backend attaches to uploaded
// images, wardrobe items and recommendations.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// String returns the string representation of the status.
func (s ProcessingStatus) String() string {
	return string(s)
}

// Terminal reports whether the backend will not change this status again.
func (s ProcessingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// InProgress reports whether a background job is still running or queued.
func (s ProcessingStatus) InProgress() bool {
	return s == StatusPending || s == StatusProcessing
}

// ImageType classifies an uploaded user photo.
type ImageType string

const (
	ImageFront   ImageType = "front"
	ImageBack    ImageType = "back"
	ImageSide    ImageType = "side"
	ImageCloseUp ImageType = "close_up"
	ImageGeneric ImageType = "user_image"
)

// Credentials is the payload for signup and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token mirrors the auth token response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserInfo mirrors /api/auth/me.
type UserInfo struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Profile mirrors the user profile resource. All descriptive fields are
// optional on the backend; zero values mean "not set".
type Profile struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	Name           string  `json:"name,omitempty"`
	Gender         string  `json:"gender,omitempty"`
	Age            int     `json:"age,omitempty"`
	Height         float64 `json:"height,omitempty"` // cm
	Weight         float64 `json:"weight,omitempty"` // kg
	MaritalStatus  string  `json:"marital_status,omitempty"`
	BodyType       string  `json:"body_type,omitempty"`
	FaceTone       string  `json:"face_tone,omitempty"`
	State          string  `json:"state,omitempty"`
	Country        string  `json:"country,omitempty"`
	Occupation     string  `json:"occupation,omitempty"`
	AdditionalInfo string  `json:"additional_info,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

// ProfileParams carries the writable profile fields for create and update.
// Only non-zero fields are sent, so partial updates leave the rest untouched.
type ProfileParams struct {
	Name           string  `json:"name,omitempty"`
	Gender         string  `json:"gender,omitempty"`
	Age            int     `json:"age,omitempty"`
	Height         float64 `json:"height,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	MaritalStatus  string  `json:"marital_status,omitempty"`
	BodyType       string  `json:"body_type,omitempty"`
	FaceTone       string  `json:"face_tone,omitempty"`
	State          string  `json:"state,omitempty"`
	Country        string  `json:"country,omitempty"`
	Occupation     string  `json:"occupation,omitempty"`
	AdditionalInfo string  `json:"additional_info,omitempty"`
}

// UserImage mirrors an uploaded user photo.
type UserImage struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	ImageType        ImageType        `json:"image_type"`
	ImagePath        string           `json:"image_path"`
	AIMetadata       string           `json:"ai_metadata,omitempty"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at,omitempty"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (i UserImage) ParsedCreatedAt() time.Time {
	return parseTime(i.CreatedAt)
}

// WardrobeItem mirrors a wardrobe entry. The descriptive fields are filled in
// by the backend's AI pass once processing completes.
type WardrobeItem struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	DressType        string           `json:"dress_type,omitempty"`
	Style            string           `json:"style,omitempty"`
	Color            string           `json:"color,omitempty"`
	Brand            string           `json:"brand,omitempty"`
	Size             string           `json:"size,omitempty"`
	AIMetadata       string           `json:"ai_metadata,omitempty"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at,omitempty"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (w WardrobeItem) ParsedCreatedAt() time.Time {
	return parseTime(w.CreatedAt)
}

// ItemMetadata is the AI-derived garment analysis embedded in a wardrobe
// item's ai_metadata JSON blob.
type ItemMetadata struct {
	GarmentType      string   `json:"garment_type"`
	Color            string   `json:"color"`
	Material         string   `json:"material"`
	Style            string   `json:"style"`
	Occasions        []string `json:"occasions"`
	Seasons          []string `json:"seasons"`
	FormalityScore   float64  `json:"formality_score"`
	VersatilityScore float64  `json:"versatility_score"`
}

// Metadata decodes the ai_metadata blob. It returns the zero value without
// error when the item has not been processed yet.
func (w WardrobeItem) Metadata() (ItemMetadata, error) {
	if w.AIMetadata == "" {
		return ItemMetadata{}, nil
	}
	var meta ItemMetadata
	if err := json.Unmarshal([]byte(w.AIMetadata), &meta); err != nil {
		return ItemMetadata{}, err
	}
	return meta, nil
}

// WardrobeImage is one stored photo of a wardrobe item. The backend may add
// cropped variants alongside the original upload.
type WardrobeImage struct {
	ID             int64     `json:"id"`
	WardrobeItemID int64     `json:"wardrobe_item_id"`
	ImagePath      string    `json:"image_path"`
	ImageType      ImageType `json:"image_type,omitempty"`
	IsOriginal     bool      `json:"is_original"`
	CreatedAt      string    `json:"created_at"`
}

// WardrobeItemWithImages is the list/detail shape for wardrobe items.
type WardrobeItemWithImages struct {
	WardrobeItem
	Images []WardrobeImage `json:"images"`
}

// ProcessingResponse acknowledges an asynchronous job trigger.
type ProcessingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TaskID  string `json:"task_id,omitempty"`
}

// RecommendationRequest asks the backend to generate outfits for a free-text
// style query.
type RecommendationRequest struct {
	Query              string `json:"query"`
	RecommendationType string `json:"recommendation_type,omitempty"`
}

// OutfitItem references one wardrobe item inside an outfit.
type OutfitItem struct {
	WardrobeItemID int64  `json:"wardrobe_item_id"`
	ItemName       string `json:"item_name"`
	StylingTip     string `json:"styling_tip,omitempty"`
}

// Outfit is one suggested combination inside a recommendation.
type Outfit struct {
	OutfitName      string       `json:"outfit_name"`
	Occasion        string       `json:"occasion,omitempty"`
	Description     string       `json:"description,omitempty"`
	WhyItWorks      string       `json:"why_it_works,omitempty"`
	StylingTips     []string     `json:"styling_tips,omitempty"`
	Items           []OutfitItem `json:"items"`
	WardrobeItemIDs []int64      `json:"wardrobe_item_ids"`
	TryOnImagePath  string       `json:"tryon_image_path,omitempty"`
}

// Recommendation mirrors a generated recommendation. Outfits is parsed by the
// backend from its AI metadata; Status is "processing" until the metadata
// lands and "completed" afterwards.
type Recommendation struct {
	ID                 int64    `json:"id"`
	UserID             int64    `json:"user_id"`
	Query              string   `json:"query"`
	RecommendationType string   `json:"recommendation_type,omitempty"`
	AIMetadata         string   `json:"ai_metadata,omitempty"`
	CreatedAt          string   `json:"created_at"`
	Status             string   `json:"status"`
	Outfits            []Outfit `json:"outfits"`
}

// Completed reports whether the backend has finished generating outfits.
func (r Recommendation) Completed() bool {
	return r.Status == "completed" && len(r.Outfits) > 0
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (r Recommendation) ParsedCreatedAt() time.Time {
	return parseTime(r.CreatedAt)
}

// OutfitItemImages resolves one outfit member to its wardrobe photos.
type OutfitItemImages struct {
	ID        int64    `json:"id"`
	DressType string   `json:"dress_type,omitempty"`
	Style     string   `json:"style,omitempty"`
	Color     string   `json:"color,omitempty"`
	Images    []string `json:"images"`
}

// OutfitWithImages is an outfit enriched with resolved wardrobe photos.
type OutfitWithImages struct {
	Outfit
	ItemsWithImages []OutfitItemImages `json:"items_with_images"`
}

// OutfitDetails mirrors the recommendation outfits detail endpoint.
type OutfitDetails struct {
	RecommendationID   int64              `json:"recommendation_id"`
	Query              string             `json:"query"`
	RecommendationType string             `json:"recommendation_type,omitempty"`
	Outfits            []OutfitWithImages `json:"outfits"`
	CreatedAt          string             `json:"created_at"`
}

// TryOnRequest selects the outfit to render.
type TryOnRequest struct {
	OutfitIndex int `json:"outfit_index"`
}

// TryOnResponse carries the rendered composite image location.
type TryOnResponse struct {
	ImagePath   string `json:"image_path"`
	OutfitIndex int    `json:"outfit_index"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(apiTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
