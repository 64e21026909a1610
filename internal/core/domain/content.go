package domain

import "time"

// Post types.
const (
	PostTypeImage    = "image"
	PostTypeDocument = "document"
)

// Skill categories and levels.
const (
	SkillCategoryFrontend = "frontend"
	SkillCategoryBackend  = "backend"
	SkillCategoryTools    = "tools"
	SkillCategoryOther    = "other"

	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
)

// Profile is the single owner profile shown on the landing page.
type Profile struct {
	ID       string  `json:"id" bson:"-"`
	Name     string  `json:"name" bson:"name"`
	About    string  `json:"about" bson:"about"`
	Bio      string  `json:"bio" bson:"bio"`
	Status   string  `json:"status" bson:"status"`
	Image    *string `json:"image" bson:"image"`
	GitHub   string  `json:"github,omitempty" bson:"github,omitempty"`
	LinkedIn string  `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Twitter  string  `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Email    string  `json:"email,omitempty" bson:"email,omitempty"`
}

// DefaultProfile is the profile seeded when the store holds none.
func DefaultProfile() Profile {
	return Profile{
		Name:   "Your Name Here",
		About:  "Welcome to my personal blog. I'm a passionate developer creating beautiful web applications and sharing my journey in tech.",
		Bio:    "Welcome to my personal blog.",
		Status: "Exploring & Creating",
	}
}

// ProfileUpdate carries the fields of a partial profile update. Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string `bson:"name,omitempty"`
	About    *string `bson:"about,omitempty"`
	Bio      *string `bson:"bio,omitempty"`
	Status   *string `bson:"status,omitempty"`
	Image    *string `bson:"image,omitempty"`
	GitHub   *string `bson:"github,omitempty"`
	LinkedIn *string `bson:"linkedin,omitempty"`
	Twitter  *string `bson:"twitter,omitempty"`
	Email    *string `bson:"email,omitempty"`
	// ClearImage resets the stored image to null. Ignored when Image is set.
	ClearImage bool `bson:"-"`
}

// Post is an uploaded image or document, stored inline as base64.
type Post struct {
	ID               string    `json:"id" bson:"-"`
	Type             string    `json:"type" bson:"type"`
	Title            string    `json:"title" bson:"title"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	File             string    `json:"file" bson:"file"`
	OriginalFilename string    `json:"originalFilename,omitempty" bson:"original_filename,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
}

// Skill is a single entry of the skills matrix. Skills and projects expose
// their key as "_id", which is what the browser client reads.
type Skill struct {
	ID        string    `json:"_id" bson:"-"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category" bson:"category"`
	Level     string    `json:"level" bson:"level"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Project is a portfolio showcase item.
type Project struct {
	ID           string    `json:"_id" bson:"-"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description" bson:"description"`
	Technologies []string  `json:"technologies" bson:"technologies"`
	LiveLink     string    `json:"liveLink,omitempty" bson:"live_link,omitempty"`
	GitHubLink   string    `json:"githubLink,omitempty" bson:"github_link,omitempty"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	Featured     bool      `json:"featured" bson:"featured"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}
