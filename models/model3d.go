package models

import "io"

// Model3D is a stored 3D asset record: metadata plus references to the
// uploaded binary file and its thumbnail. It is not the rendering-engine
// scene object — only what the API persists and serves.
type Model3D struct {
	// ID is the unique identifier of the model, assigned by the database.
	ID int64 `json:"id"`

	// Title is the user-supplied display title of the asset.
	Title string `json:"title"`

	// Description is an optional free-form description.
	Description string `json:"description"`

	// FileName is the stored object key of the uploaded model file.
	FileName string `json:"fileName"`

	// FileURL is the public URL the stored file is served from.
	FileURL string `json:"fileUrl"`

	// ThumbnailURL is the public URL of the preview image.
	ThumbnailURL string `json:"thumbnailUrl"`

	// UserID is the identifier of the owning user. A model always has
	// exactly one owner; deleting the owner cascades to the model.
	UserID int64 `json:"userId"`

	// Tags is the ordered set of string tags attached at upload time.
	Tags []string `json:"tags"`
}

// TableName returns the name of the database table
// associated with the Model3D model.
func (m Model3D) TableName() string {
	return "models"
}

// RatedModel3D is a Model3D extended with its average rating, as produced by
// the top-rated aggregate query. Models without ratings carry a zero rating.
type RatedModel3D struct {
	Model3D
	Rating float64 `json:"rating"`
}

// Model3DUpdate describes a partial update of a model row. Nil fields are
// left unchanged (tri-state: absent = unchanged). The owner is deliberately
// not representable here — ownership never changes through an update.
type Model3DUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	FileName     *string   `json:"fileName"`
	FileURL      *string   `json:"fileUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Tags         *[]string `json:"tags"`
}

// Model3DUpload carries one multipart upload through the service layer: the
// user-supplied metadata plus the file stream itself. Content is read exactly
// once while streaming into the file storage backend.
type Model3DUpload struct {
	Title        string
	Description  string
	Tags         []string
	OriginalName string
	Size         int64
	Content      io.Reader
}

// IsEmpty reports whether the update carries no fields at all.
func (u Model3DUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.FileName == nil &&
		u.FileURL == nil && u.ThumbnailURL == nil && u.Tags == nil
}
