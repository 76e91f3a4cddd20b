package models

// Rating is a single user's integer score (1-5) for a single model.
// The (UserID, ModelID) pair is the primary key: rating the same model twice
// overwrites the previous value instead of inserting a second row.
type Rating struct {
	UserID  int64 `json:"userId"`
	ModelID int64 `json:"modelId"`
	Value   int   `json:"value"`
}

// TableName returns the name of the database table
// associated with the Rating model.
func (r Rating) TableName() string {
	return "ratings"
}
