package models

// Photo is the persisted record for one captured photo. Records are
// immutable: created by the upload endpoint, read by the list endpoint,
// never updated or deleted.
type Photo struct {
	ID        string  `json:"id,omitempty" bson:"_id,omitempty"`
	ImageURL  string  `json:"imageUrl" bson:"imageUrl"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	// Timestamp is the ISO-8601 instant captured client-side at shot time,
	// not server receipt time. Stored as the client sent it.
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

// UploadRequest is the JSON body of POST /api/upload. Pointer fields so
// presence can be checked with nil tests: latitude/longitude of exactly 0
// are legitimate values, not missing fields.
type UploadRequest struct {
	Image     *string  `json:"image"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timestamp *string  `json:"timestamp"`
}

// UploadResponse is the success body of POST /api/upload.
type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// PhotosResponse is the body of GET /api/photos.
type PhotosResponse struct {
	Photos []Photo `json:"photos"`
}

// LoginRequest is the JSON body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for the admin map view.
type LoginResponse struct {
	Token string `json:"token"`
}
