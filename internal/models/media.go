package models

// MediaKind selects which catalog collection an operation targets
type MediaKind string

const (
	MediaKindPodcast MediaKind = "podcast"
	MediaKindVideo   MediaKind = "video"
)

// Collection returns the MongoDB collection name for the media kind
func (k MediaKind) Collection() string {
	switch k {
	case MediaKindPodcast:
		return "podcasts"
	case MediaKindVideo:
		return "videos"
	}
	return ""
}

// Valid reports whether the kind names a known catalog collection
func (k MediaKind) Valid() bool {
	return k == MediaKindPodcast || k == MediaKindVideo
}

// MediaEntry represents a podcast or video catalog record.
//
// Catalog documents are created out-of-band and carry no enforced schema;
// every field except ID may be absent. Path fields hold repository-relative
// paths that the consuming client resolves against its CDN base URL.
// ID is untyped because legacy documents carry plain string keys while
// newer documents carry ObjectIDs.
type MediaEntry struct {
	ID            any    `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string `bson:"title,omitempty" json:"title,omitempty"`
	Description   string `bson:"description,omitempty" json:"description,omitempty"`
	Date          string `bson:"date,omitempty" json:"date,omitempty"`
	ThumbnailPath string `bson:"thumbnailPath,omitempty" json:"thumbnailPath,omitempty"`
	AudioPath     string `bson:"audioPath,omitempty" json:"audioPath,omitempty"`
	VideoPath     string `bson:"videoPath,omitempty" json:"videoPath,omitempty"`
	Duration      string `bson:"duration,omitempty" json:"duration,omitempty"`
}
