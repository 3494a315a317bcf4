package models

// HealthStatus is the /api/health response
type HealthStatus struct {
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	Database DatabaseHealth `json:"database"`
}

// DatabaseHealth reports store connectivity
type DatabaseHealth struct {
	Connected   bool     `json:"connected"`
	Name        string   `json:"name"`
	Collections []string `json:"collections"`
}

// DebugInfo is the /api/debug response: a snapshot of the database layout
// used to diagnose misconfigured deployments.
type DebugInfo struct {
	Connection  DebugConnection  `json:"connection"`
	Collections DebugCollections `json:"collections"`
	Samples     DebugSamples     `json:"sampleDocuments"`
}

// DebugConnection identifies the connected database
type DebugConnection struct {
	Database  string `json:"database"`
	Connected bool   `json:"connected"`
}

// DebugCollections inventories the expected collections and their sizes
type DebugCollections struct {
	All           []string `json:"all"`
	HasPodcasts   bool     `json:"hasPodcastsCollection"`
	HasVideos     bool     `json:"hasVideosCollection"`
	PodcastsCount int64    `json:"podcastsCount"`
	VideosCount   int64    `json:"videosCount"`
	MessagesCount int64    `json:"messagesCount"`
}

// DebugSamples lists the field names of one sample document per media
// collection, nil when the collection is empty.
type DebugSamples struct {
	PodcastFields []string `json:"podcastFields"`
	VideoFields   []string `json:"videoFields"`
}
