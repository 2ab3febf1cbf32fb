package apod

// Picture is one day's record as returned by the upstream API.
type Picture struct {
	Date           string `json:"date"`
	Title          string `json:"title"`
	Explanation    string `json:"explanation"`
	MediaType      string `json:"media_type"` // "image" or "video"
	URL            string `json:"url"`
	HDURL          string `json:"hdurl,omitempty"`
	Copyright      string `json:"copyright,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	ServiceVersion string `json:"service_version,omitempty"`
}

const (
	MediaImage = "image"
	MediaVideo = "video"
)

func (p *Picture) IsVideo() bool {
	return p != nil && p.MediaType == MediaVideo
}

// apiError is the error body upstream sends alongside non-2xx codes.
type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Err  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e apiError) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Err.Message
}
