package catalog

// MediaKind discriminates the Media union.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ImageMedia is the payload of an image media item.
type ImageMedia struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// VideoMedia is the payload of a video media item.
type VideoMedia struct {
	Src     string `json:"src"`
	Poster  string `json:"poster,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Media is an image or a video. Exactly one of Image and Video is set,
// matching Kind; build values with ImageItem and VideoItem.
type Media struct {
	Kind  MediaKind   `json:"type"`
	Image *ImageMedia `json:"image,omitempty"`
	Video *VideoMedia `json:"video,omitempty"`
}

// ImageItem returns an image media item.
func ImageItem(src, alt, caption string) Media {
	return Media{Kind: MediaImage, Image: &ImageMedia{Src: src, Alt: alt, Caption: caption}}
}

// VideoItem returns a video media item.
func VideoItem(src, poster, caption string) Media {
	return Media{Kind: MediaVideo, Video: &VideoMedia{Src: src, Poster: poster, Caption: caption}}
}

// Src returns the asset path of the item.
func (m Media) Src() string {
	switch m.Kind {
	case MediaImage:
		return m.Image.Src
	case MediaVideo:
		return m.Video.Src
	}
	return ""
}

// Caption returns the optional caption of the item.
func (m Media) Caption() string {
	switch m.Kind {
	case MediaImage:
		return m.Image.Caption
	case MediaVideo:
		return m.Video.Caption
	}
	return ""
}

// Images wraps plain image paths as media items in order.
func Images(paths ...string) []Media {
	items := make([]Media, 0, len(paths))
	for _, p := range paths {
		items = append(items, ImageItem(p, "", ""))
	}
	return items
}

// Videos wraps plain video paths as media items in order.
func Videos(paths ...string) []Media {
	items := make([]Media, 0, len(paths))
	for _, p := range paths {
		items = append(items, VideoItem(p, "", ""))
	}
	return items
}
