package models

// Photo is a read-only catalog entry shown in the photo viewer
type Photo struct {
	ID    int64  `json:"id" db:"id"`
	URL   string `json:"url" db:"url"`
	Title string `json:"title" db:"title"`
	Alt   string `json:"alt" db:"alt"`
	Order int    `json:"order" db:"sort_order"`
}

// Song is a read-only catalog entry played in the music activity
type Song struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Icon     string `json:"icon" db:"icon"`   // star, sun or leaf
	Color    string `json:"color" db:"color"` // UI color token
	AudioURL string `json:"audioUrl" db:"audio_url"`
	Order    int    `json:"order" db:"sort_order"`
}
