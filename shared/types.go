package shared

// AppRecord is one row of the Play Store dataset. JSON keys follow the
// dataset's column headers.
type AppRecord struct {
	App           string            `json:"App"`
	Category      string            `json:"Category"`
	Rating        float64           `json:"Rating"`
	Reviews       int64             `json:"Reviews"`
	Size          string            `json:"Size"`
	Installs      string            `json:"Installs"`
	Type          string            `json:"Type"`
	Price         string            `json:"Price"`
	ContentRating EnumContentRating `json:"Content Rating"`
	Genres        string            `json:"Genres"`
	LastUpdated   string            `json:"Last Updated"`
	CurrentVer    string            `json:"Current Ver"`
	AndroidVer    string            `json:"Android Ver"`
}
