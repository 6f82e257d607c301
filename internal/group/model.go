package group

type Group struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
}
