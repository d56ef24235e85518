package model

import "time"

// DefaultCategory is applied when a request omits the category.
const DefaultCategory = "Meeting"

// Categories are the labels an event can be filed under.
var Categories = []string{"Meeting", "Personal", "Work", "Social", "Other"}

// Event domain object defining a user owned calendar entry
// swagger:model
type Event struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	EventDate    Date      `gorm:"type:date;index" json:"eventDate"`
	StartTime    TimeOfDay `gorm:"type:time" json:"startTime"`
	EndTime      TimeOfDay `gorm:"type:time" json:"endTime"`
	Category     string    `gorm:"default:Meeting" json:"category"`
	ContactPhone string    `json:"contactPhone"`
	UserID       uint      `gorm:"index" json:"userId"`
	User         *User     `json:"-"`
	// UserName is the owner's display name, populated from the user row at
	// read time. It is never persisted on the event itself.
	UserName string `gorm:"-" json:"userName"`
}
