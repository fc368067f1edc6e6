package components

import "github.com/yohamta/donburi"

// AnnouncementData is a singleton holding the banner shown mid-screen
// ("Wave 2", "Level up").
type AnnouncementData struct {
	Text         string
	DisplayTimer int // Frames remaining to display
}

var Announcement = donburi.NewComponentType[AnnouncementData]()
