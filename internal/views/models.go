package views

import "github.com/EmpoweredVote/APOD-Backend/internal/apod"

// MsgInvalidDate is shown wherever a date parameter fails to parse.
const MsgInvalidDate = "Invalid date format. Please use YYYY-MM-DD."

// Base is embedded by every view; User is empty for anonymous visitors.
type Base struct {
	User string
}

type HomeView struct {
	Base
	Error      string
	Picture    *apod.Picture
	Date       string
	PrevDate   string
	NextDate   string
	IsFavorite bool
}

// FormView backs both the login and the signup page.
type FormView struct {
	Base
	Error    string
	Username string
}

type FavoriteItem struct {
	Date    string
	Picture *apod.Picture
	Error   string
}

type FavoritesView struct {
	Base
	Items []FavoriteItem
}
