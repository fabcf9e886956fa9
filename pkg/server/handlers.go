package server

import (
	"Mirsui/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	User       *handler.User
	Follow     *handler.Follow
	Claim      *handler.Claim
	Playlist   *handler.Playlist
	Prediction *handler.Prediction
	Points     *handler.Point
	Favorite   *handler.Favorite
	Catalog    *handler.Catalog
	Upload     *handler.Upload
}
