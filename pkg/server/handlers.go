package server

import (
	"Donghwa/handler"
)

type Handlers struct {
	Usage     *handler.Usage
	FairyTale *handler.FairyTale
	Admin     *handler.Admin
}
