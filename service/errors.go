package service

import "github.com/rotisserie/eris"

var (
	ErrInvalidInput      = eris.New("invalid input")
	ErrNotFound          = eris.New("analysis not found")
	ErrNoViableFinancing = eris.New("no financing option meets the requested constraints")
)
