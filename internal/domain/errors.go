package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("login o password incorrectos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrLoginIDTaken       = errors.New("el login ya está en uso")
	ErrDuplicateAssign    = errors.New("el usuario ya está asignado a la empresa")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSelfDeactivation   = errors.New("no puede desactivarse a sí mismo")
	ErrFileTooLarge       = errors.New("archivo demasiado grande")
	ErrFileTypeNotAllowed = errors.New("tipo de archivo no permitido")
)
