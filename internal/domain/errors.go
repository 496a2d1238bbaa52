package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInvalidTransition cubre dos casos que el caller no distingue:
	// el gasto no existe dentro de la empresa, o ya salió de PENDING.
	ErrInvalidTransition = errors.New("gasto no encontrado o ya procesado")

	// ErrInsufficientFunds la aprobación dejaría la custodia en saldo negativo.
	ErrInsufficientFunds = errors.New("saldo de custodia insuficiente")

	// ErrCustodyExists el empleado ya tiene un registro de custodia (máximo uno por usuario).
	ErrCustodyExists = errors.New("el empleado ya tiene custodia asignada")
)
